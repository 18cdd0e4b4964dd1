// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// GET /admin/dashboard
//
// Aggregate counters come from the upstream admin API once it ships; the
// session-local figures are real.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)

	utils.SuccessResponse(c, gin.H{
		"stats": gin.H{
			"supported_platforms": 4,
			"tracked_categories":  len(featuredCategories),
			"comparison_limit":    state.ComparisonLimit,
			"session": gin.H{
				"cart_items":    sess.State().Cart.Count(),
				"saved_items":   sess.State().Saved.Len(),
				"searches":      len(sess.State().History.Entries()),
				"in_comparison": len(sess.State().Comparison.Items()),
			},
		},
	})
}
