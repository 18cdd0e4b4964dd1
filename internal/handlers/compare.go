// internal/handlers/compare.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type CompareHandler struct{}

func NewCompareHandler() *CompareHandler {
	return &CompareHandler{}
}

type CompareProductRequest struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Source   string  `json:"source" validate:"required"`
	ImageURL string  `json:"image_url"`
	URL      string  `json:"url"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	InStock  bool    `json:"in_stock"`
}

// GET /compare
func (h *CompareHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	p := sess.Prefs().Load(c.Request.Context())

	utils.SuccessResponse(c, gin.H{
		"items": productViews(p, sess.State().Comparison.Items()),
		"limit": state.ComparisonLimit,
	})
}

// POST /compare
func (h *CompareHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CompareProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	err := sess.State().Comparison.Add(upstream.Product{
		ID:       req.ID,
		Title:    req.Title,
		Price:    req.Price,
		Source:   req.Source,
		ImageURL: req.ImageURL,
		URL:      req.URL,
		Rating:   req.Rating,
		InStock:  req.InStock,
	})
	if err != nil {
		if errors.Is(err, state.ErrComparisonFull) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCompareFull), nil)
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	utils.SuccessResponse(c, gin.H{
		"items": productViews(p, sess.State().Comparison.Items()),
		"limit": state.ComparisonLimit,
	})
}

// DELETE /compare/:id
func (h *CompareHandler) Remove(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.State().Comparison.Remove(c.Param("id"))

	p := sess.Prefs().Load(c.Request.Context())
	utils.SuccessResponse(c, gin.H{
		"items": productViews(p, sess.State().Comparison.Items()),
		"limit": state.ComparisonLimit,
	})
}

// DELETE /compare
func (h *CompareHandler) Clear(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.State().Comparison.Clear()

	utils.SuccessResponse(c, gin.H{
		"items": []gin.H{},
		"limit": state.ComparisonLimit,
	})
}
