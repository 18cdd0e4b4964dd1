// internal/handlers/account.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// GET /account
func (h *AccountHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)

	profile, err := sess.API().Profile(c.Request.Context())
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	utils.SuccessResponse(c, gin.H{
		"profile":     profile,
		"preferences": p,
		"cart_count":  sess.State().Cart.Count(),
		"saved_count": sess.State().Saved.Len(),
	})
}

// PUT /account
func (h *AccountHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	updated, err := sess.API().UpdateProfile(c.Request.Context(), upstream.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"profile": updated,
		"message": i18n.T(lang, i18n.KeyProfileUpdated),
	})
}

// GET /orders
//
// Order tracking is not live upstream yet; the page renders an empty
// state until it is.
func (h *AccountHandler) Orders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"orders": []gin.H{},
		"note":   "Orders placed on source platforms appear here once tracking goes live",
	})
}

// GET /notifications
func (h *AccountHandler) Notifications(c *gin.Context) {
	sess := middleware.GetSession(c)
	p := sess.Prefs().Load(c.Request.Context())

	now := time.Now()
	utils.SuccessResponse(c, gin.H{
		"notifications": []gin.H{
			{
				"id":    "welcome",
				"type":  "info",
				"title": "Welcome to DealRadar",
				"body":  "Search any product to compare prices across platforms",
				"date":  p.FormatDate(now),
				"time":  p.FormatTime(now),
				"read":  false,
			},
		},
	})
}

// GET /referral
func (h *AccountHandler) Referral(c *gin.Context) {
	sess := middleware.GetSession(c)

	// Short stable code derived from the session ID.
	code := "DEAL-" + sess.ID[:8]
	utils.SuccessResponse(c, gin.H{
		"referral_code": code,
		"referred":      0,
		"reward":        "One month of price-drop alerts per referred friend",
	})
}
