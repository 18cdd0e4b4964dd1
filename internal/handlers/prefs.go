// internal/handlers/prefs.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/prefs"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type PrefsHandler struct{}

func NewPrefsHandler() *PrefsHandler {
	return &PrefsHandler{}
}

type SetLanguageRequest struct {
	Code string `json:"code" validate:"required,min=2,max=5"`
}

type SetCurrencyRequest struct {
	Code string `json:"code" validate:"required,len=3"`
}

type SetFormatsRequest struct {
	DateFormat string `json:"date_format"`
	TimeFormat string `json:"time_format"`
}

// prefsPageState renders current preferences plus the catalogs the
// settings page offers, with a sample of each format applied.
func prefsPageState(c *gin.Context, p prefs.Preferences) gin.H {
	now := time.Now()
	return gin.H{
		"preferences": p,
		"languages":   prefs.Languages,
		"currencies":  prefs.Currencies,
		"date_formats": prefs.DateFormats,
		"time_formats": prefs.TimeFormats,
		"samples": gin.H{
			"price": p.FormatPrice(1999, ""),
			"date":  p.FormatDate(now),
			"time":  p.FormatTime(now),
		},
	}
}

// GET /preferences
func (h *PrefsHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	p := sess.Prefs().Load(c.Request.Context())
	utils.SuccessResponse(c, prefsPageState(c, p))
}

// PUT /preferences/language
func (h *PrefsHandler) SetLanguage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	selected, err := sess.Prefs().SetLanguage(c.Request.Context(), req.Code)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "language"), err.Error())
		return
	}

	// Confirm in the language just selected.
	p := sess.Prefs().Load(c.Request.Context())
	state := prefsPageState(c, p)
	state["message"] = i18n.T(selected.Code, i18n.KeyPrefsUpdated)
	utils.SuccessResponse(c, state)
}

// PUT /preferences/currency
func (h *PrefsHandler) SetCurrency(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	if _, err := sess.Prefs().SetCurrency(c.Request.Context(), req.Code); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "currency"), err.Error())
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	state := prefsPageState(c, p)
	state["message"] = i18n.T(lang, i18n.KeyPrefsUpdated)
	utils.SuccessResponse(c, state)
}

// PUT /preferences/formats
func (h *PrefsHandler) SetFormats(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SetFormatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	sess := middleware.GetSession(c)
	if req.DateFormat != "" {
		if err := sess.Prefs().SetDateFormat(c.Request.Context(), req.DateFormat); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "date format"), err.Error())
			return
		}
	}
	if req.TimeFormat != "" {
		if err := sess.Prefs().SetTimeFormat(c.Request.Context(), req.TimeFormat); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "time format"), err.Error())
			return
		}
	}

	p := sess.Prefs().Load(c.Request.Context())
	state := prefsPageState(c, p)
	state["message"] = i18n.T(lang, i18n.KeyPrefsUpdated)
	utils.SuccessResponse(c, state)
}
