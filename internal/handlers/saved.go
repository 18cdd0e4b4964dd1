// internal/handlers/saved.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/session"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type SavedHandler struct{}

func NewSavedHandler() *SavedHandler {
	return &SavedHandler{}
}

type ToggleSavedRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Source    string  `json:"source" validate:"required"`
	ImageURL  string  `json:"image_url"`
}

func savedPageState(c *gin.Context, sess *session.Session, offline bool) gin.H {
	p := sess.Prefs().Load(c.Request.Context())
	saved := sess.State().Saved

	items := saved.Items()
	view := make([]gin.H, 0, len(items))
	for _, item := range items {
		view = append(view, gin.H{
			"id":            item.ID,
			"product_id":    item.ProductID,
			"title":         item.Title,
			"price":         item.Price,
			"display_price": p.FormatPrice(item.Price, ""),
			"source":        item.Source,
			"image_url":     item.ImageURL,
		})
	}

	return gin.H{
		"items":   view,
		"count":   saved.Len(),
		"status":  saved.Status(),
		"offline": offline,
	}
}

// GET /saved-items
func (h *SavedHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)
	saved := sess.State().Saved

	saved.Begin()
	items, err := sess.API().SavedItems(c.Request.Context())
	saved.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			utils.SuccessResponse(c, savedPageState(c, sess, true))
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	saved.Replace(items)
	utils.SuccessResponse(c, savedPageState(c, sess, false))
}

// POST /saved-items/toggle
//
// Toggle semantics match the web client's save button: saving an already
// saved product removes it.
func (h *SavedHandler) Toggle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ToggleSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item := upstream.SavedItem{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Source:    req.Source,
		ImageURL:  req.ImageURL,
	}

	sess := middleware.GetSession(c)
	saved := sess.State().Saved

	nowSaved := saved.Toggle(item)

	saved.Begin()
	var items []upstream.SavedItem
	var err error
	if nowSaved {
		items, err = sess.API().SaveItem(c.Request.Context(), item)
	} else {
		items, err = sess.API().RemoveSavedItem(c.Request.Context(), req.ProductID)
	}
	saved.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			// Keep the local toggle; it reconciles on the next list.
			state := savedPageState(c, sess, true)
			state["saved"] = nowSaved
			utils.SuccessResponse(c, state)
			return
		}
		// Revert so the slice tracks the server.
		saved.Toggle(item)
		utils.UpstreamErrorResponse(c, err)
		return
	}

	saved.Replace(items)
	state := savedPageState(c, sess, false)
	state["saved"] = nowSaved
	if nowSaved {
		state["message"] = i18n.T(lang, i18n.KeySavedAdded)
	} else {
		state["message"] = i18n.T(lang, i18n.KeySavedRemoved)
	}
	utils.SuccessResponse(c, state)
}

// DELETE /saved-items/:id
func (h *SavedHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	itemID := c.Param("id")

	sess := middleware.GetSession(c)
	saved := sess.State().Saved

	saved.Begin()
	items, err := sess.API().RemoveSavedItem(c.Request.Context(), itemID)
	saved.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			saved.Remove(itemID)
			utils.SuccessResponse(c, savedPageState(c, sess, true))
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	saved.Replace(items)
	state := savedPageState(c, sess, false)
	state["message"] = i18n.T(lang, i18n.KeySavedRemoved)
	utils.SuccessResponse(c, state)
}
