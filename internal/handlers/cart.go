// internal/handlers/cart.go
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

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type AddCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Source    string  `json:"source" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	ImageURL  string  `json:"image_url"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// cartPageState renders the cart slice with display prices in the
// session's selected currency.
func cartPageState(c *gin.Context, sess *session.Session, offline bool) gin.H {
	p := sess.Prefs().Load(c.Request.Context())
	cart := sess.State().Cart

	items := cart.Items()
	view := make([]gin.H, 0, len(items))
	for _, item := range items {
		view = append(view, gin.H{
			"id":               item.ID,
			"product_id":       item.ProductID,
			"title":            item.Title,
			"price":            item.Price,
			"display_price":    p.FormatPrice(item.Price, ""),
			"source":           item.Source,
			"quantity":         item.Quantity,
			"image_url":        item.ImageURL,
			"display_subtotal": p.FormatPrice(item.Price*float64(item.Quantity), ""),
		})
	}

	return gin.H{
		"items":         view,
		"count":         cart.Count(),
		"total":         cart.Total(),
		"display_total": p.FormatPrice(cart.Total(), ""),
		"currency":      p.Currency,
		"status":        cart.Status(),
		"offline":       offline,
	}
}

// GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.GetSession(c)
	cart := sess.State().Cart

	cart.Begin()
	items, err := sess.API().Cart(c.Request.Context())
	cart.End(err)

	if err != nil {
		// Serve the local slice when the upstream is down so the page
		// still renders.
		if errors.Is(err, upstream.ErrServerUnreachable) {
			state := cartPageState(c, sess, true)
			state["message"] = i18n.T(lang, i18n.KeyCartOffline)
			utils.SuccessResponse(c, state)
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	cart.Replace(items)
	utils.SuccessResponse(c, cartPageState(c, sess, false))
}

// POST /cart
func (h *CartHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item := upstream.CartItem{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Source:    req.Source,
		Quantity:  req.Quantity,
		ImageURL:  req.ImageURL,
	}

	sess := middleware.GetSession(c)
	cart := sess.State().Cart

	cart.Begin()
	items, err := sess.API().AddCartItem(c.Request.Context(), item)
	cart.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			cart.Add(item)
			state := cartPageState(c, sess, true)
			state["message"] = i18n.T(lang, i18n.KeyCartOffline)
			utils.SuccessResponse(c, state)
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	cart.Replace(items)
	state := cartPageState(c, sess, false)
	state["message"] = i18n.T(lang, i18n.KeyCartItemAdded)
	utils.SuccessResponse(c, state)
}

// PUT /cart/:id
func (h *CartHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	itemID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	quantity := *req.Quantity

	sess := middleware.GetSession(c)
	cart := sess.State().Cart

	cart.Begin()
	var items []upstream.CartItem
	var err error
	if quantity < 1 {
		// Dropping below one removes the line.
		items, err = sess.API().RemoveCartItem(c.Request.Context(), itemID)
	} else {
		items, err = sess.API().UpdateCartItem(c.Request.Context(), itemID, quantity)
	}
	cart.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			cart.SetQuantity(itemID, quantity)
			state := cartPageState(c, sess, true)
			state["message"] = i18n.T(lang, i18n.KeyCartOffline)
			utils.SuccessResponse(c, state)
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	cart.Replace(items)
	state := cartPageState(c, sess, false)
	state["message"] = i18n.T(lang, i18n.KeyCartUpdated)
	utils.SuccessResponse(c, state)
}

// DELETE /cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	itemID := c.Param("id")

	sess := middleware.GetSession(c)
	cart := sess.State().Cart

	cart.Begin()
	items, err := sess.API().RemoveCartItem(c.Request.Context(), itemID)
	cart.End(err)

	if err != nil {
		if errors.Is(err, upstream.ErrServerUnreachable) {
			cart.Remove(itemID)
			state := cartPageState(c, sess, true)
			state["message"] = i18n.T(lang, i18n.KeyCartOffline)
			utils.SuccessResponse(c, state)
			return
		}
		utils.UpstreamErrorResponse(c, err)
		return
	}

	cart.Replace(items)
	state := cartPageState(c, sess, false)
	state["message"] = i18n.T(lang, i18n.KeyCartItemRemoved)
	utils.SuccessResponse(c, state)
}
