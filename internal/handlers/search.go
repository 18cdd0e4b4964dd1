// internal/handlers/search.go
package handlers

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/prefs"
	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

type UpdateFiltersRequest struct {
	MinPrice    *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice    *float64 `json:"max_price" validate:"omitempty,gte=0"`
	Sources     []string `json:"sources"`
	SortOrder   *string  `json:"sort_order"`
	InStockOnly *bool    `json:"in_stock_only"`
	Reset       bool     `json:"reset"`
}

// GET /search?query=...
func (h *SearchHandler) Search(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "query"), "query parameter is required")
		return
	}

	sess := middleware.GetSession(c)
	sess.State().History.Add(query)

	results, err := sess.API().Search(c.Request.Context(), query)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	filters := sess.State().Filters.Snapshot()
	filtered := applyFilters(results, filters)

	p := sess.Prefs().Load(c.Request.Context())
	response := gin.H{
		"query":   query,
		"results": productViews(p, filtered),
		"total":   len(filtered),
		"filters": filters,
		"history": sess.State().History.Entries(),
	}
	if len(filtered) == 0 {
		response["message"] = i18n.T(lang, i18n.KeySearchNoResults)
	}
	utils.SuccessResponse(c, response)
}

// POST /search/filters
func (h *SearchHandler) UpdateFilters(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	filters := sess.State().Filters

	if req.Reset {
		filters.Reset()
		utils.SuccessResponse(c, gin.H{"filters": filters.Snapshot()})
		return
	}

	if req.MinPrice != nil || req.MaxPrice != nil {
		current := filters.Snapshot()
		min, max := current.MinPrice, current.MaxPrice
		if req.MinPrice != nil {
			min = *req.MinPrice
		}
		if req.MaxPrice != nil {
			max = *req.MaxPrice
		}
		filters.SetPriceRange(min, max)
	}
	if req.Sources != nil {
		filters.SetSources(req.Sources)
	}
	if req.SortOrder != nil {
		filters.SetSortOrder(*req.SortOrder)
	}
	if req.InStockOnly != nil {
		filters.SetInStockOnly(*req.InStockOnly)
	}

	utils.SuccessResponse(c, gin.H{"filters": filters.Snapshot()})
}

// GET /search/history
func (h *SearchHandler) History(c *gin.Context) {
	sess := middleware.GetSession(c)
	utils.SuccessResponse(c, gin.H{
		"history": sess.State().History.Entries(),
		"limit":   state.HistoryLimit,
	})
}

// DELETE /search/history
func (h *SearchHandler) ClearHistory(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.State().History.Clear()
	utils.SuccessResponse(c, gin.H{"history": []string{}})
}

// applyFilters narrows and orders search results per the session's
// filter slice. Zero MaxPrice means no upper bound.
func applyFilters(products []upstream.Product, f state.FiltersView) []upstream.Product {
	filtered := make([]upstream.Product, 0, len(products))
	for _, p := range products {
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if len(f.Sources) > 0 && !containsFold(f.Sources, p.Source) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortOrder {
	case state.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case state.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case state.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	return filtered
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// productViews decorates products with display prices in the selected
// currency.
func productViews(p prefs.Preferences, products []upstream.Product) []gin.H {
	views := make([]gin.H, 0, len(products))
	for _, product := range products {
		views = append(views, gin.H{
			"id":            product.ID,
			"title":         product.Title,
			"price":         product.Price,
			"display_price": p.FormatPrice(product.Price, ""),
			"source":        product.Source,
			"image_url":     product.ImageURL,
			"url":           product.URL,
			"rating":        product.Rating,
			"in_stock":      product.InStock,
		})
	}
	return views
}
