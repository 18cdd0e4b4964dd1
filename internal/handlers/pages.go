// internal/handlers/pages.go
package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/middleware"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

// PagesHandler serves the page-state endpoints behind the public pages:
// home, product detail, category browse, deals and the static content
// pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type ContactFormRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

var featuredCategories = []gin.H{
	{"slug": "electronics", "name": "Electronics", "icon": "💻"},
	{"slug": "fashion", "name": "Fashion", "icon": "👕"},
	{"slug": "home-kitchen", "name": "Home & Kitchen", "icon": "🏠"},
	{"slug": "books", "name": "Books", "icon": "📚"},
	{"slug": "sports", "name": "Sports & Outdoors", "icon": "⚽"},
	{"slug": "beauty", "name": "Beauty & Health", "icon": "💄"},
}

var trendingQueries = []string{
	"wireless earbuds", "air fryer", "running shoes",
	"mechanical keyboard", "standing desk",
}

// GET /
func (h *PagesHandler) Home(c *gin.Context) {
	sess := middleware.GetSession(c)
	ctx := c.Request.Context()

	utils.SuccessResponse(c, gin.H{
		"categories":       featuredCategories,
		"trending":         trendingQueries,
		"history":          sess.State().History.Entries(),
		"is_authenticated": sess.IsAuthenticated(ctx),
		"email":            sess.Email(ctx),
		"cart_count":       sess.State().Cart.Count(),
		"saved_count":      sess.State().Saved.Len(),
	})
}

// GET /category/:slug
//
// The upstream API has no category endpoint; category browse runs a
// search for the category name, like the web client did.
func (h *PagesHandler) Category(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	slug := c.Param("slug")

	query := strings.ReplaceAll(slug, "-", " ")
	sess := middleware.GetSession(c)

	results, err := sess.API().Search(c.Request.Context(), query)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	response := gin.H{
		"category": slug,
		"results":  productViews(p, results),
		"total":    len(results),
	}
	if len(results) == 0 {
		response["message"] = i18n.T(lang, i18n.KeySearchNoResults)
	}
	utils.SuccessResponse(c, response)
}

// GET /product/:id?query=...
//
// Product pages are reached from search results, so the originating
// query comes along and the product is located in its result set.
func (h *PagesHandler) Product(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID := c.Param("id")
	query := strings.TrimSpace(c.Query("query"))

	if query == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "query"), "query parameter is required")
		return
	}

	sess := middleware.GetSession(c)
	results, err := sess.API().Search(c.Request.Context(), query)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	for _, product := range results {
		if product.ID != productID {
			continue
		}

		saved := sess.State().Saved.Contains(product.ID)
		inComparison := false
		for _, item := range sess.State().Comparison.Items() {
			if item.ID == product.ID {
				inComparison = true
				break
			}
		}

		// Offers for the same title on other platforms, for the
		// price-comparison strip.
		var offers []gin.H
		for _, other := range results {
			if other.ID != product.ID && strings.EqualFold(other.Title, product.Title) {
				offers = append(offers, gin.H{
					"id":            other.ID,
					"source":        other.Source,
					"price":         other.Price,
					"display_price": p.FormatPrice(other.Price, ""),
					"in_stock":      other.InStock,
					"url":           other.URL,
				})
			}
		}

		utils.SuccessResponse(c, gin.H{
			"product":       productViews(p, []upstream.Product{product})[0],
			"saved":         saved,
			"in_comparison": inComparison,
			"offers":        offers,
		})
		return
	}

	utils.NotFoundResponse(c)
}

// GET /deals
func (h *PagesHandler) Deals(c *gin.Context) {
	sess := middleware.GetSession(c)

	results, err := sess.API().Search(c.Request.Context(), "deals")
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	p := sess.Prefs().Load(c.Request.Context())
	utils.SuccessResponse(c, gin.H{
		"deals": productViews(p, results),
		"total": len(results),
	})
}

// GET /reviews
func (h *PagesHandler) Reviews(c *gin.Context) {
	sess := middleware.GetSession(c)
	p := sess.Prefs().Load(c.Request.Context())

	utils.SuccessResponse(c, gin.H{
		"reviews": []gin.H{
			{
				"author": "Priya S.",
				"rating": 5,
				"body":   "Found my laptop 4,000 cheaper on another platform. Paid for itself instantly.",
				"date":   p.FormatDate(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)),
			},
			{
				"author": "Marco R.",
				"rating": 4,
				"body":   "Comparison view is great. Would love price-drop alerts.",
				"date":   p.FormatDate(time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC)),
			},
			{
				"author": "Aisha K.",
				"rating": 5,
				"body":   "The saved list synced between my phone and laptop without any setup.",
				"date":   p.FormatDate(time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC)),
			},
		},
		"average": 4.7,
	})
}

// GET /language
func (h *PagesHandler) Language(c *gin.Context) {
	sess := middleware.GetSession(c)
	p := sess.Prefs().Load(c.Request.Context())

	utils.SuccessResponse(c, prefsPageState(c, p))
}

// POST /contact
func (h *PagesHandler) Contact(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	err := sess.API().SubmitContact(c.Request.Context(), upstream.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyContactReceived),
	})
}

// POST /newsletter
func (h *PagesHandler) Newsletter(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sess := middleware.GetSession(c)
	if err := sess.API().SubscribeNewsletter(c.Request.Context(), req.Email); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNewsletterSubscribed),
	})
}

// Static content pages. The gateway only vends the page copy; layout
// belongs to the web client.

// GET /about
func (h *PagesHandler) About(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"title": "About DealRadar",
		"sections": []gin.H{
			{"heading": "What we do", "body": "DealRadar compares prices across major shopping platforms so you always know where a product is cheapest."},
			{"heading": "How it works", "body": "Search once and we query every supported platform, normalize the results and line the offers up side by side."},
			{"heading": "Supported platforms", "body": "Amazon, Flipkart, Myntra, Ajio and more are on the way."},
		},
	})
}

// GET /faq
func (h *PagesHandler) FAQ(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"title": "Frequently Asked Questions",
		"entries": []gin.H{
			{"question": "Is DealRadar free?", "answer": "Yes. Comparing prices and saving items is free."},
			{"question": "Do prices update in real time?", "answer": "Prices are fetched live from each platform when you search."},
			{"question": "Why do I need an account?", "answer": "An account keeps your cart and saved items in sync across devices."},
			{"question": "Which currencies are supported?", "answer": "Prices can be displayed in ten currencies; pick yours on the settings page."},
		},
	})
}

// GET /privacy
func (h *PagesHandler) Privacy(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"title": "Privacy Policy",
		"sections": []gin.H{
			{"heading": "Data we collect", "body": "Your email address, saved items and search history. Search history never leaves your session."},
			{"heading": "Data we share", "body": "None. Product lookups are proxied so platforms never see who is searching."},
			{"heading": "Retention", "body": "Session data expires after 30 days of inactivity. Account deletion removes everything."},
		},
	})
}

// GET /terms
func (h *PagesHandler) Terms(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"title": "Terms of Service",
		"sections": []gin.H{
			{"heading": "Acceptable use", "body": "DealRadar is for personal, non-commercial price comparison."},
			{"heading": "Accuracy", "body": "Prices come from third-party platforms and can change between search and checkout."},
			{"heading": "Purchases", "body": "Checkout happens on the source platform; its terms govern the purchase."},
		},
	})
}

// NotFound handles unmatched routes.
func (h *PagesHandler) NotFound(c *gin.Context) {
	utils.NotFoundResponse(c)
}
