// internal/upstream/types.go
package upstream

// TokenPair is the credential pair returned by login, OTP verification
// and password-reset completion.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Product is one offer for a product on one source platform. Prices are
// denominated in the base currency; conversion to the user's currency
// happens in the preference store at render time.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
	ImageURL string  `json:"image_url,omitempty"`
	URL      string  `json:"url,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	InStock  bool    `json:"in_stock"`
}

type SearchResponse struct {
	Query   string    `json:"query"`
	Results []Product `json:"results"`
}

type CartItem struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Source    string  `json:"source"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
}

type SavedItem struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Source    string  `json:"source"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type SavedItemsResponse struct {
	Items []SavedItem `json:"items"`
}
