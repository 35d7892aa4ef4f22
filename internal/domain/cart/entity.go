// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// LineItem is a product snapshot paired with a purchase quantity. The
// display and pricing fields are copied at add time so later catalog edits
// never reprice a cart behind the buyer's back.
type LineItem struct {
	ProductID       uint      `json:"product_id"`
	Title           string    `json:"title"`
	ArtistCode      string    `json:"artist_code"`
	ImageURL        string    `json:"image_url"`
	BasePrice       int64     `json:"base_price"`
	DiscountPercent float64   `json:"discount_percent"`
	Price           int64     `json:"price"`
	Quantity        int       `json:"quantity"`
	AddedAt         time.Time `json:"added_at"`
}

// Session represents a browsing session's cart, stored in Redis. Lost on
// session end by design; never persisted remotely.
type Session struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	IsOpen    bool       `json:"is_open"` // drawer-visibility flag the UI observes
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Totals represents derived cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalAmount   int64 `json:"total_amount"`
}

// Response represents a cart with items and derived totals
type Response struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	IsOpen    bool       `json:"is_open"`
	UpdatedAt time.Time  `json:"updated_at"`
}
