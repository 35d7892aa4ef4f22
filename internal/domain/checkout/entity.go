// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"github.com/novagallery/gallery-backend/internal/domain/order"
)

// State is a step of the checkout flow. Success is terminal; there is no
// transition out of it other than Reset starting a fresh flow.
type State string

const (
	StateCart    State = "cart"
	StateDetails State = "details"
	StatePayment State = "payment"
	StateSuccess State = "success"
)

// Session is the per-browsing-session checkout machine, stored in Redis
// alongside the cart.
type Session struct {
	SessionID string         `json:"session_id"`
	State     State          `json:"state"`
	Customer  order.Customer `json:"customer"`
	// Processing marks a payment confirmation in flight; a second confirm
	// while set is rejected.
	Processing  bool      `json:"processing"`
	OrderNumber string    `json:"order_number,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Response is the machine state handed back to the display layer.
type Response struct {
	SessionID   string         `json:"session_id"`
	State       State          `json:"state"`
	Customer    order.Customer `json:"customer"`
	Processing  bool           `json:"processing"`
	OrderNumber string         `json:"order_number,omitempty"`
}
