// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status represents the order status. Pending orders await off-band payment
// confirmation; Verified is the only other state and the transition is
// one-way.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusVerified Status = "Verified"
)

// Customer holds the buyer details captured at checkout
type Customer struct {
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50;not null" json:"phone"`
	Address string `gorm:"size:500;not null" json:"address"`
}

// Order represents a placed order. Items and total are an immutable snapshot
// of the cart at submission time; verification never touches them.
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	Number    string         `gorm:"uniqueIndex;not null;size:50" json:"id"`
	Customer  Customer       `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Total     int64          `gorm:"not null" json:"total"`
	Status    Status         `gorm:"not null;default:'Pending'" json:"status"`
	CreatedAt time.Time      `json:"date"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item is one snapshotted cart line inside an order
type Item struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	OrderID         uint      `gorm:"not null;index" json:"-"`
	ProductID       uint      `gorm:"not null;index" json:"product_id"`
	Title           string    `gorm:"not null;size:255" json:"title"`
	ArtistCode      string    `gorm:"size:100" json:"artist_code"`
	BasePrice       int64     `gorm:"not null" json:"base_price"`
	DiscountPercent float64   `gorm:"not null;default:0" json:"discount_percent"`
	Price           int64     `gorm:"not null" json:"price"` // unit price at submission time
	Quantity        int       `gorm:"not null" json:"quantity"`
	TotalPrice      int64     `gorm:"not null" json:"total_price"` // Quantity * Price
	CreatedAt       time.Time `json:"-"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// FormatNumber builds a human-presentable, time-derived order number.
func FormatNumber(at time.Time) string {
	return fmt.Sprintf("ORD-%d", at.UnixMilli())
}

// Verify transitions Pending to Verified. It reports whether a transition
// actually happened; verifying an already-Verified order is a no-op.
func (o *Order) Verify() bool {
	if o.Status != StatusPending {
		return false
	}
	o.Status = StatusVerified
	return true
}

// ItemsTotal recomputes the snapshot total from the line items.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
