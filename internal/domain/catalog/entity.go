// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a gallery piece. Category is referenced by name, not id,
// matching the storefront's original data shape; deleting or renaming a
// category never rewrites products.
type Product struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null;size:255" json:"title"`
	ArtistCode      string         `gorm:"size:100" json:"artist_code"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"size:255;index" json:"category"`
	BasePrice       int64          `gorm:"not null" json:"base_price"` // MRP, whole currency units
	DiscountPercent float64        `gorm:"not null;default:0" json:"discount_percent"`
	Price           int64          `gorm:"not null" json:"price"` // derived, recomputed on every price edit
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`
}

// ProductImage represents one image of a product, ordered by SortOrder
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Category represents a product category
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (ProductImage) TableName() string { return "product_images" }
func (Category) TableName() string     { return "categories" }

// ImageURL returns the primary image, the first of the ordered sequence.
func (p *Product) ImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// Savings returns the per-unit difference between MRP and sellable price.
func (p *Product) Savings() int64 {
	return p.BasePrice - p.Price
}
