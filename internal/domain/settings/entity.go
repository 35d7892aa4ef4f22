// internal/domain/settings/entity.go
package settings

import (
	"time"
)

// Singleton configuration rows. Each table holds a single record keyed by a
// fixed id; updates overwrite in place.

// InvoiceSettings feed the invoice footer contact line
type InvoiceSettings struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Address   string    `gorm:"size:500" json:"address"`
	Email     string    `gorm:"size:255" json:"email"`
	Website   string    `gorm:"size:255" json:"website"`
	UpdatedAt time.Time `json:"-"`
}

// QRCode holds the UPI QR image the payment step displays
type QRCode struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	URL       string    `gorm:"size:500" json:"url"`
	UpdatedAt time.Time `json:"-"`
}

// SocialLinks shown in the storefront footer
type SocialLinks struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Instagram string    `gorm:"size:500" json:"instagram"`
	Facebook  string    `gorm:"size:500" json:"facebook"`
	WhatsApp  string    `gorm:"size:500" json:"whatsapp"`
	UpdatedAt time.Time `json:"-"`
}

// ContactSettings drive the contact page copy
type ContactSettings struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Heading   string    `gorm:"size:255" json:"heading"`
	Text      string    `gorm:"type:text" json:"text"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	UpdatedAt time.Time `json:"-"`
}

// AdminCredential is the single admin login. The password is stored as a
// bcrypt hash, never plaintext.
type AdminCredential struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Email        string    `gorm:"not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName overrides
func (InvoiceSettings) TableName() string { return "invoice_settings" }
func (QRCode) TableName() string          { return "upi_qr_codes" }
func (SocialLinks) TableName() string     { return "social_links" }
func (ContactSettings) TableName() string { return "contact_settings" }
func (AdminCredential) TableName() string { return "admin_users" }
