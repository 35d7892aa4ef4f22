// internal/domain/settings/service.go
package settings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
)

// singletonID keys every settings table's single row.
const singletonID = 1

// Service handles the singleton settings records
type Service struct {
	db       *gorm.DB
	recorder activity.Recorder
}

// NewService creates a new settings service
func NewService(db *gorm.DB, recorder activity.Recorder) *Service {
	return &Service{
		db:       db,
		recorder: recorder,
	}
}

// UpdateInvoiceSettingsRequest represents invoice footer details
type UpdateInvoiceSettingsRequest struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// UpdateSocialLinksRequest represents storefront social links
type UpdateSocialLinksRequest struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	WhatsApp  string `json:"whatsapp"`
}

// UpdateContactSettingsRequest represents contact page copy
type UpdateContactSettingsRequest struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// GetInvoiceSettings returns the invoice footer details, or nil when never
// configured (the invoice generator falls back to its defaults).
func (s *Service) GetInvoiceSettings(ctx context.Context) (*InvoiceSettings, error) {
	var settings InvoiceSettings
	err := s.db.WithContext(ctx).First(&settings, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoice settings: %w", err)
	}
	return &settings, nil
}

// UpdateInvoiceSettings overwrites the invoice footer details.
func (s *Service) UpdateInvoiceSettings(ctx context.Context, req *UpdateInvoiceSettingsRequest) (*InvoiceSettings, error) {
	settings := InvoiceSettings{
		ID:      singletonID,
		Address: req.Address,
		Email:   req.Email,
		Website: req.Website,
	}
	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update invoice settings: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionSettingsUpdated,
		Details:    "Invoice settings updated",
	})
	return &settings, nil
}

// GetQRCode returns the UPI QR image URL, empty when never uploaded.
func (s *Service) GetQRCode(ctx context.Context) (*QRCode, error) {
	var qr QRCode
	err := s.db.WithContext(ctx).First(&qr, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &QRCode{ID: singletonID}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve QR code: %w", err)
	}
	return &qr, nil
}

// UpdateQRCode stores a new UPI QR image URL.
func (s *Service) UpdateQRCode(ctx context.Context, url string) (*QRCode, error) {
	qr := QRCode{ID: singletonID, URL: url}
	if err := s.db.WithContext(ctx).Save(&qr).Error; err != nil {
		return nil, fmt.Errorf("failed to update QR code: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionQRUpdated,
		Details:    "UPI QR Code updated",
	})
	return &qr, nil
}

// GetSocialLinks returns the storefront social links.
func (s *Service) GetSocialLinks(ctx context.Context) (*SocialLinks, error) {
	var links SocialLinks
	err := s.db.WithContext(ctx).First(&links, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &SocialLinks{ID: singletonID}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve social links: %w", err)
	}
	return &links, nil
}

// UpdateSocialLinks overwrites the storefront social links.
func (s *Service) UpdateSocialLinks(ctx context.Context, req *UpdateSocialLinksRequest) (*SocialLinks, error) {
	links := SocialLinks{
		ID:        singletonID,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		WhatsApp:  req.WhatsApp,
	}
	if err := s.db.WithContext(ctx).Save(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to update social links: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionSettingsUpdated,
		Details:    "Social links updated",
	})
	return &links, nil
}

// GetContactSettings returns the contact page copy.
func (s *Service) GetContactSettings(ctx context.Context) (*ContactSettings, error) {
	var contact ContactSettings
	err := s.db.WithContext(ctx).First(&contact, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ContactSettings{ID: singletonID}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve contact settings: %w", err)
	}
	return &contact, nil
}

// UpdateContactSettings overwrites the contact page copy.
func (s *Service) UpdateContactSettings(ctx context.Context, req *UpdateContactSettingsRequest) (*ContactSettings, error) {
	contact := ContactSettings{
		ID:      singletonID,
		Heading: req.Heading,
		Text:    req.Text,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := s.db.WithContext(ctx).Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact settings: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionSettingsUpdated,
		Details:    "Contact settings updated",
	})
	return &contact, nil
}

// GetAdminCredential returns the single admin login record.
func (s *Service) GetAdminCredential(ctx context.Context) (*AdminCredential, error) {
	var cred AdminCredential
	err := s.db.WithContext(ctx).First(&cred, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("admin credential not seeded")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve admin credential: %w", err)
	}
	return &cred, nil
}

// UpdateAdminCredential replaces the admin email and password hash.
func (s *Service) UpdateAdminCredential(ctx context.Context, email, passwordHash string) error {
	cred := AdminCredential{ID: singletonID, Email: email, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Save(&cred).Error; err != nil {
		return fmt.Errorf("failed to update admin credential: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionCredentialsChanged,
		Details:    fmt.Sprintf("Admin email changed to %s", email),
	})
	return nil
}
