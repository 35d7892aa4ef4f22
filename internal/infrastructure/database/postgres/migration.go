// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/novagallery/gallery-backend/internal/config"
	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/catalog"
	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/domain/settings"
	"github.com/novagallery/gallery-backend/internal/pkg/auth"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, cfg *config.Config) *Migration {
	return &Migration{
		db:  db,
		cfg: cfg,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// Catalog domain
		&catalog.Category{},
		&catalog.Product{},
		&catalog.ProductImage{},

		// Order ledger
		&order.Order{},
		&order.Item{},

		// Audit trail
		&activity.ActivityLog{},

		// Back-office settings singletons
		&settings.InvoiceSettings{},
		&settings.QRCode{},
		&settings.SocialLinks{},
		&settings.ContactSettings{},
		&settings.AdminCredential{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_product_images_sort ON product_images(product_id, sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp ON activity_logs(timestamp DESC, id DESC)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
		}
	}

	return nil
}

// SeedInitialData inserts initial data into the database. Safe to run on
// every startup; existing rows are left untouched.
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedAdminCredential(); err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the default gallery categories, keyed by name.
func (m *Migration) seedCategories() error {
	names := []string{"Cyberpunk", "Abstract", "Nature"}

	for _, name := range names {
		category := catalog.Category{Name: name}
		if err := m.db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	return nil
}

// seedAdminCredential creates the single back-office login if none exists.
func (m *Migration) seedAdminCredential() error {
	var existing settings.AdminCredential
	result := m.db.First(&existing)
	if result.Error == nil {
		log.Println("⏭️ Admin credential already exists")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	passwords := auth.NewPasswordManager(m.cfg)
	hash, err := passwords.HashPassword(m.cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	credential := settings.AdminCredential{
		Email:        m.cfg.Admin.Email,
		PasswordHash: hash,
	}
	if err := m.db.Create(&credential).Error; err != nil {
		return fmt.Errorf("failed to create admin credential: %w", err)
	}

	log.Printf("✅ Created admin credential: %s", credential.Email)
	return nil
}
