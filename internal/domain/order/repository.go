// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order number resolves to nothing.
var ErrOrderNotFound = errors.New("order not found")

// Repository is the persistence boundary of the order ledger.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByNumber(ctx context.Context, number string) (*Order, error)
	UpdateStatus(ctx context.Context, number string, status Status) error
	List(ctx context.Context) ([]Order, error)
}

// gormRepository is the GORM/Postgres implementation of Repository
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates the production order repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, order *Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *gormRepository) GetByNumber(ctx context.Context, number string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).Preload("Items").Where("number = ?", number).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &order, nil
}

// UpdateStatus writes the status column only; items and totals stay untouched.
func (r *gormRepository) UpdateStatus(ctx context.Context, number string, status Status) error {
	err := r.db.WithContext(ctx).Model(&Order{}).
		Where("number = ?", number).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *gormRepository) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}
