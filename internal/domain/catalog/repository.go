// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id resolves to nothing.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category id resolves to nothing.
var ErrCategoryNotFound = errors.New("category not found")

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Search   string
}

// Repository is the persistence boundary of the catalog. The core logic
// depends only on this interface so the backing store is substitutable.
type Repository interface {
	CreateProduct(ctx context.Context, product *Product) error
	SaveProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	ReplaceImages(ctx context.Context, productID uint, images []ProductImage) error

	CreateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id uint) error
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

// gormRepository is the GORM/Postgres implementation of Repository
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates the production catalog repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *gormRepository) SaveProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *gormRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *gormRepository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}

func (r *gormRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(artist_code) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term,
		)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

func (r *gormRepository) ReplaceImages(ctx context.Context, productID uint, images []ProductImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to clear product images: %w", err)
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ProductID = productID
			images[i].SortOrder = i
		}
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("failed to store product images: %w", err)
		}
		return nil
	})
}

func (r *gormRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *gormRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&Category{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *gormRepository) GetCategory(ctx context.Context, id uint) (*Category, error) {
	var category Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return &category, nil
}

func (r *gormRepository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}
