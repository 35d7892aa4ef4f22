// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/pricing"
	"github.com/novagallery/gallery-backend/internal/pkg/events"
)

// ErrNoImages is returned when a product is created without any image.
var ErrNoImages = errors.New("product requires at least one image")

// Service handles catalog business logic. Every mutation appends an audit
// entry and publishes catalog.changed.
type Service struct {
	repo     Repository
	recorder activity.Recorder
	bus      *events.Bus
}

// NewService creates a new catalog service
func NewService(repo Repository, recorder activity.Recorder, bus *events.Bus) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		bus:      bus,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Title           string   `json:"title" binding:"required"`
	ArtistCode      string   `json:"artist_code"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	BasePrice       int64    `json:"base_price" binding:"min=0"`
	DiscountPercent float64  `json:"discount_percent"`
	Images          []string `json:"images" binding:"required,min=1"`
}

// UpdateProductRequest represents a partial product update; nil fields are
// untouched.
type UpdateProductRequest struct {
	Title           *string   `json:"title"`
	ArtistCode      *string   `json:"artist_code"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	BasePrice       *int64    `json:"base_price"`
	DiscountPercent *float64  `json:"discount_percent"`
	Images          *[]string `json:"images"`
}

// CreateProduct creates a product with its derived price and logs the action.
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if len(req.Images) == 0 {
		return nil, ErrNoImages
	}

	price, err := pricing.ComputePrice(req.BasePrice, req.DiscountPercent)
	if err != nil {
		return nil, err
	}

	product := &Product{
		Title:           req.Title,
		ArtistCode:      req.ArtistCode,
		Description:     req.Description,
		Category:        req.Category,
		BasePrice:       req.BasePrice,
		DiscountPercent: pricing.ClampDiscount(req.DiscountPercent),
		Price:           price,
		Images:          imageRows(req.Images),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionProductAdded,
		Details:    fmt.Sprintf("Added product: %s", product.Title),
	})
	s.publishChanged()

	return product, nil
}

// UpdateProduct merges the patch into the stored record. The derived price is
// recomputed whenever basePrice or discountPercent is part of the patch, so
// the price-vs-MRP invariant cannot drift.
func (s *Service) UpdateProduct(ctx context.Context, id uint, req *UpdateProductRequest) (*Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.ArtistCode != nil {
		product.ArtistCode = *req.ArtistCode
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.BasePrice != nil || req.DiscountPercent != nil {
		if req.BasePrice != nil {
			product.BasePrice = *req.BasePrice
		}
		if req.DiscountPercent != nil {
			product.DiscountPercent = pricing.ClampDiscount(*req.DiscountPercent)
		}
		price, err := pricing.ComputePrice(product.BasePrice, product.DiscountPercent)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}

	if req.Images != nil {
		if len(*req.Images) == 0 {
			return nil, ErrNoImages
		}
		if err := s.repo.ReplaceImages(ctx, product.ID, imageRows(*req.Images)); err != nil {
			return nil, err
		}
		product.Images = imageRows(*req.Images)
	}

	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionProductUpdated,
		Details:    fmt.Sprintf("Updated product ID: %d", product.ID),
	})
	s.publishChanged()

	return product, nil
}

// DeleteProduct removes a product. The record is read first so the title is
// still available for the audit trail after deletion.
func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionProductDeleted,
		Details:    fmt.Sprintf("Deleted product: %s", product.Title),
	})
	s.publishChanged()

	return nil
}

// GetProduct retrieves a single product with its ordered images.
func (s *Service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ListProducts retrieves products, optionally narrowed by category and
// free-text search.
func (s *Service) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *Service) publishChanged() {
	if s.bus != nil {
		s.bus.Publish(events.TopicCatalogChanged)
	}
}

func imageRows(urls []string) []ProductImage {
	images := make([]ProductImage, len(urls))
	for i, url := range urls {
		images[i] = ProductImage{URL: url, SortOrder: i}
	}
	return images
}
