// internal/domain/catalog/category_service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/pkg/events"
)

// CategoryService handles category business logic
type CategoryService struct {
	repo     Repository
	recorder activity.Recorder
	bus      *events.Bus
}

// NewCategoryService creates a new category service
func NewCategoryService(repo Repository, recorder activity.Recorder, bus *events.Bus) *CategoryService {
	return &CategoryService{
		repo:     repo,
		recorder: recorder,
		bus:      bus,
	}
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory creates a category. Name uniqueness is deliberately not
// enforced; duplicates are accepted as in the source system.
func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	category := &Category{Name: req.Name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionCategoryAdded,
		Details:    fmt.Sprintf("Added category: %s", category.Name),
	})
	if s.bus != nil {
		s.bus.Publish(events.TopicCatalogChanged)
	}

	return category, nil
}

// DeleteCategory removes a category. Products referencing the deleted name
// keep their reference; orphaned names are tolerated, never cascaded.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType: activity.ActionCategoryDeleted,
		Details:    fmt.Sprintf("Deleted category: %s", category.Name),
	})
	if s.bus != nil {
		s.bus.Publish(events.TopicCatalogChanged)
	}

	return nil
}

// ListCategories retrieves all categories sorted by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}
