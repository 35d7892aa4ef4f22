package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/pricing"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	products   map[uint]*Product
	categories map[uint]*Category
	nextID     uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		products:   make(map[uint]*Product),
		categories: make(map[uint]*Category),
		nextID:     1,
	}
}

func (m *mockRepository) CreateProduct(_ context.Context, product *Product) error {
	product.ID = m.nextID
	m.nextID++
	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *mockRepository) SaveProduct(_ context.Context, product *Product) error {
	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *mockRepository) DeleteProduct(_ context.Context, id uint) error {
	delete(m.products, id)
	return nil
}

func (m *mockRepository) GetProduct(_ context.Context, id uint) (*Product, error) {
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrProductNotFound
}

func (m *mockRepository) ListProducts(_ context.Context, filter ProductFilter) ([]Product, error) {
	var products []Product
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (m *mockRepository) ReplaceImages(_ context.Context, productID uint, images []ProductImage) error {
	if p, ok := m.products[productID]; ok {
		p.Images = images
	}
	return nil
}

func (m *mockRepository) CreateCategory(_ context.Context, category *Category) error {
	category.ID = m.nextID
	m.nextID++
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockRepository) DeleteCategory(_ context.Context, id uint) error {
	delete(m.categories, id)
	return nil
}

func (m *mockRepository) GetCategory(_ context.Context, id uint) (*Category, error) {
	if c, ok := m.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, ErrCategoryNotFound
}

func (m *mockRepository) ListCategories(_ context.Context) ([]Category, error) {
	var categories []Category
	for _, c := range m.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

// mockRecorder implements activity.Recorder for testing
type mockRecorder struct {
	entries []activity.Entry
}

func (m *mockRecorder) Record(_ context.Context, entry activity.Entry) {
	m.entries = append(m.entries, entry)
}

func (m *mockRecorder) last() activity.Entry {
	return m.entries[len(m.entries)-1]
}

func TestCreateProduct_DerivesPrice(t *testing.T) {
	repo := newMockRepository()
	recorder := &mockRecorder{}
	svc := NewService(repo, recorder, nil)

	product, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:           "Neon Dreams",
		Category:        "Necklaces",
		BasePrice:       1000,
		DiscountPercent: 20,
		Images:          []string{"https://img/one.jpg", "https://img/two.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(800), product.Price)
	assert.Equal(t, "https://img/one.jpg", product.ImageURL())
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, activity.ActionProductAdded, recorder.last().ActionType)
	assert.Contains(t, recorder.last().Details, "Neon Dreams")
}

func TestCreateProduct_RejectsNegativeBasePrice(t *testing.T) {
	svc := NewService(newMockRepository(), &mockRecorder{}, nil)

	_, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:     "Broken",
		BasePrice: -5,
		Images:    []string{"https://img/x.jpg"},
	})
	assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
}

func TestCreateProduct_RequiresImages(t *testing.T) {
	svc := NewService(newMockRepository(), &mockRecorder{}, nil)

	_, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:     "No Pictures",
		BasePrice: 100,
	})
	assert.ErrorIs(t, err, ErrNoImages)
}

// Editing the discount alone recomputes the price from the untouched MRP.
func TestUpdateProduct_RecomputesPriceOnDiscountEdit(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &mockRecorder{}, nil)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Title:           "Ethereal Flow",
		BasePrice:       1000,
		DiscountPercent: 20,
		Images:          []string{"https://img/a.jpg"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(800), product.Price)

	zero := float64(0)
	updated, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductRequest{DiscountPercent: &zero})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), updated.BasePrice, "MRP untouched")
	assert.Equal(t, int64(1000), updated.Price, "price recomputed from MRP")
}

func TestUpdateProduct_PatchLeavesOtherFieldsAlone(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, &mockRecorder{}, nil)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Title:       "Golden Hour",
		ArtistCode:  "GH-01",
		Description: "A study in gold",
		BasePrice:   500,
		Images:      []string{"https://img/g.jpg"},
	})
	require.NoError(t, err)

	title := "Golden Hour II"
	updated, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Golden Hour II", updated.Title)
	assert.Equal(t, "GH-01", updated.ArtistCode)
	assert.Equal(t, "A study in gold", updated.Description)
	assert.Equal(t, int64(500), updated.Price)
}

func TestDeleteProduct_LogsTitleReadBeforeDelete(t *testing.T) {
	repo := newMockRepository()
	recorder := &mockRecorder{}
	svc := NewService(repo, recorder, nil)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Title:     "Vanishing Point",
		BasePrice: 300,
		Images:    []string{"https://img/v.jpg"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	assert.Equal(t, activity.ActionProductDeleted, recorder.last().ActionType)
	assert.Contains(t, recorder.last().Details, "Vanishing Point")

	_, err = svc.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteCategory_DoesNotCascadeToProducts(t *testing.T) {
	repo := newMockRepository()
	recorder := &mockRecorder{}
	products := NewService(repo, recorder, nil)
	categories := NewCategoryService(repo, recorder, nil)
	ctx := context.Background()

	category, err := categories.CreateCategory(ctx, &CreateCategoryRequest{Name: "Earrings"})
	require.NoError(t, err)

	product, err := products.CreateProduct(ctx, &CreateProductRequest{
		Title:     "Moonlit Drop",
		Category:  "Earrings",
		BasePrice: 450,
		Images:    []string{"https://img/m.jpg"},
	})
	require.NoError(t, err)

	require.NoError(t, categories.DeleteCategory(ctx, category.ID))

	// orphaned reference is tolerated, not cascaded
	kept, err := products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Earrings", kept.Category)
	assert.Equal(t, activity.ActionCategoryDeleted, recorder.last().ActionType)
}

func TestCreateCategory_AcceptsDuplicateNames(t *testing.T) {
	categories := NewCategoryService(newMockRepository(), &mockRecorder{}, nil)
	ctx := context.Background()

	first, err := categories.CreateCategory(ctx, &CreateCategoryRequest{Name: "Rings"})
	require.NoError(t, err)
	second, err := categories.CreateCategory(ctx, &CreateCategoryRequest{Name: "Rings"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
