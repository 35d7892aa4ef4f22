package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	orders map[string]*Order
	fail   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{orders: make(map[string]*Order)}
}

func (m *mockRepository) Create(_ context.Context, order *Order) error {
	if m.fail != nil {
		return m.fail
	}
	copied := *order
	m.orders[order.Number] = &copied
	return nil
}

func (m *mockRepository) GetByNumber(_ context.Context, number string) (*Order, error) {
	if o, ok := m.orders[number]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, ErrOrderNotFound
}

func (m *mockRepository) UpdateStatus(_ context.Context, number string, status Status) error {
	if o, ok := m.orders[number]; ok {
		o.Status = status
	}
	return nil
}

func (m *mockRepository) List(_ context.Context) ([]Order, error) {
	var orders []Order
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

// mockRecorder implements activity.Recorder for testing
type mockRecorder struct {
	entries []activity.Entry
}

func (m *mockRecorder) Record(_ context.Context, entry activity.Entry) {
	m.entries = append(m.entries, entry)
}

func happyDraft() *Draft {
	return &Draft{
		Customer: Customer{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 Lotus Lane, Art City",
		},
		Items: []Item{
			{ProductID: 1, Title: "Neon Dreams", BasePrice: 150, Price: 150, Quantity: 1},
			{ProductID: 2, Title: "Ethereal Flow", BasePrice: 250, DiscountPercent: 20, Price: 200, Quantity: 2},
		},
		Total: 550,
	}
}

func fixedClock() func() time.Time {
	at := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestCreateOrder_HappyPath(t *testing.T) {
	repo := newMockRepository()
	recorder := &mockRecorder{}
	svc := NewService(repo, recorder, nil).WithClock(fixedClock())

	order, err := svc.CreateOrder(context.Background(), happyDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(550), order.Total)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, FormatNumber(fixedClock()()), order.Number)
	assert.Equal(t, int64(400), order.Items[1].TotalPrice)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, activity.ActionCheckoutSubmitted, entry.ActionType)
	assert.Equal(t, order.Number, entry.OrderNumber, "audit entry correlated by order number")
	assert.Equal(t, "Asha Rao", entry.ActorName)
}

func TestCreateOrder_RejectsTotalMismatch(t *testing.T) {
	svc := NewService(newMockRepository(), &mockRecorder{}, nil)

	draft := happyDraft()
	draft.Total = 500

	_, err := svc.CreateOrder(context.Background(), draft)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestCreateOrder_RejectsEmptyCartAndMissingFields(t *testing.T) {
	svc := NewService(newMockRepository(), &mockRecorder{}, nil)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, &Draft{Customer: happyDraft().Customer})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	draft := happyDraft()
	draft.Customer.Phone = ""
	_, err = svc.CreateOrder(ctx, draft)
	assert.ErrorIs(t, err, ErrMissingCustomerField)
}

func TestVerifyOrder_TransitionsOnce(t *testing.T) {
	repo := newMockRepository()
	recorder := &mockRecorder{}
	svc := NewService(repo, recorder, nil).WithClock(fixedClock())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, happyDraft())
	require.NoError(t, err)

	require.NoError(t, svc.VerifyOrder(ctx, order.Number))

	verified, err := svc.GetOrder(ctx, order.Number)
	require.NoError(t, err)
	assert.Equal(t, StatusVerified, verified.Status)
	assert.Equal(t, int64(550), verified.Total, "verification never touches totals")

	require.Len(t, recorder.entries, 2)
	assert.Equal(t, activity.ActionOrderVerified, recorder.entries[1].ActionType)

	// second verify is a no-op: status unchanged, no duplicate log entry
	require.NoError(t, svc.VerifyOrder(ctx, order.Number))
	again, err := svc.GetOrder(ctx, order.Number)
	require.NoError(t, err)
	assert.Equal(t, StatusVerified, again.Status)
	assert.Len(t, recorder.entries, 2)
}

func TestVerifyOrder_UnknownNumberIsNoOp(t *testing.T) {
	recorder := &mockRecorder{}
	svc := NewService(newMockRepository(), recorder, nil)

	assert.NoError(t, svc.VerifyOrder(context.Background(), "ORD-404"))
	assert.Empty(t, recorder.entries)
}

func TestFormatNumber(t *testing.T) {
	at := time.UnixMilli(1715344200000).UTC()
	assert.Equal(t, "ORD-1715344200000", FormatNumber(at))
}

func TestVerifyEntity(t *testing.T) {
	o := Order{Status: StatusPending}
	assert.True(t, o.Verify())
	assert.Equal(t, StatusVerified, o.Status)
	assert.False(t, o.Verify(), "verified order never transitions again")
}
