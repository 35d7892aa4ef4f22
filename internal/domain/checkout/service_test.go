package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novagallery/gallery-backend/internal/domain/cart"
	"github.com/novagallery/gallery-backend/internal/domain/order"
)

// memoryStore implements Store for testing
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		copied := *s
		return &copied, nil
	}
	return &Session{SessionID: sessionID, State: StateCart}, nil
}

func (m *memoryStore) Save(_ context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

// fakeCarts implements CartService for testing
type fakeCarts struct {
	items   []cart.LineItem
	cleared bool
}

func (f *fakeCarts) GetCart(_ context.Context, sessionID string) (*cart.Response, error) {
	var total int64
	quantity := 0
	for _, item := range f.items {
		total += item.Price * int64(item.Quantity)
		quantity += item.Quantity
	}
	return &cart.Response{
		SessionID: sessionID,
		Items:     f.items,
		Totals:    cart.Totals{ItemCount: len(f.items), TotalQuantity: quantity, TotalAmount: total},
	}, nil
}

func (f *fakeCarts) ClearCart(_ context.Context, _ string) error {
	f.cleared = true
	f.items = nil
	return nil
}

// fakeLedger implements OrderCreator for testing
type fakeLedger struct {
	fail    error
	created []*order.Draft
}

func (f *fakeLedger) CreateOrder(_ context.Context, draft *order.Draft) (*order.Order, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = append(f.created, draft)
	return &order.Order{
		Number:   "ORD-1715344200000",
		Customer: draft.Customer,
		Total:    draft.Total,
		Status:   order.StatusPending,
	}, nil
}

func testItems() []cart.LineItem {
	return []cart.LineItem{
		{ProductID: 1, Title: "Neon Dreams", BasePrice: 150, Price: 150, Quantity: 1},
		{ProductID: 2, Title: "Ethereal Flow", BasePrice: 250, DiscountPercent: 20, Price: 200, Quantity: 2},
	}
}

func validDetails() *DetailsRequest {
	return &DetailsRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 Lotus Lane, Art City",
	}
}

func newTestService(carts CartService, ledger OrderCreator) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(newMemoryStore(), carts, ledger, logger, time.Millisecond)
}

func advanceToPayment(t *testing.T, svc *Service, sessionID string) {
	t.Helper()
	_, err := svc.Proceed(context.Background(), sessionID)
	require.NoError(t, err)
	_, err = svc.SubmitDetails(context.Background(), sessionID, validDetails())
	require.NoError(t, err)
}

func TestProceed_RequiresNonEmptyCart(t *testing.T) {
	svc := newTestService(&fakeCarts{}, &fakeLedger{})

	_, err := svc.Proceed(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestHappyPath(t *testing.T) {
	carts := &fakeCarts{items: testItems()}
	ledger := &fakeLedger{}
	svc := newTestService(carts, ledger)
	ctx := context.Background()

	resp, err := svc.Proceed(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateDetails, resp.State)

	resp, err = svc.SubmitDetails(ctx, "s1", validDetails())
	require.NoError(t, err)
	assert.Equal(t, StatePayment, resp.State)

	resp, err = svc.ConfirmPayment(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, resp.State)
	assert.Equal(t, "ORD-1715344200000", resp.OrderNumber)
	assert.False(t, resp.Processing)
	assert.True(t, carts.cleared, "cart cleared after ledger confirmed creation")

	require.Len(t, ledger.created, 1)
	draft := ledger.created[0]
	assert.Equal(t, int64(550), draft.Total)
	assert.Len(t, draft.Items, 2)
	assert.Equal(t, "Asha Rao", draft.Customer.Name)
}

func TestSubmitDetails_OnlyFromDetails(t *testing.T) {
	svc := newTestService(&fakeCarts{items: testItems()}, &fakeLedger{})

	_, err := svc.SubmitDetails(context.Background(), "s1", validDetails())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSubmitDetails_RejectsMissingFields(t *testing.T) {
	svc := newTestService(&fakeCarts{items: testItems()}, &fakeLedger{})
	ctx := context.Background()

	_, err := svc.Proceed(ctx, "s1")
	require.NoError(t, err)

	details := validDetails()
	details.Address = ""
	_, err = svc.SubmitDetails(ctx, "s1", details)
	assert.ErrorIs(t, err, ErrMissingDetails)
}

func TestBack_StepsOneState(t *testing.T) {
	svc := newTestService(&fakeCarts{items: testItems()}, &fakeLedger{})
	ctx := context.Background()

	advanceToPayment(t, svc, "s1")

	resp, err := svc.Back(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateDetails, resp.State)

	resp, err = svc.Back(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateCart, resp.State)

	_, err = svc.Back(ctx, "s1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmPayment_SecondConfirmWhileInFlightIsRejected(t *testing.T) {
	carts := &fakeCarts{items: testItems()}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	// long delay keeps the first confirm in flight while the second arrives
	svc := NewService(newMemoryStore(), carts, &fakeLedger{}, logger, 200*time.Millisecond)
	ctx := context.Background()

	advanceToPayment(t, svc, "s1")

	done := make(chan error, 1)
	go func() {
		_, err := svc.ConfirmPayment(ctx, "s1")
		done <- err
	}()

	// wait until the guard is persisted
	require.Eventually(t, func() bool {
		resp, err := svc.GetState(ctx, "s1")
		return err == nil && resp.Processing
	}, time.Second, 5*time.Millisecond)

	_, err := svc.ConfirmPayment(ctx, "s1")
	assert.ErrorIs(t, err, ErrConfirmInFlight)

	require.NoError(t, <-done)

	resp, err := svc.GetState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, resp.State)
}

func TestConfirmPayment_LedgerFailureStaysInPayment(t *testing.T) {
	carts := &fakeCarts{items: testItems()}
	ledger := &fakeLedger{fail: errors.New("backend rejected write")}
	svc := newTestService(carts, ledger)
	ctx := context.Background()

	advanceToPayment(t, svc, "s1")

	_, err := svc.ConfirmPayment(ctx, "s1")
	require.Error(t, err)

	resp, err := svc.GetState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StatePayment, resp.State, "failure keeps the machine in Payment for manual retry")
	assert.False(t, resp.Processing, "guard released for retry")
	assert.False(t, carts.cleared, "cart untouched on failure")

	// manual retry succeeds once the backend recovers
	ledger.fail = nil
	resp, err = svc.ConfirmPayment(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, resp.State)
}

func TestReset_ReturnsToCart(t *testing.T) {
	svc := newTestService(&fakeCarts{items: testItems()}, &fakeLedger{})
	ctx := context.Background()

	advanceToPayment(t, svc, "s1")

	resp, err := svc.Reset(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateCart, resp.State)
	assert.Empty(t, resp.Customer.Name)
	assert.Empty(t, resp.OrderNumber)
}
