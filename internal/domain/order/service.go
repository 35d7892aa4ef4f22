// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/pkg/events"
)

var (
	// ErrTotalMismatch is returned when the submitted total disagrees with
	// the recomputed sum over the snapshot items.
	ErrTotalMismatch = errors.New("order total does not match item totals")

	// ErrEmptyOrder is returned when a draft carries no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrMissingCustomerField is returned when a required buyer detail is
	// empty.
	ErrMissingCustomerField = errors.New("customer name, email, phone and address are required")
)

// Draft is the checkout's order submission: buyer details plus the cart
// snapshot and the total the cart reported.
type Draft struct {
	Customer Customer
	Items    []Item
	Total    int64
}

// Service handles order ledger business logic
type Service struct {
	repo     Repository
	recorder activity.Recorder
	bus      *events.Bus
	now      func() time.Time
}

// NewService creates a new order service
func NewService(repo Repository, recorder activity.Recorder, bus *events.Bus) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		bus:      bus,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service clock. Used by tests to pin order numbers
// and timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateOrder validates the draft, persists it as a Pending order with a
// generated time-derived number, appends the CHECKOUT_SUBMITTED audit entry
// and publishes order.created. The audit write is best-effort and happens
// only after the order exists.
func (s *Service) CreateOrder(ctx context.Context, draft *Draft) (*Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if draft.Customer.Name == "" || draft.Customer.Email == "" ||
		draft.Customer.Phone == "" || draft.Customer.Address == "" {
		return nil, ErrMissingCustomerField
	}

	order := &Order{
		Number:   FormatNumber(s.now()),
		Customer: draft.Customer,
		Items:    draft.Items,
		Total:    draft.Total,
		Status:   StatusPending,
	}

	for i := range order.Items {
		order.Items[i].TotalPrice = order.Items[i].Price * int64(order.Items[i].Quantity)
	}

	// The submitted total must match the snapshot; a drifted client total is
	// rejected rather than silently corrected.
	if order.ItemsTotal() != draft.Total {
		return nil, ErrTotalMismatch
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType:  activity.ActionCheckoutSubmitted,
		Details:     fmt.Sprintf("Order placed for ₹%d", order.Total),
		OrderNumber: order.Number,
		ActorName:   order.Customer.Name,
		ActorEmail:  order.Customer.Email,
	})

	if s.bus != nil {
		s.bus.Publish(events.TopicOrderCreated, order.Number)
	}

	return order, nil
}

// VerifyOrder transitions a Pending order to Verified. Verifying an
// already-Verified or unknown order is a corrective no-op: no error, no
// duplicate audit entry, no other field touched.
func (s *Service) VerifyOrder(ctx context.Context, number string) error {
	order, err := s.repo.GetByNumber(ctx, number)
	if errors.Is(err, ErrOrderNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	if !order.Verify() {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, number, StatusVerified); err != nil {
		return err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActionType:  activity.ActionOrderVerified,
		Details:     "Order verified",
		OrderNumber: number,
	})

	return nil
}

// GetOrder retrieves an order by its number.
func (s *Service) GetOrder(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

// ListOrders retrieves all orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}
