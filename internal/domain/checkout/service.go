// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/novagallery/gallery-backend/internal/domain/cart"
	"github.com/novagallery/gallery-backend/internal/domain/order"
)

var (
	// ErrEmptyCart is returned when proceeding past the cart review with
	// nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidTransition is returned when an action does not apply to the
	// machine's current state.
	ErrInvalidTransition = errors.New("invalid checkout transition")

	// ErrConfirmInFlight is returned when payment confirmation is requested
	// while a previous confirmation is still being verified.
	ErrConfirmInFlight = errors.New("payment confirmation already in progress")

	// ErrMissingDetails is returned when a buyer detail is empty.
	ErrMissingDetails = errors.New("name, email, phone and address are required")
)

// CartService is the slice of the cart the checkout machine needs.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*cart.Response, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// OrderCreator hands completed drafts to the order ledger.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft *order.Draft) (*order.Order, error)
}

// Service drives the three-step checkout flow:
// Cart -> Details -> Payment -> Success.
type Service struct {
	store  Store
	carts  CartService
	orders OrderCreator
	logger *logrus.Logger
	delay  time.Duration
}

// NewService creates a new checkout service
func NewService(store Store, carts CartService, orders OrderCreator, logger *logrus.Logger, delay time.Duration) *Service {
	return &Service{
		store:  store,
		carts:  carts,
		orders: orders,
		logger: logger,
		delay:  delay,
	}
}

// DetailsRequest represents the buyer details captured at checkout
type DetailsRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// GetState returns the current machine state.
func (s *Service) GetState(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

// Proceed moves Cart -> Details. Requires a non-empty cart.
func (s *Service) Proceed(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != StateCart {
		return nil, ErrInvalidTransition
	}

	cartResp, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartResp.Items) == 0 {
		return nil, ErrEmptyCart
	}

	session.State = StateDetails
	return s.save(ctx, session)
}

// SubmitDetails moves Details -> Payment after validating the buyer fields.
func (s *Service) SubmitDetails(ctx context.Context, sessionID string, req *DetailsRequest) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != StateDetails {
		return nil, ErrInvalidTransition
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		return nil, ErrMissingDetails
	}

	session.Customer = order.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	session.State = StatePayment
	return s.save(ctx, session)
}

// Back steps Details -> Cart or Payment -> Details. Success never goes back.
func (s *Service) Back(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case StateDetails:
		session.State = StateCart
	case StatePayment:
		if session.Processing {
			return nil, ErrConfirmInFlight
		}
		session.State = StateDetails
	default:
		return nil, ErrInvalidTransition
	}

	return s.save(ctx, session)
}

// ConfirmPayment runs the simulated payment verification and submits the
// order. The Processing flag is persisted before the verification window
// opens, so a repeated confirm while in flight is rejected. Ordering on
// success is fixed: ledger create, then audit entry (inside the ledger),
// then cart clear, then the Success transition.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != StatePayment {
		return nil, ErrInvalidTransition
	}
	if session.Processing {
		return nil, ErrConfirmInFlight
	}

	session.Processing = true
	if _, err := s.save(ctx, session); err != nil {
		return nil, err
	}

	// Simulated verification latency. Cancellation-safe: an abandoned
	// request releases the in-flight guard so a manual retry can proceed.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		s.release(sessionID, session)
		return nil, ctx.Err()
	}

	cartResp, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		s.release(sessionID, session)
		return nil, err
	}
	if len(cartResp.Items) == 0 {
		s.release(sessionID, session)
		return nil, ErrEmptyCart
	}

	draft := &order.Draft{
		Customer: session.Customer,
		Items:    snapshotItems(cartResp.Items),
		Total:    cartResp.Totals.TotalAmount,
	}

	created, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		// Stay in Payment; retry is manual.
		s.release(sessionID, session)
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		// The order exists; a lingering cart is the lesser evil.
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"order_id":   created.Number,
			"error":      err.Error(),
		}).Warn("Failed to clear cart after order submission")
	}

	session.Processing = false
	session.State = StateSuccess
	session.OrderNumber = created.Number
	return s.save(ctx, session)
}

// Reset returns the machine to the Cart state for the next flow. Closing the
// drawer mid-checkout lands here.
func (s *Service) Reset(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Processing {
		return nil, ErrConfirmInFlight
	}

	session.State = StateCart
	session.Customer = order.Customer{}
	session.OrderNumber = ""
	return s.save(ctx, session)
}

// release clears the in-flight guard, best-effort.
func (s *Service) release(sessionID string, session *Session) {
	session.Processing = false
	session.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(context.Background(), session); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to release checkout confirmation guard")
	}
}

func (s *Service) save(ctx context.Context, session *Session) (*Response, error) {
	session.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

func toResponse(session *Session) *Response {
	return &Response{
		SessionID:   session.SessionID,
		State:       session.State,
		Customer:    session.Customer,
		Processing:  session.Processing,
		OrderNumber: session.OrderNumber,
	}
}

func snapshotItems(items []cart.LineItem) []order.Item {
	snapshot := make([]order.Item, len(items))
	for i, item := range items {
		snapshot[i] = order.Item{
			ProductID:       item.ProductID,
			Title:           item.Title,
			ArtistCode:      item.ArtistCode,
			BasePrice:       item.BasePrice,
			DiscountPercent: item.DiscountPercent,
			Price:           item.Price,
			Quantity:        item.Quantity,
		}
	}
	return snapshot
}
