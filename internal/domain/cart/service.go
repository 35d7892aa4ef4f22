// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/novagallery/gallery-backend/internal/domain/pricing"
	"github.com/novagallery/gallery-backend/internal/pkg/events"
)

// ProductSnapshot carries the display and pricing fields copied into a line
// item when a product is added. The handler builds it from the catalog
// record so this package stays independent of the persistence backend.
type ProductSnapshot struct {
	ProductID       uint
	Title           string
	ArtistCode      string
	ImageURL        string
	BasePrice       int64
	DiscountPercent float64
	Price           int64
}

// Service handles cart business logic
type Service struct {
	store Store
	bus   *events.Bus
}

// NewService creates a new cart service
func NewService(store Store, bus *events.Bus) *Service {
	return &Service{
		store: store,
		bus:   bus,
	}
}

// GetCart retrieves the session cart with derived totals.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(session), nil
}

// AddToCart adds a product to the cart. Adding a product already present
// increments its quantity instead of duplicating the line. The cart drawer
// is flagged open and cart.opened published for the display layer.
func (s *Service) AddToCart(ctx context.Context, sessionID string, snap ProductSnapshot) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range session.Items {
		if session.Items[i].ProductID == snap.ProductID {
			session.Items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		session.Items = append(session.Items, LineItem{
			ProductID:       snap.ProductID,
			Title:           snap.Title,
			ArtistCode:      snap.ArtistCode,
			ImageURL:        snap.ImageURL,
			BasePrice:       snap.BasePrice,
			DiscountPercent: snap.DiscountPercent,
			Price:           snap.Price,
			Quantity:        1,
			AddedAt:         time.Now().UTC(),
		})
	}

	session.IsOpen = true
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(events.TopicCartOpened, sessionID)
	}

	return s.toResponse(session), nil
}

// RemoveFromCart deletes a line item. Removing an absent product is a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, sessionID string, productID uint) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range session.Items {
		if session.Items[i].ProductID == productID {
			session.Items = append(session.Items[:i], session.Items[i+1:]...)
			session.UpdatedAt = time.Now().UTC()
			if err := s.store.Save(ctx, session); err != nil {
				return nil, err
			}
			break
		}
	}

	return s.toResponse(session), nil
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1. Items are
// only ever removed through RemoveFromCart, never by decrementing to zero.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID uint, delta int) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range session.Items {
		if session.Items[i].ProductID == productID {
			newQuantity := session.Items[i].Quantity + delta
			if newQuantity < 1 {
				newQuantity = 1
			}
			session.Items[i].Quantity = newQuantity
			found = true
			break
		}
	}

	if !found {
		return nil, fmt.Errorf("item not found in cart")
	}

	session.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	return s.toResponse(session), nil
}

// ClearCart empties the session cart. Called once, synchronously, after a
// successful order submission.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// SetCartOpen flips the drawer-visibility flag.
func (s *Service) SetCartOpen(ctx context.Context, sessionID string, open bool) error {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.IsOpen = open
	session.UpdatedAt = time.Now().UTC()
	return s.store.Save(ctx, session)
}

func (s *Service) toResponse(session *Session) *Response {
	lines := make([]pricing.Line, len(session.Items))
	totalQuantity := 0
	for i, item := range session.Items {
		lines[i] = pricing.Line{Price: item.Price, Quantity: item.Quantity}
		totalQuantity += item.Quantity
	}

	return &Response{
		SessionID: session.SessionID,
		Items:     session.Items,
		Totals: Totals{
			ItemCount:     len(session.Items),
			TotalQuantity: totalQuantity,
			TotalAmount:   pricing.CartTotal(lines),
		},
		IsOpen:    session.IsOpen,
		UpdatedAt: session.UpdatedAt,
	}
}
