package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore implements Store for testing
type memoryStore struct {
	sessions map[string]*Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	if s, ok := m.sessions[sessionID]; ok {
		copied := *s
		copied.Items = append([]LineItem(nil), s.Items...)
		return &copied, nil
	}
	now := time.Now().UTC()
	return &Session{SessionID: sessionID, Items: []LineItem{}, CreatedAt: now, UpdatedAt: now}, nil
}

func (m *memoryStore) Save(_ context.Context, session *Session) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func neonDreams() ProductSnapshot {
	return ProductSnapshot{ProductID: 1, Title: "Neon Dreams", BasePrice: 150, Price: 150}
}

func etherealFlow() ProductSnapshot {
	return ProductSnapshot{ProductID: 2, Title: "Ethereal Flow", BasePrice: 250, DiscountPercent: 20, Price: 200}
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)

	resp, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "same product must not duplicate the line")
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.IsOpen, "adding opens the cart drawer")
}

func TestAddToCart_AppendsNewLine(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)
	resp, err := svc.AddToCart(ctx, "s1", etherealFlow())
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[1].Quantity)
	assert.Equal(t, int64(350), resp.Totals.TotalAmount)
}

func TestUpdateQuantity_NeverBelowOne(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)

	resp, err := svc.UpdateQuantity(ctx, "s1", 1, -1000)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	resp, err = svc.UpdateQuantity(ctx, "s1", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Items[0].Quantity)
}

func TestUpdateQuantity_UnknownProduct(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)

	_, err := svc.UpdateQuantity(context.Background(), "s1", 42, 1)
	assert.Error(t, err)
}

func TestRemoveFromCart(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", etherealFlow())
	require.NoError(t, err)

	resp, err := svc.RemoveFromCart(ctx, "s1", 1)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Ethereal Flow", resp.Items[0].Title)
	assert.Equal(t, int64(200), resp.Totals.TotalAmount, "total equals the remaining line alone")

	// removing an absent product is a no-op
	resp, err = svc.RemoveFromCart(ctx, "s1", 99)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestClearCart(t *testing.T) {
	svc := NewService(newMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", neonDreams())
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "s1"))

	resp, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Totals.TotalAmount)
}
