package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/order"
)

func TestOrdersCSV(t *testing.T) {
	// 2024-05-10 12:30:00 UTC is 18:00:00 IST
	created := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

	orders := []order.Order{
		{
			Number: "ORD-1715344200000",
			Customer: order.Customer{
				Name:    "Asha Rao",
				Email:   "asha@example.com",
				Phone:   "9876543210",
				Address: "12 Pearl Lane, Kochi",
			},
			Total:     950,
			Status:    order.StatusVerified,
			CreatedAt: created,
			Items: []order.Item{
				{Title: "Neon Dreams", BasePrice: 200, DiscountPercent: 25, Price: 150, Quantity: 1},
				{Title: "Ethereal Flow", Price: 400, Quantity: 2},
			},
		},
	}

	buf, err := OrdersCSV(orders)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Order ID,Date,Time,Customer Name,Email,Phone,Address,Items,Total,Status", strings.TrimSpace(lines[0]))

	row := lines[1]
	assert.Contains(t, row, "ORD-1715344200000")
	assert.Contains(t, row, "10-05-2024")
	assert.Contains(t, row, "06:00:00 pm")
	assert.Contains(t, row, "Neon Dreams (x1) [MRP: 200, Disc: 25%, Price: 150]; Ethereal Flow (x2) [Price: 400]")
	assert.Contains(t, row, "950.00")
	assert.Contains(t, row, "Verified")
}

func TestOrdersCSV_EmptyFieldsDashed(t *testing.T) {
	orders := []order.Order{
		{
			Number:    "ORD-1",
			Total:     100,
			Status:    order.StatusPending,
			CreatedAt: time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC),
		},
	}

	buf, err := OrdersCSV(orders)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	// name, email, phone, address and items all dash out
	assert.Contains(t, lines[1], "-,-,-,-,-")
}

func TestLogsCSV(t *testing.T) {
	logs := []activity.ActivityLog{
		{
			Timestamp:   time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC),
			ActionType:  activity.ActionOrderVerified,
			ActorName:   "Super Admin",
			ActorEmail:  "admin@nova.local",
			OrderNumber: "ORD-1715344200000",
			Details:     "Order verified",
		},
		{
			Timestamp:  time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			ActionType: activity.ActionAdminLogin,
			ActorName:  "Super Admin",
			ActorEmail: "admin@nova.local",
			Details:    "Admin logged in",
		},
	}

	buf, err := LogsCSV(logs)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Timestamp,Action Type,User Name,User Email,Order ID,Details", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "10-05-2024 06:00:00 pm")
	assert.Contains(t, lines[1], "ORDER_VERIFIED")
	assert.Contains(t, lines[1], "ORD-1715344200000")
	// no correlated order dashes out
	assert.Contains(t, lines[2], ",-,")
}

func TestFormatTime12h(t *testing.T) {
	assert.Equal(t, "12:05:09 am", formatTime12h(time.Date(2024, 1, 1, 0, 5, 9, 0, time.UTC)))
	assert.Equal(t, "01:30:00 pm", formatTime12h(time.Date(2024, 1, 1, 13, 30, 0, 0, time.UTC)))
}
