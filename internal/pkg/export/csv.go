// internal/pkg/export/csv.go
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/order"
)

// Local wall-clock for exported timestamps. The back office operates in IST.
var exportLocation = mustLoadLocation("Asia/Kolkata")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// orderRow is one exported order line
type orderRow struct {
	OrderID string `csv:"Order ID"`
	Date    string `csv:"Date"`
	Time    string `csv:"Time"`
	Name    string `csv:"Customer Name"`
	Email   string `csv:"Email"`
	Phone   string `csv:"Phone"`
	Address string `csv:"Address"`
	Items   string `csv:"Items"`
	Total   string `csv:"Total"`
	Status  string `csv:"Status"`
}

// logRow is one exported activity line
type logRow struct {
	Timestamp  string `csv:"Timestamp"`
	ActionType string `csv:"Action Type"`
	UserName   string `csv:"User Name"`
	UserEmail  string `csv:"User Email"`
	OrderID    string `csv:"Order ID"`
	Details    string `csv:"Details"`
}

// OrdersCSV serializes orders for spreadsheet import, newest rows as given.
func OrdersCSV(orders []order.Order) (*bytes.Buffer, error) {
	rows := make([]orderRow, len(orders))
	for i, o := range orders {
		local := o.CreatedAt.In(exportLocation)
		rows[i] = orderRow{
			OrderID: o.Number,
			Date:    local.Format("02-01-2006"),
			Time:    formatTime12h(local),
			Name:    orDash(o.Customer.Name),
			Email:   orDash(o.Customer.Email),
			Phone:   orDash(o.Customer.Phone),
			Address: orDash(o.Customer.Address),
			Items:   formatItems(o.Items),
			Total:   fmt.Sprintf("%.2f", float64(o.Total)),
			Status:  string(o.Status),
		}
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		return nil, fmt.Errorf("failed to marshal orders csv: %w", err)
	}
	return &buf, nil
}

// LogsCSV serializes the activity trail.
func LogsCSV(logs []activity.ActivityLog) (*bytes.Buffer, error) {
	rows := make([]logRow, len(logs))
	for i, l := range logs {
		local := l.Timestamp.In(exportLocation)
		rows[i] = logRow{
			Timestamp:  fmt.Sprintf("%s %s", local.Format("02-01-2006"), formatTime12h(local)),
			ActionType: string(l.ActionType),
			UserName:   orDash(l.ActorName),
			UserEmail:  orDash(l.ActorEmail),
			OrderID:    orDash(l.OrderNumber),
			Details:    orDash(l.Details),
		}
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		return nil, fmt.Errorf("failed to marshal logs csv: %w", err)
	}
	return &buf, nil
}

// formatItems collapses line items into one readable cell. Discounted items
// carry the full pricing breakdown, full-price items just the price.
func formatItems(items []order.Item) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		if item.DiscountPercent > 0 {
			parts[i] = fmt.Sprintf("%s (x%d) [MRP: %d, Disc: %g%%, Price: %d]",
				item.Title, item.Quantity, item.BasePrice, item.DiscountPercent, item.Price)
		} else {
			parts[i] = fmt.Sprintf("%s (x%d) [Price: %d]", item.Title, item.Quantity, item.Price)
		}
	}
	return strings.Join(parts, "; ")
}

// formatTime12h renders hh:mm:ss with a lowercase meridiem.
func formatTime12h(t time.Time) string {
	return strings.ToLower(t.Format("03:04:05 PM"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
