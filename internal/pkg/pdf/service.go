// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/sirupsen/logrus"

	"github.com/novagallery/gallery-backend/internal/config"
	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/domain/settings"
)

// Footer defaults used when invoice settings were never configured.
const (
	defaultFooterAddress = "123 Gallery St, Art City, AC 54321"
	defaultFooterEmail   = "support@novagallery.com"
	defaultFooterWebsite = "www.novagallery.com"
	thankYouLine         = "Thank you for being part of the Nova Family"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// Service handles invoice generation
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new invoice service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// GenerateInvoice renders an order into a PDF invoice. The layout is
// deterministic for a fixed order, settings and clock; the clock only feeds
// the printed date and the invoice ID suffix.
func (s *Service) GenerateInvoice(o *order.Order, st *settings.InvoiceSettings, now time.Time) (*bytes.Buffer, error) {
	htmlContent, err := s.InvoiceHTML(o, st, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice layout: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// Filename derives the download filename from the sanitized order number.
func (s *Service) Filename(o *order.Order) string {
	return fmt.Sprintf("invoice-%s.pdf", unsafeFilenameChars.ReplaceAllString(o.Number, "-"))
}

// InvoiceHTML builds the invoice document markup. Split from PDF conversion
// so layout determinism is testable without a wkhtmltopdf binary.
func (s *Service) InvoiceHTML(o *order.Order, st *settings.InvoiceSettings, now time.Time) (string, error) {
	data := s.buildData(o, st, now)

	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute invoice template: %w", err)
	}

	return buf.String(), nil
}

// invoiceRow is one itemized table line
type invoiceRow struct {
	Title      string
	Quantity   int
	BasePrice  int64
	DiscountPc string
	Price      int64
	Total      int64
	Shaded     bool // alternating row background, every even-indexed row
}

// invoiceData is the template payload
type invoiceData struct {
	BrandName   string
	Tagline     string
	LogoDataURI template.URL
	InvoiceID   string
	Date        string
	Customer    order.Customer
	Rows        []invoiceRow
	HasSavings  bool
	TotalMRP    int64
	Savings     int64
	Total       int64
	FooterLine  string
	ThankYou    string
}

func (s *Service) buildData(o *order.Order, st *settings.InvoiceSettings, now time.Time) invoiceData {
	rows := make([]invoiceRow, len(o.Items))
	var totalMRP int64
	for i, item := range o.Items {
		base := item.BasePrice
		if base == 0 {
			base = item.Price
		}
		totalMRP += base * int64(item.Quantity)
		rows[i] = invoiceRow{
			Title:      item.Title,
			Quantity:   item.Quantity,
			BasePrice:  base,
			DiscountPc: fmt.Sprintf("%g%%", item.DiscountPercent),
			Price:      item.Price,
			Total:      item.Price * int64(item.Quantity),
			Shaded:     i%2 == 0,
		}
	}

	savings := totalMRP - o.Total

	address := defaultFooterAddress
	email := defaultFooterEmail
	website := defaultFooterWebsite
	if st != nil {
		if st.Address != "" {
			address = st.Address
		}
		if st.Email != "" {
			email = st.Email
		}
		if st.Website != "" {
			website = st.Website
		}
	}

	return invoiceData{
		BrandName:   s.config.Invoice.BrandName,
		Tagline:     s.config.Invoice.Tagline,
		LogoDataURI: s.loadLogo(),
		InvoiceID:   invoiceID(now),
		Date:        now.Format("02/01/2006"),
		Customer:    o.Customer,
		Rows:        rows,
		HasSavings:  savings > 0,
		TotalMRP:    totalMRP,
		Savings:     savings,
		Total:       o.Total,
		FooterLine:  fmt.Sprintf("%s  |  %s  |  %s", address, email, website),
		ThankYou:    thankYouLine,
	}
}

// invoiceID embeds the last six digits of the clock's millisecond timestamp.
func invoiceID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("#NOV-%s", millis)
}

// loadLogo inlines the decorative logo when present. A missing or unreadable
// asset degrades to no logo rather than failing the invoice.
func (s *Service) loadLogo() template.URL {
	if s.config.Invoice.LogoPath == "" {
		return ""
	}
	raw, err := os.ReadFile(s.config.Invoice.LogoPath)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"path":  s.config.Invoice.LogoPath,
			"error": err.Error(),
		}).Warn("Could not load logo for invoice")
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
}

// Invoice HTML template. Visual grammar mirrors the storefront's printed
// invoice: deep-wine header band with gold accents, itemized table with
// alternating row shading, savings summary, wine footer band.
const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceID}}</title>
    <style>
        body {
            font-family: Helvetica, Arial, sans-serif;
            margin: 0;
            padding: 0;
            background-color: #fdfbf7;
            color: #3c3c3c;
        }
        .header {
            background-color: #4C0B0D;
            border-bottom: 4px solid #D4AF37;
            text-align: center;
            padding: 18px 0 22px 0;
        }
        .header img {
            width: 72px;
            height: 72px;
        }
        .brand-name {
            font-family: "Times New Roman", serif;
            font-size: 28px;
            font-weight: bold;
            color: #D4AF37;
            margin: 8px 0 4px 0;
        }
        .tagline {
            font-size: 11px;
            letter-spacing: 2px;
            color: #E5C978;
        }
        .meta {
            display: flex;
            justify-content: space-between;
            padding: 30px 40px 10px 40px;
        }
        .invoice-title {
            font-family: "Times New Roman", serif;
            font-size: 22px;
            font-weight: bold;
            color: #4C0B0D;
            margin-bottom: 10px;
        }
        .meta p {
            margin: 2px 0;
            font-size: 11px;
            color: #646464;
        }
        .bill-to {
            text-align: left;
        }
        .bill-to .section-title {
            font-weight: bold;
            font-size: 12px;
            color: #4C0B0D;
            margin-bottom: 6px;
        }
        .items-table {
            width: calc(100% - 80px);
            margin: 20px 40px;
            border-collapse: collapse;
            font-size: 11px;
        }
        .items-table th {
            background-color: #4C0B0D;
            color: #ffffff;
            font-weight: bold;
            text-align: left;
            padding: 8px;
        }
        .items-table td {
            padding: 7px 8px;
        }
        .items-table tr.shaded td {
            background-color: #f8f5f0;
        }
        .items-table .num-col {
            text-align: right;
        }
        .summary {
            margin: 10px 40px;
            padding-top: 14px;
            border-top: 1px solid #D4AF37;
            text-align: right;
        }
        .summary .mrp-line {
            font-size: 11px;
            color: #646464;
            margin: 2px 0;
        }
        .summary .total-label {
            font-family: "Times New Roman", serif;
            font-size: 15px;
            font-weight: bold;
            color: #4C0B0D;
            margin-right: 16px;
        }
        .summary .total-amount {
            font-family: "Times New Roman", serif;
            font-size: 17px;
            font-weight: bold;
            color: #D4AF37;
        }
        .footer {
            background-color: #3A090A;
            color: #E5C978;
            text-align: center;
            font-size: 10px;
            padding: 14px 0;
            margin-top: 50px;
        }
        .footer p {
            margin: 4px 0;
        }
    </style>
</head>
<body>
    <div class="header">
        {{if .LogoDataURI}}<img src="{{.LogoDataURI}}" alt="">{{end}}
        <div class="brand-name">{{.BrandName}}</div>
        <div class="tagline">{{.Tagline}}</div>
    </div>

    <div class="meta">
        <div>
            <div class="invoice-title">INVOICE</div>
            <p>Date: {{.Date}}</p>
            <p>Invoice ID: {{.InvoiceID}}</p>
        </div>
        <div class="bill-to">
            <div class="section-title">Bill To</div>
            <p>{{.Customer.Name}}</p>
            <p>{{.Customer.Email}}</p>
            <p>{{.Customer.Phone}}</p>
            <p>{{.Customer.Address}}</p>
        </div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>ITEM DESCRIPTION</th>
                <th class="num-col">QTY</th>
                <th class="num-col">MRP</th>
                <th class="num-col">DISC</th>
                <th class="num-col">PRICE</th>
                <th class="num-col">TOTAL</th>
            </tr>
        </thead>
        <tbody>
            {{range .Rows}}
            <tr{{if .Shaded}} class="shaded"{{end}}>
                <td>{{.Title}}</td>
                <td class="num-col">{{.Quantity}}</td>
                <td class="num-col">&#8377;{{.BasePrice}}</td>
                <td class="num-col">{{.DiscountPc}}</td>
                <td class="num-col">&#8377;{{.Price}}</td>
                <td class="num-col">&#8377;{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="summary">
        {{if .HasSavings}}
        <p class="mrp-line">Total MRP: &#8377;{{.TotalMRP}}</p>
        <p class="mrp-line">Total Savings: -&#8377;{{.Savings}}</p>
        {{end}}
        <span class="total-label">TOTAL AMOUNT</span>
        <span class="total-amount">&#8377;{{.Total}}</span>
    </div>

    <div class="footer">
        <p>{{.FooterLine}}</p>
        <p>{{.ThankYou}}</p>
    </div>
</body>
</html>
`
