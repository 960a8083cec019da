package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/abelbrown/tagsift/internal/store"
)

// Supported product-listing layouts.
const (
	// LayoutAuto tries Layout1 and falls back to Layout2 when it finds nothing.
	LayoutAuto = ""
	// Layout1 lists products as li > .product.
	Layout1 = "layout1"
	// Layout2 lists products as li > .table-row > .product-detail-info.
	Layout2 = "layout2"
)

var layoutSelectors = map[string]string{
	Layout1: "li > .product",
	Layout2: "li > .table-row > .product-detail-info",
}

// HTML reads products from a listing page. Each product's first child holds
// the name and its second child the comma-separated description. A product
// with a single child wrapper is unwrapped first.
type HTML struct {
	fetcher  *Fetcher
	name     string
	location string
	layout   string
}

// NewHTML creates an HTML source reading location (URL or file path).
func NewHTML(f *Fetcher, name, location, layout string) *HTML {
	return &HTML{fetcher: f, name: name, location: location, layout: layout}
}

// Name returns the source name stored on every item.
func (h *HTML) Name() string { return h.name }

// Location returns the URL or path the source reads.
func (h *HTML) Location() string { return h.location }

// Items fetches and parses the listing.
func (h *HTML) Items(ctx context.Context) ([]store.Item, error) {
	body, err := h.fetcher.Open(ctx, h.location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	items, _, err := ParseHTML(body, h.name, h.layout)
	return items, err
}

// ParseHTML extracts products from r. It returns the layout actually used.
func ParseHTML(r io.Reader, source, layout string) ([]store.Item, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse html: %w", err)
	}

	var products *goquery.Selection
	switch layout {
	case LayoutAuto:
		layout = Layout1
		products = doc.Find(layoutSelectors[Layout1])
		if products.Length() == 0 {
			layout = Layout2
			products = doc.Find(layoutSelectors[Layout2])
		}
	case Layout1, Layout2:
		products = doc.Find(layoutSelectors[layout])
	default:
		return nil, "", fmt.Errorf("unknown layout %q", layout)
	}

	now := time.Now()
	items := make([]store.Item, 0, products.Length())
	products.Each(func(i int, p *goquery.Selection) {
		fields := p.Children()
		if fields.Length() == 1 {
			fields = fields.Children()
		}
		name := childText(fields, 0)
		desc := childText(fields, 1)
		url, _ := p.Find("a[href]").First().Attr("href")

		items = append(items, store.Item{
			ID:          itemID(source, fmt.Sprintf("%d\x00%s", i, name)),
			SourceName:  source,
			Name:        name,
			Description: desc,
			URL:         url,
			Position:    i,
			Fetched:     now,
		})
	})
	return items, layout, nil
}

func childText(s *goquery.Selection, i int) string {
	if i >= s.Length() {
		return ""
	}
	return strings.TrimSpace(s.Eq(i).Text())
}
