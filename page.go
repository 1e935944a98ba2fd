package wheelads

import "strings"

// Page holds the raw parts of a fetched ad page that extraction works on.
type Page struct {
	Title       string
	Description string
	// PriceText is the first visible text fragment containing a euro sign.
	PriceText string
	// StructuredData holds the raw text of every JSON-LD block on the page.
	StructuredData []string
	// Images holds absolute image URLs in discovery order, deduplicated.
	Images []string
}

// PageParser parses rendered ad HTML into a Page.
type PageParser interface {
	// Parse reads html fetched from pageURL. Relative image URLs are
	// resolved against pageURL.
	Parse(html, pageURL string) (*Page, error)
}

// TextExtractor extracts the main readable text of an HTML document,
// dropping navigation and other boilerplate.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}

// Price is an amount and currency taken from structured metadata.
// Amount keeps the formatting found in the source.
type Price struct {
	Amount   string
	Currency string
}

// String returns the price as "<amount> <currency>".
func (p Price) String() string {
	return strings.TrimSpace(p.Amount + " " + p.Currency)
}

// Metadata is what structured page data says about an ad.
type Metadata struct {
	Location string
	Price    *Price
}

// MetadataReader reads Metadata from raw structured-data blocks.
type MetadataReader interface {
	// Read returns nil when no block can be parsed. Malformed input is
	// never an error.
	Read(blocks []string) *Metadata
}
