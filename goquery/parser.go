// Package goquery implements wheelads.PageParser for Kleinanzeigen ad pages
// using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wheelads"
	"golang.org/x/net/html"
)

// DefaultImageHost is the CDN host serving ad images.
const DefaultImageHost = "img.kleinanzeigen.de"

// descriptionSelectors are tried in order; the first match of each
// contributes to the description.
var descriptionSelectors = []string{
	`div[data-testid="description"]`,
	`div[class*="description"]`,
	`pre`,
}

var _ wheelads.PageParser = (*Parser)(nil)

// Parser extracts the raw parts of an ad page.
type Parser struct {
	imageHost string
	fallback  wheelads.TextExtractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithImageHost restricts image URLs to those containing host.
// Defaults to DefaultImageHost.
func WithImageHost(host string) Option {
	return func(p *Parser) {
		p.imageHost = host
	}
}

// WithFallback sets the extractor used for the description when the page
// has neither a description container nor paragraphs.
func WithFallback(e wheelads.TextExtractor) Option {
	return func(p *Parser) {
		p.fallback = e
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{imageHost: DefaultImageHost}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts title, description, price text, JSON-LD blocks and image
// URLs from the HTML of an ad page.
func (p *Parser) Parse(rawHTML, pageURL string) (*wheelads.Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, wheelads.Errorf(wheelads.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wheelads.Errorf(wheelads.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &wheelads.Page{
		Title:     title(doc),
		PriceText: priceText(doc),
		Images:    p.images(doc, base),
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		page.StructuredData = append(page.StructuredData, sel.Text())
	})

	page.Description = description(doc)
	if strings.TrimSpace(page.Description) == "" && p.fallback != nil {
		if text, err := p.fallback.ExtractText(rawHTML); err == nil {
			page.Description = text
		}
	}

	return page, nil
}

// title returns the text of the first h1 or h2 that has any.
func title(doc *goquery.Document) string {
	var t string
	doc.Find("h1, h2").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		t = strings.TrimSpace(sel.Text())
		return t == ""
	})
	return t
}

func description(doc *goquery.Document) string {
	var parts []string
	seen := make(map[*html.Node]bool)
	for _, s := range descriptionSelectors {
		sel := doc.Find(s).First()
		if sel.Length() == 0 || seen[sel.Get(0)] {
			continue
		}
		seen[sel.Get(0)] = true
		parts = append(parts, blockText(sel.Get(0)))
	}
	if len(parts) == 0 {
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, sel.Text())
		})
	}
	return strings.Join(parts, "\n")
}

// blockText joins the text nodes under n with newlines so that line breaks
// and block boundaries survive as whitespace.
func blockText(n *html.Node) string {
	var texts []string
	walkText(n, func(t *html.Node) bool {
		texts = append(texts, t.Data)
		return true
	})
	return strings.Join(texts, "\n")
}

// priceText returns the first text node containing a euro sign.
func priceText(doc *goquery.Document) string {
	var found string
	for _, root := range doc.Nodes {
		walkText(root, func(t *html.Node) bool {
			if strings.Contains(t.Data, "€") {
				found = t.Data
				return false
			}
			return true
		})
		if found != "" {
			break
		}
	}
	return found
}

// walkText calls fn for every text node below n in document order, skipping
// script and style content. Walking stops when fn returns false.
func walkText(n *html.Node, fn func(*html.Node) bool) bool {
	switch n.Type {
	case html.TextNode:
		return fn(n)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkText(c, fn) {
			return false
		}
	}
	return true
}

// images returns ad image URLs in discovery order. Query strings are
// stripped since they select scaled-down renditions.
func (p *Parser) images(doc *goquery.Document, base *url.URL) []string {
	var out []string
	seen := make(map[string]bool)
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := imageSource(sel)
		if src == "" || !strings.Contains(src, p.imageHost) {
			return
		}
		clean, _, _ := strings.Cut(src, "?")
		if !strings.HasPrefix(clean, "http") {
			ref, err := url.Parse(clean)
			if err != nil {
				return
			}
			clean = base.ResolveReference(ref).String()
		}
		if seen[clean] {
			return
		}
		seen[clean] = true
		out = append(out, clean)
	})
	return out
}

func imageSource(sel *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}
