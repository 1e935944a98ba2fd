// Package readability implements wheelads.TextExtractor with go-readability,
// an alternative to the trafilatura description fallback.
package readability

import (
	"strings"

	"github.com/fwojciec/wheelads"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements wheelads.TextExtractor at compile time.
var _ wheelads.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text content of the main article of rawHTML.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", wheelads.Errorf(wheelads.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
