// Package trafilatura implements wheelads.TextExtractor with go-trafilatura.
// It recovers the ad text from pages whose markup lacks the usual
// description containers.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/wheelads"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements wheelads.TextExtractor at compile time.
var _ wheelads.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the main content of rawHTML as plain text, with
// navigation, footers and similar boilerplate removed.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", wheelads.Errorf(wheelads.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}
