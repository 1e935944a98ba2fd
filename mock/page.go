package mock

import "github.com/fwojciec/wheelads"

var (
	_ wheelads.PageParser     = (*PageParser)(nil)
	_ wheelads.TextExtractor  = (*TextExtractor)(nil)
	_ wheelads.MetadataReader = (*MetadataReader)(nil)
)

// PageParser is a mock implementation of wheelads.PageParser.
type PageParser struct {
	ParseFn func(html, pageURL string) (*wheelads.Page, error)
}

func (p *PageParser) Parse(html, pageURL string) (*wheelads.Page, error) {
	return p.ParseFn(html, pageURL)
}

// TextExtractor is a mock implementation of wheelads.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

// MetadataReader is a mock implementation of wheelads.MetadataReader.
type MetadataReader struct {
	ReadFn func(blocks []string) *wheelads.Metadata
}

func (r *MetadataReader) Read(blocks []string) *wheelads.Metadata {
	return r.ReadFn(blocks)
}
