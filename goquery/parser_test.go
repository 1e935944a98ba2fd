package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/wheelads"
	"github.com/fwojciec/wheelads/goquery"
	"github.com/fwojciec/wheelads/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adURL = "https://www.kleinanzeigen.de/s-anzeige/bbs-ch-r-19-zoll/2712345678-223-8361"

const adHTML = `<!DOCTYPE html>
<html>
<head>
<script>window.price = "999 €";</script>
<script type="application/ld+json">{"@type":"Product","offers":{"price":"450","priceCurrency":"EUR"}}</script>
<script type="application/ld+json">{"@type":"BreadcrumbList"}</script>
</head>
<body>
<h1 id="viewad-title">BBS CH-R 8.5Jx19 ET35</h1>
<h2 id="viewad-price">450 € VB</h2>
<div data-testid="description" class="ad-description">Felgen in Top Zustand<br>LK 5x112</div>
<div class="galleryimage-element">
	<img src="https://img.kleinanzeigen.de/api/v1/prod-ads/images/aa/1?rule=$_59.JPG">
	<img data-src="https://img.kleinanzeigen.de/api/v1/prod-ads/images/bb/2?rule=$_59.JPG">
	<img src="https://img.kleinanzeigen.de/api/v1/prod-ads/images/aa/1?rule=$_2.JPG">
	<img src="" data-lazy-src="//img.kleinanzeigen.de/api/v1/prod-ads/images/cc/3.jpg">
	<img src="https://static.kleinanzeigen.de/static/img/logo.png">
</div>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from the first heading", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(adHTML, adURL)

		require.NoError(t, err)
		assert.Equal(t, "BBS CH-R 8.5Jx19 ET35", page.Title)
	})

	t.Run("skips headings without text", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(`<h1> </h1><h2>Winterräder</h2>`, adURL)

		require.NoError(t, err)
		assert.Equal(t, "Winterräder", page.Title)
	})

	t.Run("keeps line breaks of the description container", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(adHTML, adURL)

		require.NoError(t, err)
		assert.Equal(t, "Felgen in Top Zustand\nLK 5x112", page.Description)
	})

	t.Run("joins distinct description containers", func(t *testing.T) {
		t.Parallel()

		html := `<div class="description-box">Felgen</div><pre>ET35</pre>`

		page, err := goquery.NewParser().Parse(html, adURL)

		require.NoError(t, err)
		assert.Equal(t, "Felgen\nET35", page.Description)
	})

	t.Run("falls back to paragraphs", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(`<p>Eins</p><div><p>Zwei</p></div>`, adURL)

		require.NoError(t, err)
		assert.Equal(t, "Eins\nZwei", page.Description)
	})

	t.Run("uses the fallback extractor when the page has no text blocks", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithFallback(&mock.TextExtractor{
			ExtractTextFn: func(html string) (string, error) {
				return "Hauptinhalt", nil
			},
		}))

		page, err := p.Parse(`<html><body><span>Hauptinhalt</span></body></html>`, adURL)

		require.NoError(t, err)
		assert.Equal(t, "Hauptinhalt", page.Description)
	})

	t.Run("ignores fallback extractor errors", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithFallback(&mock.TextExtractor{
			ExtractTextFn: func(html string) (string, error) {
				return "", errors.New("no content")
			},
		}))

		page, err := p.Parse(`<html><body></body></html>`, adURL)

		require.NoError(t, err)
		assert.Empty(t, page.Description)
	})

	t.Run("finds the first visible text with a euro sign", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(adHTML, adURL)

		require.NoError(t, err)
		assert.Equal(t, "450 € VB", page.PriceText)
	})

	t.Run("collects raw JSON-LD blocks in order", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(adHTML, adURL)

		require.NoError(t, err)
		assert.Equal(t, []string{
			`{"@type":"Product","offers":{"price":"450","priceCurrency":"EUR"}}`,
			`{"@type":"BreadcrumbList"}`,
		}, page.StructuredData)
	})

	t.Run("collects trusted images in discovery order without duplicates", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(adHTML, adURL)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://img.kleinanzeigen.de/api/v1/prod-ads/images/aa/1",
			"https://img.kleinanzeigen.de/api/v1/prod-ads/images/bb/2",
			"https://img.kleinanzeigen.de/api/v1/prod-ads/images/cc/3.jpg",
		}, page.Images)
	})

	t.Run("honours a custom image host", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://cdn.example.com/a.jpg"><img src="https://img.kleinanzeigen.de/b.jpg">`

		page, err := goquery.NewParser(goquery.WithImageHost("cdn.example.com")).Parse(html, adURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, page.Images)
	})

	t.Run("returns empty page for empty HTML", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse("", adURL)

		require.NoError(t, err)
		assert.Empty(t, page.Title)
		assert.Empty(t, page.Description)
		assert.Empty(t, page.PriceText)
		assert.Empty(t, page.Images)
		assert.Empty(t, page.StructuredData)
	})

	t.Run("returns EINVALID for a malformed page URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(adHTML, "://bad")

		assert.Equal(t, wheelads.EINVALID, wheelads.ErrorCode(err))
	})
}
