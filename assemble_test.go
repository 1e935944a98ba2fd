package wheelads_test

import (
	"testing"

	"github.com/fwojciec/wheelads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowOf(t *testing.T, l *wheelads.Listing) map[string]string {
	t.Helper()
	cols := wheelads.Columns()
	row := l.Row()
	require.Len(t, row, len(cols))
	m := make(map[string]string, len(cols))
	for i, c := range cols {
		m[c] = row[i]
	}
	return m
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("extracts every field of a typical ad", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:   "https://www.kleinanzeigen.de/s-anzeige/bbs/2712345678-223-1234",
			Title: "BBS 8.5Jx19 Schwarz matt, 225/40R19 DOT 2418, ET35, LK5x112",
		})

		row := rowOf(t, l)
		assert.Equal(t, "BBS", row["felgenhersteller"])
		assert.Equal(t, "Schwarz Matt", row["felgenfarbe"])
		assert.Equal(t, "19", row["zollgroesse"])
		assert.Equal(t, "8.5", row["zollbreite_vorne"])
		assert.Equal(t, "8.5", row["zollbreite_hinten"])
		assert.Equal(t, "5x112", row["lochkreis"])
		assert.Equal(t, "35", row["einpresstiefe"])
		assert.Equal(t, "225/40/19", row["reifengroesse_vorne"])
		assert.Equal(t, "225/40/19", row["reifengroesse_hinten"])
		assert.Equal(t, "225", row["reifenbreite_hinten"])
		assert.Equal(t, "40", row["reifenprofil_hinten"])
		assert.Equal(t, "19", row["reifenhoehe_hinten"])
		assert.Equal(t, "2418", row["dot_vorne"])
		assert.Equal(t, "2418", row["dot_hinten"])
		assert.Equal(t, wheelads.Placeholder, row["nabendurchmesser"])
		assert.Equal(t, wheelads.Placeholder, row["reifensaison"])
	})

	t.Run("leaves everything but the url unresolved for empty text", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{URL: "https://example.com/ad"})

		want := []string{"https://example.com/ad", "/", "/", ""}
		for len(want) < len(wheelads.Columns()) {
			want = append(want, wheelads.Placeholder)
		}
		assert.Equal(t, want, l.Row())
	})

	t.Run("maps two tyre sizes to front and rear", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Description: "Mischbereifung: 205/55R16 vorne und 225/45R17 hinten",
		})

		row := rowOf(t, l)
		assert.Equal(t, "205/55/16", row["reifengroesse_vorne"])
		assert.Equal(t, "225/45/17", row["reifengroesse_hinten"])
	})

	t.Run("maps two widths and DOT codes by order of appearance", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Description: "hinten DOT 0320 9.5Jx19, vorne DOT 2418 8.5Jx19",
		})

		row := rowOf(t, l)
		assert.Equal(t, "9.5", row["zollbreite_vorne"])
		assert.Equal(t, "8.5", row["zollbreite_hinten"])
		assert.Equal(t, "0320", row["dot_vorne"])
		assert.Equal(t, "2418", row["dot_hinten"])
	})

	t.Run("uses the manufacturer list order across title and description", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Title:       "OZ Felgen",
			Description: "Nabendeckel von BBS",
		})

		assertValue(t, "BBS", l.Manufacturer)
	})

	t.Run("normalizes title and description", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Title:       "  Winterräder \n 17 Zoll ",
			Description: "Top\n\nZustand",
		})

		assertValue(t, "Winterräder 17 Zoll", l.Title)
		assert.Equal(t, "Top Zustand", l.Description)
	})

	t.Run("prefers the metadata price over visible text", func(t *testing.T) {
		t.Parallel()

		l := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Description: "Preis 500 €",
			PriceText:   "480 €",
			Metadata: &wheelads.Metadata{
				Location: " 10115  Berlin ",
				Price:    &wheelads.Price{Amount: "450", Currency: "EUR"},
			},
		})

		assertValue(t, "450 EUR", l.Price)
		assertValue(t, "10115 Berlin", l.Location)
	})

	t.Run("falls back to the price text and then to the description", func(t *testing.T) {
		t.Parallel()

		withText := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Description: "Preis 500 €",
			PriceText:   "1.250 € VB",
			Metadata:    &wheelads.Metadata{},
		})
		withoutText := wheelads.Assemble(wheelads.AssembleInput{
			URL:         "https://example.com/ad",
			Description: "Preis 500 €",
		})

		assertValue(t, "1.250", withText.Price)
		assertValue(t, "500", withoutText.Price)
	})

	t.Run("copies images in order", func(t *testing.T) {
		t.Parallel()

		images := []string{"123/1.jpg", "123/3.png"}
		l := wheelads.Assemble(wheelads.AssembleInput{URL: "https://example.com/ad", Images: images})
		images[0] = "changed"

		assert.Equal(t, []string{"123/1.jpg", "123/3.png"}, l.Images)
		assert.Equal(t, "123/1.jpg|123/3.png", rowOf(t, l)["image_files"])
	})
}
