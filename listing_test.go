package wheelads_test

import (
	"testing"

	"github.com/fwojciec/wheelads"
	"github.com/stretchr/testify/assert"
)

func TestListing_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		err := (&wheelads.Listing{}).Validate()

		assert.Equal(t, wheelads.EINVALID, wheelads.ErrorCode(err))
	})

	t.Run("accepts a listing with only a URL", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&wheelads.Listing{URL: "https://example.com/ad"}).Validate())
	})
}

func TestListing_Row(t *testing.T) {
	t.Parallel()

	t.Run("renders one cell per column in column order", func(t *testing.T) {
		t.Parallel()

		l := &wheelads.Listing{
			URL:              "https://example.com/ad",
			Title:            wheelads.Some("Felgen"),
			Location:         wheelads.Some("Berlin"),
			Description:      "Felgen",
			Price:            wheelads.Some("450"),
			Manufacturer:     wheelads.Some("BBS"),
			Colour:           wheelads.Some("Silber"),
			Diameter:         wheelads.Some("19"),
			WidthFront:       wheelads.Some("8.5"),
			WidthRear:        wheelads.Some("9.5"),
			BoltPattern:      wheelads.Some("5x112"),
			HubBore:          wheelads.Some("66.6"),
			Offset:           wheelads.Some("35"),
			TyreManufacturer: wheelads.Some("MICHELIN"),
			Season:           wheelads.SeasonSummer,
			Front: wheelads.Tyre{
				Size: &wheelads.TyreSize{Width: "225", Profile: "40", Diameter: "19"},
				DOT:  wheelads.Some("2418"),
			},
			Rear: wheelads.Tyre{
				Size: &wheelads.TyreSize{Width: "255", Profile: "35", Diameter: "19"},
				DOT:  wheelads.Some("2518"),
			},
			Images: []string{"1/1.jpg", "1/2.jpg"},
		}

		assert.Equal(t, []string{
			"https://example.com/ad", "Felgen", "Berlin", "Felgen", "450",
			"BBS", "Silber", "19", "8.5", "9.5", "5x112", "66.6", "35",
			"MICHELIN", "Sommer",
			"225/40/19", "225", "40", "19", "2418",
			"255/35/19", "255", "35", "19", "2518",
			"1/1.jpg|1/2.jpg",
		}, l.Row())
	})

	t.Run("renders unresolved fields and missing images as placeholder", func(t *testing.T) {
		t.Parallel()

		row := (&wheelads.Listing{URL: "u"}).Row()

		assert.Len(t, row, len(wheelads.Columns()))
		assert.Equal(t, "u", row[0])
		assert.Equal(t, "", row[3])
		assert.Equal(t, wheelads.Placeholder, row[len(row)-1])
	})
}

func TestColumns(t *testing.T) {
	t.Parallel()

	cols := wheelads.Columns()

	assert.Len(t, cols, 26)
	assert.Equal(t, "url", cols[0])
	assert.Equal(t, "image_files", cols[len(cols)-1])
}

func TestSeason(t *testing.T) {
	t.Parallel()

	for _, s := range []wheelads.Season{wheelads.SeasonWinter, wheelads.SeasonSummer, wheelads.SeasonAllSeason} {
		assert.Equal(t, s, wheelads.ParseSeason(s.String()))
	}
	assert.False(t, wheelads.SeasonUnknown.Value().Valid())
	assert.Equal(t, wheelads.SeasonUnknown, wheelads.ParseSeason("Herbst"))
}

func TestValue(t *testing.T) {
	t.Parallel()

	var zero wheelads.Value
	assert.False(t, zero.Valid())
	assert.Equal(t, "fallback", zero.Or("fallback"))
	assert.Equal(t, "x", wheelads.Some("x").Or("fallback"))
	assert.True(t, wheelads.Some("").Valid())
}
