package wheelads

import "strings"

// Placeholder is rendered for every field that could not be resolved.
// It only appears at the serialization boundary (see Listing.Row).
const Placeholder = "/"

// ImageSeparator joins image paths within a single row cell.
const ImageSeparator = "|"

// Value is an extracted field that is either resolved or unresolved.
// The zero value is unresolved.
type Value struct {
	s  string
	ok bool
}

// Some returns a resolved Value holding s.
func Some(s string) Value {
	return Value{s: s, ok: true}
}

// Get returns the value and whether it is resolved.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// Valid reports whether the value is resolved.
func (v Value) Valid() bool {
	return v.ok
}

// Or returns the value if resolved and fallback otherwise.
func (v Value) Or(fallback string) string {
	if !v.ok {
		return fallback
	}
	return v.s
}

// Season is the tyre season derived from ad text.
type Season int

// Tyre seasons.
const (
	SeasonUnknown Season = iota
	SeasonWinter
	SeasonSummer
	SeasonAllSeason
)

// String returns the German label of the season, or "" when unknown.
func (s Season) String() string {
	switch s {
	case SeasonWinter:
		return "Winter"
	case SeasonSummer:
		return "Sommer"
	case SeasonAllSeason:
		return "Ganzjahres"
	default:
		return ""
	}
}

// Value returns the season as a Value; SeasonUnknown is unresolved.
func (s Season) Value() Value {
	if s == SeasonUnknown {
		return Value{}
	}
	return Some(s.String())
}

// ParseSeason is the inverse of Season.String.
func ParseSeason(s string) Season {
	switch s {
	case "Winter":
		return SeasonWinter
	case "Sommer":
		return SeasonSummer
	case "Ganzjahres":
		return SeasonAllSeason
	default:
		return SeasonUnknown
	}
}

// TyreSize is a tyre dimension triple, e.g. 225/40 R19.
type TyreSize struct {
	Width    string // mm
	Profile  string // aspect ratio, %
	Diameter string // rim diameter, inches
}

// String returns the size as "width/profile/diameter".
func (s TyreSize) String() string {
	return s.Width + "/" + s.Profile + "/" + s.Diameter
}

// Tyre holds the tyre attributes of a single axle.
type Tyre struct {
	Size *TyreSize // nil when unresolved
	DOT  Value
}

func (t Tyre) sizeField(f func(TyreSize) string) Value {
	if t.Size == nil {
		return Value{}
	}
	return Some(f(*t.Size))
}

// Listing is the structured record extracted from a single ad.
type Listing struct {
	// Identity
	URL         string
	Title       Value
	Location    Value
	Description string // normalized ad text, never placeholder-filled
	Price       Value

	// Wheel
	Manufacturer Value
	Colour       Value
	Diameter     Value
	WidthFront   Value
	WidthRear    Value
	BoltPattern  Value
	HubBore      Value
	Offset       Value

	// Tyre
	TyreManufacturer Value
	Season           Season
	Front            Tyre
	Rear             Tyre

	// Images holds image paths relative to the output root, in discovery order.
	Images []string
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	return nil
}

// Columns returns the fixed column names of a listing row.
func Columns() []string {
	return []string{
		"url",
		"title",
		"location",
		"description",
		"price",
		"felgenhersteller",
		"felgenfarbe",
		"zollgroesse",
		"zollbreite_vorne",
		"zollbreite_hinten",
		"lochkreis",
		"nabendurchmesser",
		"einpresstiefe",
		"reifenhersteller",
		"reifensaison",
		"reifengroesse_vorne",
		"reifenbreite_vorne",
		"reifenprofil_vorne",
		"reifenhoehe_vorne",
		"dot_vorne",
		"reifengroesse_hinten",
		"reifenbreite_hinten",
		"reifenprofil_hinten",
		"reifenhoehe_hinten",
		"dot_hinten",
		"image_files",
	}
}

// Row returns one cell per column in Columns order. Unresolved fields are
// rendered as Placeholder.
func (l *Listing) Row() []string {
	p := func(v Value) string { return v.Or(Placeholder) }

	images := Placeholder
	if len(l.Images) > 0 {
		images = strings.Join(l.Images, ImageSeparator)
	}

	row := []string{
		l.URL,
		p(l.Title),
		p(l.Location),
		l.Description,
		p(l.Price),
		p(l.Manufacturer),
		p(l.Colour),
		p(l.Diameter),
		p(l.WidthFront),
		p(l.WidthRear),
		p(l.BoltPattern),
		p(l.HubBore),
		p(l.Offset),
		p(l.TyreManufacturer),
		p(l.Season.Value()),
	}
	for _, t := range []Tyre{l.Front, l.Rear} {
		row = append(row,
			p(t.sizeField(TyreSize.String)),
			p(t.sizeField(func(s TyreSize) string { return s.Width })),
			p(t.sizeField(func(s TyreSize) string { return s.Profile })),
			p(t.sizeField(func(s TyreSize) string { return s.Diameter })),
			p(t.DOT),
		)
	}
	return append(row, images)
}
