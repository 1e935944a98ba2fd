package wheelads

// AssembleInput is everything known about an ad before field extraction.
type AssembleInput struct {
	URL         string
	Title       string
	Description string
	PriceText   string
	Metadata    *Metadata // may be nil
	Images      []string  // stored image paths
}

// Assemble extracts every field from the title and description of an ad and
// composes the Listing. Fields without evidence stay unresolved.
func Assemble(in AssembleInput) *Listing {
	title := Normalize(in.Title)
	description := Normalize(in.Description)
	combined := title + "\n" + description

	l := &Listing{
		URL:         in.URL,
		Description: description,

		Manufacturer: ExtractManufacturer(combined, WheelManufacturers),
		Colour:       ExtractColour(combined),
		Diameter:     ExtractDiameter(combined),
		BoltPattern:  ExtractBoltPattern(combined),
		HubBore:      ExtractHubBore(combined),
		Offset:       ExtractOffset(combined),

		TyreManufacturer: ExtractManufacturer(combined, TyreManufacturers),
		Season:           ExtractSeason(combined),
	}
	if title != "" {
		l.Title = Some(title)
	}

	if front, rear, ok := PickAxles(ExtractWidths(combined)); ok {
		l.WidthFront, l.WidthRear = Some(front), Some(rear)
	}
	if front, rear, ok := PickAxles(ExtractTyreSizes(combined)); ok {
		l.Front.Size, l.Rear.Size = &front, &rear
	}
	if front, rear, ok := PickAxles(ExtractDOTs(combined)); ok {
		l.Front.DOT, l.Rear.DOT = Some(front), Some(rear)
	}

	if md := in.Metadata; md != nil {
		if loc := Normalize(md.Location); loc != "" {
			l.Location = Some(loc)
		}
		if md.Price != nil && md.Price.Amount != "" {
			l.Price = Some(md.Price.String())
		}
	}
	if !l.Price.Valid() {
		l.Price = ExtractPrice(in.PriceText)
	}
	if !l.Price.Valid() {
		l.Price = ExtractPrice(combined)
	}

	if len(in.Images) > 0 {
		l.Images = append([]string(nil), in.Images...)
	}
	return l
}
