package wheelads

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExtractManufacturer returns the first name in names that occurs in text.
// Matching is case-insensitive and ignores spaces on both sides, so
// "BF Goodrich" matches "BFGOODRICH". List order wins over text order.
func ExtractManufacturer(text string, names []string) Value {
	haystack := strings.ReplaceAll(strings.ToUpper(text), " ", "")
	for _, name := range names {
		if strings.Contains(haystack, strings.ReplaceAll(name, " ", "")) {
			return Some(name)
		}
	}
	return Value{}
}

// ExtractColour returns the first entry of Colours found in text, title-cased.
func ExtractColour(text string) Value {
	upper := strings.ToUpper(text)
	for _, c := range Colours {
		if strings.Contains(upper, c) {
			return Some(cases.Title(language.German).String(c))
		}
	}
	return Value{}
}

// ExtractDiameter returns the wheel diameter in inches from "19 Zoll" or,
// failing that, from "R19".
func ExtractDiameter(text string) Value {
	if m := zollRe.FindStringSubmatch(text); m != nil {
		return Some(m[1])
	}
	if m := rimRe.FindStringSubmatch(text); m != nil {
		return Some(m[1])
	}
	return Value{}
}

// ExtractWidths returns every rim width in order of appearance, with decimal
// commas converted to dots.
func ExtractWidths(text string) []string {
	var widths []string
	for _, m := range widthRe.FindAllStringSubmatch(text, -1) {
		widths = append(widths, strings.ReplaceAll(m[1], ",", "."))
	}
	return widths
}

// ExtractBoltPattern returns the bolt pattern as "<holes>x<circle>". A pattern
// introduced by "LK" or "Lochkreis" is preferred over a bare one.
func ExtractBoltPattern(text string) Value {
	if m := boltPatternLKRe.FindStringSubmatch(text); m != nil {
		return Some(m[1] + "x" + m[2])
	}
	if m := boltPatternRe.FindStringSubmatch(text); m != nil {
		return Some(m[1] + "x" + m[2])
	}
	return Value{}
}

// ExtractHubBore returns the hub bore in millimetres with a decimal dot.
func ExtractHubBore(text string) Value {
	if m := hubBoreRe.FindStringSubmatch(text); m != nil {
		return Some(strings.ReplaceAll(m[1], ",", "."))
	}
	return Value{}
}

// ExtractOffset returns the ET value.
func ExtractOffset(text string) Value {
	if m := offsetRe.FindStringSubmatch(text); m != nil {
		return Some(m[1])
	}
	return Value{}
}

// ExtractTyreSizes returns every tyre size in order of appearance.
func ExtractTyreSizes(text string) []TyreSize {
	var sizes []TyreSize
	for _, m := range tyreSizeRe.FindAllStringSubmatch(text, -1) {
		sizes = append(sizes, TyreSize{Width: m[1], Profile: m[2], Diameter: m[3]})
	}
	return sizes
}

// ExtractDOTs returns every DOT code in order of appearance.
func ExtractDOTs(text string) []string {
	var dots []string
	for _, m := range dotRe.FindAllStringSubmatch(text, -1) {
		dots = append(dots, m[1])
	}
	return dots
}

// ExtractSeason returns the tyre season by keyword. Winter beats summer beats
// all-season regardless of where the keywords occur.
func ExtractSeason(text string) Season {
	upper := strings.ToUpper(text)
	for _, c := range []struct {
		season   Season
		keywords []string
	}{
		{SeasonWinter, winterKeywords},
		{SeasonSummer, summerKeywords},
		{SeasonAllSeason, allSeasonKeywords},
	} {
		for _, k := range c.keywords {
			if strings.Contains(upper, k) {
				return c.season
			}
		}
	}
	return SeasonUnknown
}

// ExtractPrice returns the first euro amount in text with its original
// thousands and decimal separators.
func ExtractPrice(text string) Value {
	if m := priceRe.FindStringSubmatch(text); m != nil {
		return Some(m[1])
	}
	return Value{}
}

// PickAxles maps matches in order of appearance to the front and rear axle.
// A single match applies to both axles; matches beyond the second are ignored.
func PickAxles[T any](matches []T) (front, rear T, ok bool) {
	switch len(matches) {
	case 0:
		return front, rear, false
	case 1:
		return matches[0], matches[0], true
	default:
		return matches[0], matches[1], true
	}
}
