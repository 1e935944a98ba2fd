package wheelads

import "strings"

// Normalize collapses every run of whitespace, including line breaks, tabs
// and non-breaking spaces, into a single space and trims both ends.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
