// Package jsonld reads ad metadata from schema.org JSON-LD blocks.
package jsonld

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/fwojciec/wheelads"
	"github.com/kaptinlin/jsonrepair"
)

// DefaultCurrency is assumed when an offer has no priceCurrency.
const DefaultCurrency = "EUR"

// locationTypes are the schema.org types that may carry a location.
var locationTypes = map[string]bool{
	"Offer":       true,
	"Product":     true,
	"NewsArticle": true,
	"Event":       true,
	"Service":     true,
}

// addressKeys are joined, in order, into a location string.
var addressKeys = []string{"streetAddress", "postalCode", "addressLocality", "addressRegion"}

var _ wheelads.MetadataReader = (*Reader)(nil)

// Reader implements wheelads.MetadataReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read decodes the first block holding a JSON object or array, repairing
// malformed JSON where possible, and returns its location and price.
// It returns nil when no block decodes.
func (r *Reader) Read(blocks []string) *wheelads.Metadata {
	for _, b := range blocks {
		data, ok := decode(b)
		if !ok {
			continue
		}
		return &wheelads.Metadata{
			Location: location(data),
			Price:    price(data),
		}
	}
	return nil
}

func decode(block string) (any, bool) {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil, false
	}
	if v, err := unmarshal(block); err == nil {
		return v, isContainer(v)
	}
	repaired, err := jsonrepair.JSONRepair(block)
	if err != nil {
		return nil, false
	}
	v, err := unmarshal(repaired)
	if err != nil {
		return nil, false
	}
	return v, isContainer(v)
}

func unmarshal(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// location searches arrays entry by entry and returns "" when nothing is found.
func location(v any) string {
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if loc := location(e); loc != "" {
				return loc
			}
		}
	case map[string]any:
		t, _ := v["@type"].(string)
		if !locationTypes[t] {
			return ""
		}
		if from, ok := v["availableAtOrFrom"].(map[string]any); ok {
			if loc := address(from["address"]); loc != "" {
				return loc
			}
		}
		if area, ok := v["areaServed"].(map[string]any); ok {
			if name := scalar(area["name"]); name != "" {
				return name
			}
		}
		if seller, ok := v["seller"].(map[string]any); ok {
			return address(seller["address"])
		}
	}
	return ""
}

func address(v any) string {
	addr, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, k := range addressKeys {
		if s := scalar(addr[k]); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// price reads the offer of an object. For arrays the first entry with a
// price wins.
func price(v any) *wheelads.Price {
	switch v := v.(type) {
	case []any:
		for _, e := range v {
			if p := price(e); p != nil {
				return p
			}
		}
	case map[string]any:
		offer, ok := v["offers"]
		if !ok {
			offer = v["offer"]
		}
		o, ok := offer.(map[string]any)
		if !ok {
			return nil
		}
		amount := scalar(o["price"])
		if amount == "" || amount == "0" {
			if spec, ok := o["priceSpecification"].(map[string]any); ok {
				amount = scalar(spec["price"])
			}
		}
		if amount == "" || amount == "0" {
			return nil
		}
		currency := scalar(o["priceCurrency"])
		if currency == "" {
			currency = DefaultCurrency
		}
		return &wheelads.Price{Amount: amount, Currency: currency}
	}
	return nil
}

// scalar renders strings and numbers; anything else is "".
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		s := v.String()
		if strings.ContainsAny(s, "eE") {
			if f, err := v.Float64(); err == nil {
				return strconv.FormatFloat(f, 'f', -1, 64)
			}
		}
		return s
	}
	return ""
}
