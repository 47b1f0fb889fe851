// Package license maps raw model card license values onto CycloneDX license
// choices, using the SPDX license list to recognize identifiers.
package license

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

// Other is the model card sentinel for "see license_name / license_link".
const Other = "other"

// SPDXLicense is one entry of the SPDX license list.
type SPDXLicense struct {
	LicenseID string `json:"licenseId" yaml:"licenseId"`
	Reference string `json:"reference" yaml:"reference"`
}

// List is a case-insensitive index over SPDX license identifiers.
// A nil *List recognizes nothing.
type List struct {
	entries []SPDXLicense
	byID    map[string]int
}

// NewList indexes entries. When identifiers collide case-insensitively the
// first entry wins, matching a linear scan of the SPDX list.
func NewList(entries []SPDXLicense) *List {
	l := &List{
		entries: make([]SPDXLicense, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		id := strings.TrimSpace(e.LicenseID)
		if id == "" {
			continue
		}
		key := strings.ToLower(id)
		if _, dup := l.byID[key]; dup {
			continue
		}
		l.byID[key] = len(l.entries)
		l.entries = append(l.entries, SPDXLicense{LicenseID: id, Reference: strings.TrimSpace(e.Reference)})
	}
	return l
}

// Lookup finds id case-insensitively.
func (l *List) Lookup(id string) (SPDXLicense, bool) {
	if l == nil {
		return SPDXLicense{}, false
	}
	i, ok := l.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return SPDXLicense{}, false
	}
	return l.entries[i], true
}

// Len reports the number of indexed licenses.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Siblings are the card fields that qualify a license value of "other".
// A nil pointer means the field is absent from the card.
type Siblings struct {
	Name    *string
	Link    *string
	Details *string
}

// Normalize turns a raw license value (a string or a list of values) into
// one license choice per entry, preserving input order:
//
//   - an SPDX identifier (any case) becomes {id, url} with the canonical id;
//   - "other" becomes {name: license_name, url?: license_link,
//     properties?: [license_details]} when license_name is present, or
//     {name: "other"} when it is not;
//   - anything else becomes {name: raw}.
//
// Null entries and nested lists or maps are skipped; every other entry is
// kept. A nil raw value yields an empty, non-nil slice.
func Normalize(raw any, s Siblings, list *List) cdx.Licenses {
	values := rawValues(raw)
	out := make(cdx.Licenses, 0, len(values))
	for _, v := range values {
		out = append(out, normalizeOne(v, s, list))
	}
	return out
}

func normalizeOne(v string, s Siblings, list *List) cdx.LicenseChoice {
	if known, ok := list.Lookup(v); ok {
		return cdx.LicenseChoice{License: &cdx.License{ID: known.LicenseID, URL: known.Reference}}
	}
	if v != Other {
		return cdx.LicenseChoice{License: &cdx.License{Name: v}}
	}
	if s.Name == nil {
		return cdx.LicenseChoice{License: &cdx.License{Name: Other}}
	}
	lic := &cdx.License{Name: *s.Name}
	if s.Link != nil {
		lic.URL = *s.Link
	}
	if s.Details != nil {
		lic.Properties = &[]cdx.Property{{Name: "license_details", Value: *s.Details}}
	}
	return cdx.LicenseChoice{License: lic}
}

func rawValues(raw any) []string {
	switch t := raw.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for i, x := range t {
			if s, ok := scalar(x); ok {
				out = append(out, s)
				continue
			}
			logf("skipping license entry %d: %s", i, describe(x))
		}
		return out
	default:
		if s, ok := scalar(t); ok {
			return []string{s}
		}
		logf("skipping license value: %s", describe(t))
		return nil
	}
}

// scalar renders a decoded JSON scalar the way it was written.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int, int64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
