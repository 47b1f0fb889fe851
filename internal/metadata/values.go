package metadata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/fetcher"
)

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case fetcher.ModelRecord:
		return map[string]any(m), m != nil
	case fetcher.DatasetRecord:
		return map[string]any(m), m != nil
	default:
		return nil, false
	}
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// lookup walks nested maps along path. Missing keys and JSON null are both
// reported as absent.
func lookup(root any, path ...string) (any, bool) {
	cur := root
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// stringAt returns the trimmed string at path, if it is a non-empty string.
func stringAt(root any, path ...string) (string, bool) {
	v, ok := lookup(root, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// stringify renders a JSON value as a property value. Lists are joined with
// ", ", numbers keep their literal text and objects become JSON text.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return dumpJSON(t)
	default:
		return fmt.Sprint(t)
	}
}

// dumpJSON encodes v with ", " and ": " separators and \uXXXX escapes for
// anything outside printable ASCII. Object keys come out sorted since the
// decoded record no longer knows their source order.
func dumpJSON(v any) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		writeJSONString(b, t)
	case json.Number:
		b.WriteString(t.String())
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		b.WriteString(strconv.Itoa(t))
	case []string:
		b.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSONString(b, item)
		}
		b.WriteByte(']')
	case []any:
		b.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSONString(b, k)
			b.WriteString(": ")
			writeJSON(b, t[k])
		}
		b.WriteByte('}')
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			writeJSONString(b, fmt.Sprint(t))
			return
		}
		b.Write(raw)
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				b.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}

// truthy mirrors "is this field populated": zero numbers, empty strings and
// empty containers are not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case bool:
		return t
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func stringPtr(v any) *string {
	s := stringify(v)
	return &s
}

func ensureModelParameters(card *cdx.MLModelCard) *cdx.MLModelParameters {
	if card.ModelParameters == nil {
		card.ModelParameters = &cdx.MLModelParameters{}
	}
	return card.ModelParameters
}

func ensureConsiderations(card *cdx.MLModelCard) *cdx.MLModelCardConsiderations {
	if card.Considerations == nil {
		card.Considerations = &cdx.MLModelCardConsiderations{}
	}
	return card.Considerations
}

func addComponentProperty(comp *cdx.Component, name, value string) {
	if comp.Properties == nil {
		comp.Properties = &[]cdx.Property{}
	}
	*comp.Properties = append(*comp.Properties, cdx.Property{Name: name, Value: value})
}

func addDataProperty(d *cdx.ComponentData, name, value string) {
	if d.Contents == nil {
		d.Contents = &cdx.ComponentDataContents{}
	}
	if d.Contents.Properties == nil {
		d.Contents.Properties = &[]cdx.Property{}
	}
	*d.Contents.Properties = append(*d.Contents.Properties, cdx.Property{Name: name, Value: value})
}

func baseURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "https://huggingface.co/"
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}

// DatasetIDs returns the datasets a model card references, in order and
// without duplicates. A bare string is treated as a one-element list.
func DatasetIDs(rec fetcher.ModelRecord) []string {
	raw, ok := lookup(rec, "cardData", "datasets")
	if !ok {
		return nil
	}
	var items []any
	switch v := raw.(type) {
	case string:
		items = []any{v}
	default:
		l, ok := asList(v)
		if !ok {
			logf(stringify(rec["id"]), "cardData.datasets is %T, ignored", raw)
			return nil
		}
		items = l
	}

	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(stringify(item))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
