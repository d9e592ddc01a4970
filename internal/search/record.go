package search

import "fmt"

// Record is one searchable item: a JSON-shaped object addressed by field
// name. Records cross the HTTP boundary as plain objects, so the engine never
// assumes anything beyond string-valued fields.
type Record map[string]any

// FieldText returns the string value of the named field. Missing fields and
// non-string values read as empty, so a record lacking a field simply cannot
// match on it.
func (r Record) FieldText(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}
