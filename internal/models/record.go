// Package models defines the user record stored in the document store and the
// partial change set applied to it by updates.
package models

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Field names of a user record as they appear in the store.
const (
	FieldUserID    = "user_id"
	FieldFirstName = "f_name"
	FieldLastName  = "l_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldSex       = "sex"
	FieldTitle     = "title"
	FieldHeight    = "height"
	FieldWeight    = "weight"
	FieldClearance = "clearance"
)

// BasicFields are the fields collected from a new user and offered for
// editing by updates, in prompt order.
var BasicFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldSex,
	FieldTitle,
	FieldHeight,
	FieldWeight,
}

// displayOrder lists known fields in the order they are shown to the operator.
var displayOrder = append([]string{FieldUserID}, append(slices.Clone(BasicFields), FieldClearance)...)

// IsNumericField reports whether the field holds a float64 value.
func IsNumericField(name string) bool {
	return name == FieldHeight || name == FieldWeight
}

// Record is a single user document: a mapping from field name to value.
type Record map[string]any

// Changes is a partial set of field assignments. Fields absent from the map
// are left untouched by an update.
type Changes map[string]any

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

// ID returns the record's user_id.
func (r Record) ID() (int64, error) {
	v, ok := r[FieldUserID]
	if !ok {
		return 0, fmt.Errorf("%s absent", FieldUserID)
	}
	id, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("%s has unexpected type %T", FieldUserID, v)
	}
	return id, nil
}

// String returns the field as a string, or "" when it is absent.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Keys returns the record's field names: known fields first in display order,
// then any other fields sorted by name.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, k := range displayOrder {
		if _, ok := r[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range r {
		if !slices.Contains(displayOrder, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// Format renders the record as "key: value" lines.
func (r Record) Format() string {
	var b strings.Builder
	for _, k := range r.Keys() {
		fmt.Fprintf(&b, "%s: %v\n", k, r[k])
	}
	return b.String()
}

// Key converts a user id to the string key used by the document store.
func Key(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses an operator-entered user id.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// Normalize coerces numeric fields of a decoded document to their canonical
// Go types: user_id to int64, height and weight to float64. Backends decode
// numbers differently (JSON yields float64, Firestore yields int64 for whole
// numbers), so every repository passes documents through Normalize.
func Normalize(r Record) Record {
	if r == nil {
		return nil
	}
	if v, ok := r[FieldUserID]; ok {
		if id, ok := toInt64(v); ok {
			r[FieldUserID] = id
		}
	}
	for _, f := range []string{FieldHeight, FieldWeight} {
		if v, ok := r[f]; ok {
			if n, ok := toFloat64(v); ok {
				r[f] = n
			}
		}
	}
	return r
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), n == float64(int64(n))
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		return id, err == nil
	case interface{ Int64() (int64, error) }:
		id, err := n.Int64()
		return id, err == nil
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
