// Package dto is the self-describing document model used to move a character
// between worlds.
//
// Every node is a Record: a type tag plus a growable set of named fields. A
// field holds a scalar (string, float64, bool), a list, a plain table
// (map[string]any) or another Record owned by its parent. Records serialize to
// plain maps that carry their tag under TypeKey, so a JSON document can be
// decoded back into the same typed tree.
package dto

import (
	"reflect"
	"sort"
)

// TypeKey is the reserved document key holding a record's type tag.
const TypeKey = "typeName"

// Record is implemented by every node in the document tree. The set of
// implementations is closed to this package; new node kinds are added by
// embedding BaseRecord and registering a factory.
type Record interface {
	// TypeName returns the tag identifying the concrete record type.
	TypeName() string
	// Get returns the stored value for name.
	Get(name string) (any, bool)
	// Set stores value under name, merging into an existing nested record.
	Set(name string, value any) error
	// Unset removes name.
	Unset(name string)
	// Keys returns the field names in lexical order.
	Keys() []string

	base() *BaseRecord
}

// BaseRecord carries the tag and the field set shared by every record type.
type BaseRecord struct {
	typeName string
	values   map[string]any
}

// NewBaseRecord returns an untyped record carrying typeName. Most callers
// want one of the concrete constructors instead.
func NewBaseRecord(typeName string) *BaseRecord {
	return &BaseRecord{typeName: typeName, values: make(map[string]any)}
}

func (r *BaseRecord) base() *BaseRecord {
	return r
}

func (r *BaseRecord) init(typeName string) {
	r.typeName = typeName
	r.values = make(map[string]any)
}

// TypeName returns the record's type tag.
func (r *BaseRecord) TypeName() string {
	return r.typeName
}

// Get returns the stored value for name, or false when the field is unset.
func (r *BaseRecord) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set stores value under name following the merge contract:
//   - an unset field stores a deep copy of value
//   - a field holding plain data is overwritten
//   - a field holding a record absorbs a record or table value field by field
//   - a field holding a record rejects scalars and lists with a schema error,
//     keeping the previous value
//
// A nil value is ignored.
func (r *BaseRecord) Set(name string, value any) error {
	if value == nil {
		return nil
	}
	if r.values == nil {
		r.values = make(map[string]any)
	}

	existing := r.values[name]
	merged, err := merge(name, existing, value)
	if err != nil {
		return err
	}
	if merged == nil {
		delete(r.values, name)
		return nil
	}
	r.values[name] = merged
	return nil
}

// Unset removes name from the record.
func (r *BaseRecord) Unset(name string) {
	delete(r.values, name)
}

// Keys returns the field names in lexical order.
func (r *BaseRecord) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fields set.
func (r *BaseRecord) Len() int {
	return len(r.values)
}

// put replaces a field without merging; the record takes ownership of value.
func (r *BaseRecord) put(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if value == nil {
		delete(r.values, name)
		return
	}
	r.values[name] = value
}

// putRecord replaces a field with a child record, or clears it for nil.
func (r *BaseRecord) putRecord(name string, child Record) {
	if child == nil || isNilRecord(child) {
		delete(r.values, name)
		return
	}
	r.put(name, child)
}

func (r *BaseRecord) str(name string) string {
	s, _ := r.values[name].(string)
	return s
}

func (r *BaseRecord) number(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

func (r *BaseRecord) putString(name, value string) {
	if value == "" {
		delete(r.values, name)
		return
	}
	r.put(name, value)
}

// child returns the record stored under name. A plain table found where a
// record is expected, as in legacy documents, is decoded with typeName and
// replaces the table.
func (r *BaseRecord) child(name, typeName string) Record {
	switch v := r.values[name].(type) {
	case Record:
		return v
	case map[string]any:
		rec, err := DeserializeAs(typeName, v)
		if err != nil {
			return nil
		}
		r.values[name] = rec
		return rec
	default:
		return nil
	}
}

// list returns the elements of a list field.
func (r *BaseRecord) list(name string) []any {
	l, _ := r.values[name].([]any)
	return l
}

func isNilRecord(rec Record) bool {
	v := reflect.ValueOf(rec)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
