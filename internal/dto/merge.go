package dto

import (
	"encoding/json"
	"reflect"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// Merge folds incoming into existing and returns the value to store:
//   - existing unset (nil): a deep copy of incoming
//   - existing plain data (scalar, list, table): a deep copy of incoming
//   - existing record, incoming record or table: existing with every incoming
//     field set on it recursively
//   - existing record, incoming scalar or list: existing unchanged and a
//     schema error
//
// Lists always replace; they are never appended to.
func Merge(existing, incoming any) (any, error) {
	return merge("", existing, incoming)
}

func merge(field string, existing, incoming any) (any, error) {
	value, err := normalize(field, incoming)
	if err != nil {
		return existing, err
	}

	target, ok := existing.(Record)
	if !ok {
		return value, nil
	}

	var updates map[string]any
	switch v := value.(type) {
	case Record:
		updates = v.base().values
	case map[string]any:
		updates = v
	default:
		return existing, errors.Schema(field, target.TypeName())
	}

	var firstErr error
	for _, k := range sortedKeys(updates) {
		if k == TypeKey {
			continue
		}
		if err := target.Set(k, updates[k]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return target, firstErr
}

// normalize validates value and returns a deep copy in canonical form:
// numbers become float64, slices become []any, string-keyed maps become
// map[string]any and records are cloned.
func normalize(field string, value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string, bool, float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, errors.Newf(errors.CodeAborted, "field %q holds an invalid number %q", field, v.String())
		}
		return f, nil
	case Record:
		if isNilRecord(v) {
			return nil, nil
		}
		return cloneRecord(v), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := normalize(field, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, err := normalize(field, iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = elem
		}
		return out, nil
	}

	return nil, errors.Newf(errors.CodeAborted, "field %q cannot hold a %T", field, value)
}

// cloneRecord deep-copies rec into a fresh instance of the same registered type.
func cloneRecord(rec Record) Record {
	out := newRecord(rec.TypeName())
	dst := out.base()
	for k, v := range rec.base().values {
		dst.values[k] = deepCopy(v)
	}
	return out
}

// deepCopy copies an already normalized value.
func deepCopy(value any) any {
	switch v := value.(type) {
	case Record:
		return cloneRecord(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = deepCopy(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = deepCopy(elem)
		}
		return out
	default:
		return v
	}
}
