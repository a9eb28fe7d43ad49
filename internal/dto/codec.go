package dto

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// Serialize flattens rec into a map of scalars, lists, tables and nested
// serialized records. The tag is written under TypeKey.
func Serialize(rec Record) map[string]any {
	if rec == nil || isNilRecord(rec) {
		return nil
	}

	values := rec.base().values
	out := make(map[string]any, len(values)+1)
	out[TypeKey] = rec.TypeName()
	for k, v := range values {
		out[k] = serializeValue(v)
	}
	return out
}

func serializeValue(value any) any {
	switch v := value.(type) {
	case Record:
		return Serialize(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = serializeValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = serializeValue(elem)
		}
		return out
	default:
		return v
	}
}

// DecodeOption configures how documents are decoded.
type DecodeOption func(*decoder)

// WithLogger sends warnings about dropped fields to logger instead of the
// default logger.
func WithLogger(logger *slog.Logger) DecodeOption {
	return func(d *decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

type decoder struct {
	logger *slog.Logger
}

func newDecoder(opts ...DecodeOption) *decoder {
	d := &decoder{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deserialize rebuilds a record from doc using the tag stored under TypeKey.
// An unregistered or missing tag is an unknown type error.
func Deserialize(doc map[string]any, opts ...DecodeOption) (Record, error) {
	return newDecoder(opts...).deserialize(doc)
}

// DeserializeAs rebuilds a record from doc, using typeName when doc carries
// no tag of its own.
func DeserializeAs(typeName string, doc map[string]any, opts ...DecodeOption) (Record, error) {
	if tagged, ok := doc[TypeKey].(string); ok && tagged != "" {
		typeName = tagged
	}
	if !Registered(typeName) {
		return nil, errors.UnknownType(typeName)
	}
	return newDecoder(opts...).decodeRecord(typeName, doc)
}

func (d *decoder) deserialize(doc map[string]any) (Record, error) {
	typeName, _ := doc[TypeKey].(string)
	if !Registered(typeName) {
		return nil, errors.UnknownType(typeName)
	}
	return d.decodeRecord(typeName, doc)
}

func (d *decoder) decodeRecord(typeName string, doc map[string]any) (Record, error) {
	rec := newRecord(typeName)
	dst := rec.base()
	for _, k := range sortedKeys(doc) {
		if k == TypeKey {
			continue
		}
		v, err := d.decodeValue(k, doc[k])
		if err != nil {
			d.logger.Warn("Dropping document field",
				"record", typeName,
				"field", k,
				"error", err.Error())
			continue
		}
		if v == nil {
			continue
		}
		dst.values[k] = v
	}
	return rec, nil
}

// decodeValue turns one document value back into record form. Tagged tables
// become records; untagged tables stay plain data.
func (d *decoder) decodeValue(field string, value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		if _, tagged := v[TypeKey]; tagged {
			return d.deserialize(v)
		}
		out := make(map[string]any, len(v))
		for k, elem := range v {
			decoded, err := d.decodeValue(k, elem)
			if err != nil {
				d.logger.Warn("Dropping table entry",
					"field", field,
					"key", k,
					"error", err.Error())
				continue
			}
			out[k] = decoded
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(v))
		for i, elem := range v {
			decoded, err := d.decodeValue(field, elem)
			if err != nil {
				d.logger.Warn("Dropping list element",
					"field", field,
					"index", i,
					"error", err.Error())
				continue
			}
			out = append(out, decoded)
		}
		return out, nil
	default:
		return normalize(field, v)
	}
}
