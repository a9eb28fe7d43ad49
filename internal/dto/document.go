package dto

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// Encode renders env as indented JSON. Object keys are sorted, so equal
// envelopes always encode to identical bytes.
func Encode(env *Envelope) ([]byte, error) {
	if env == nil {
		return nil, errors.InvalidArgument("envelope is required")
	}
	data, err := json.MarshalIndent(Serialize(env), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode envelope")
	}
	return data, nil
}

// Decode parses a document into an envelope. Documents without a
// metadata.version of at least 1 are treated as legacy bare tokens and
// upgraded. Returns a parse error for empty input, invalid JSON, a root that
// is not an object, or a versioned document without a character.
func Decode(data []byte, opts ...DecodeOption) (*Envelope, error) {
	d := newDecoder(opts...)
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.Parse("document is empty")
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ParseWrap(err, "document is not valid JSON")
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Parse("document root must be an object")
	}

	version := documentVersion(doc)
	if version < LegacyVersion {
		return d.upgrade(doc), nil
	}
	if version > CurrentVersion {
		d.logger.Warn("Document is newer than this reader",
			"version", version,
			"supported", CurrentVersion)
	}

	rec, err := d.decodeRecord(EnvelopeType, doc)
	if err != nil {
		return nil, errors.ParseWrap(err, "failed to decode envelope")
	}
	env := rec.(*Envelope)
	if env.Character() == nil {
		return nil, errors.Parse("document has no character")
	}
	return env, nil
}

// Upgrade converts a legacy document, a bare token that may carry its
// character inline, into an envelope with synthesized version 1 metadata.
func Upgrade(doc map[string]any, opts ...DecodeOption) *Envelope {
	return newDecoder(opts...).upgrade(doc)
}

func (d *decoder) upgrade(doc map[string]any) *Envelope {
	rec, _ := d.decodeRecord(TokenType, doc)
	token := rec.(*Token)
	token.Unset(fieldMetadata)

	character := token.detachCharacter()
	if character == nil {
		character = NewCharacter()
	}

	meta := NewMetadata()
	meta.SetVersion(LegacyVersion)
	meta.SetExportSource(LegacySource)

	env := NewEnvelope()
	env.SetMetadata(meta)
	env.SetToken(token)
	env.SetCharacter(character)
	return env
}

func documentVersion(doc map[string]any) int {
	meta, ok := doc[fieldMetadata].(map[string]any)
	if !ok {
		return 0
	}
	v, ok := meta[fieldVersion].(float64)
	if !ok {
		return 0
	}
	return int(v)
}
