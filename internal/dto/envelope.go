package dto

import (
	"time"
)

// Type tags for the document root.
const (
	MetadataType = "MetadataDto"
	EnvelopeType = "EnvelopeDto"
)

// Document versions and sources.
const (
	CurrentVersion = 2
	LegacyVersion  = 1

	ExportSource = "rpg-porter"
	LegacySource = "legacy-converted"
)

const (
	fieldVersion         = "version"
	fieldExportTimestamp = "exportTimestamp"
	fieldExportSource    = "exportSource"
	fieldMetadata        = "metadata"
	fieldToken           = "token"
)

// Metadata describes a document: format version, when and by what it was
// written.
type Metadata struct {
	BaseRecord
}

// NewMetadata returns empty metadata.
func NewMetadata() *Metadata {
	m := &Metadata{}
	m.init(MetadataType)
	return m
}

// NewExportMetadata returns current-version metadata stamped with at.
func NewExportMetadata(at time.Time) *Metadata {
	m := NewMetadata()
	m.SetVersion(CurrentVersion)
	m.SetExportTimestamp(at)
	m.SetExportSource(ExportSource)
	return m
}

// Version returns the format version, zero when absent.
func (m *Metadata) Version() int {
	if m == nil {
		return 0
	}
	return int(m.number(fieldVersion))
}

func (m *Metadata) SetVersion(v int) {
	m.put(fieldVersion, float64(v))
}

// ExportTimestamp returns the raw ISO-8601 timestamp.
func (m *Metadata) ExportTimestamp() string {
	if m == nil {
		return ""
	}
	return m.str(fieldExportTimestamp)
}

// SetExportTimestamp stores at in UTC, second precision.
func (m *Metadata) SetExportTimestamp(at time.Time) {
	m.putString(fieldExportTimestamp, at.UTC().Format(time.RFC3339))
}

func (m *Metadata) ExportSource() string {
	if m == nil {
		return ""
	}
	return m.str(fieldExportSource)
}

func (m *Metadata) SetExportSource(source string) {
	m.putString(fieldExportSource, source)
}

// Envelope is the document root.
type Envelope struct {
	BaseRecord
}

// NewEnvelope returns an empty envelope.
func NewEnvelope() *Envelope {
	e := &Envelope{}
	e.init(EnvelopeType)
	return e
}

func (e *Envelope) Metadata() *Metadata {
	m, _ := e.child(fieldMetadata, MetadataType).(*Metadata)
	return m
}

func (e *Envelope) SetMetadata(m *Metadata) {
	e.putRecord(fieldMetadata, m)
}

func (e *Envelope) Token() *Token {
	t, _ := e.child(fieldToken, TokenType).(*Token)
	return t
}

func (e *Envelope) SetToken(t *Token) {
	e.putRecord(fieldToken, t)
}

func (e *Envelope) Character() *Character {
	c, _ := e.child(fieldCharacter, CharacterType).(*Character)
	return c
}

func (e *Envelope) SetCharacter(c *Character) {
	e.putRecord(fieldCharacter, c)
}
