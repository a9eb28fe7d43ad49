// Package builders provides fluent builders for test data
package builders

import (
	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// RecordBuilder provides a fluent interface for building catalog rows
type RecordBuilder struct {
	record *entities.CatalogRecord
}

// NewRecordBuilder creates a row builder
func NewRecordBuilder(id, name string) *RecordBuilder {
	return &RecordBuilder{
		record: &entities.CatalogRecord{ID: id, Name: name},
	}
}

// Hidden marks the row as hidden from name scans
func (b *RecordBuilder) Hidden() *RecordBuilder {
	b.record.Hidden = true
	return b
}

// WithFeatures appends top-level feature definitions
func (b *RecordBuilder) WithFeatures(features ...*entities.FeatureDef) *RecordBuilder {
	b.record.Features = append(b.record.Features, features...)
	return b
}

// WithLevelFeatures appends features gained at level
func (b *RecordBuilder) WithLevelFeatures(level int, features ...*entities.FeatureDef) *RecordBuilder {
	if b.record.LevelFeatures == nil {
		b.record.LevelFeatures = make(map[int][]*entities.FeatureDef)
	}
	b.record.LevelFeatures[level] = append(b.record.LevelFeatures[level], features...)
	return b
}

// Build returns the row
func (b *RecordBuilder) Build() *entities.CatalogRecord {
	return b.record
}

// Row is shorthand for a plain row
func Row(id, name string) *entities.CatalogRecord {
	return NewRecordBuilder(id, name).Build()
}

// Choice builds a table-backed choice definition
func Choice(id, featureType, table string, children ...*entities.FeatureDef) *entities.FeatureDef {
	return &entities.FeatureDef{
		ID:          id,
		Type:        featureType,
		ChoiceTable: table,
		Features:    children,
	}
}

// Categorized returns def with categories set
func Categorized(def *entities.FeatureDef, categories map[string]string) *entities.FeatureDef {
	def.Categories = categories
	return def
}

// Options builds an inline option choice
func Options(id string, options ...entities.FeatureOption) *entities.FeatureDef {
	return &entities.FeatureDef{
		ID:          id,
		Type:        entities.FeatureTypeOptionChoice,
		ChoiceTable: entities.TableInlineOptions,
		Options:     options,
	}
}

// Group builds a plain feature holding nested definitions
func Group(id, name string, children ...*entities.FeatureDef) *entities.FeatureDef {
	return &entities.FeatureDef{
		ID:       id,
		Name:     name,
		Type:     entities.FeatureTypeFeature,
		Features: children,
	}
}
