package dto

import (
	"strings"
)

const (
	fieldChoiceID   = "choiceId"
	fieldChoiceType = "choiceType"
	fieldSource     = "source"
	fieldCategories = "categories"
	fieldSelections = "selections"
	fieldFeatures   = "features"
)

// DomainsSuffix marks a dependent choice stored next to its parent choice,
// e.g. "<deity-choice-id>-domains".
const DomainsSuffix = "-domains"

// SelectedFeature is the answer given to one feature choice: which feature
// it answers, how to find that feature again, and what was picked.
type SelectedFeature struct {
	BaseRecord
}

// NewSelectedFeature returns an empty selected feature.
func NewSelectedFeature() *SelectedFeature {
	f := &SelectedFeature{}
	f.init(SelectedFeatureType)
	return f
}

// ChoiceID returns the identifier of the feature definition this answers.
func (f *SelectedFeature) ChoiceID() string {
	return f.str(fieldChoiceID)
}

// SetChoiceID sets the answered feature identifier.
func (f *SelectedFeature) SetChoiceID(id string) {
	f.putString(fieldChoiceID, id)
}

// ChoiceType returns the choice discriminator, e.g. "skill-choice".
func (f *SelectedFeature) ChoiceType() string {
	return f.str(fieldChoiceType)
}

// SetChoiceType sets the choice discriminator.
func (f *SelectedFeature) SetChoiceType(choiceType string) {
	f.putString(fieldChoiceType, choiceType)
}

// Source returns the subsystem the choice was exported from.
func (f *SelectedFeature) Source() string {
	return f.str(fieldSource)
}

// SetSource sets the subsystem the choice belongs to.
func (f *SelectedFeature) SetSource(source string) {
	f.putString(fieldSource, source)
}

// IsDomains reports whether this is a dependent domain choice.
func (f *SelectedFeature) IsDomains() bool {
	return strings.HasSuffix(f.ChoiceID(), DomainsSuffix)
}

// Categories returns the category tags. Non-string values are ignored.
func (f *SelectedFeature) Categories() map[string]string {
	table, _ := f.values[fieldCategories].(map[string]any)
	if len(table) == 0 {
		return nil
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// SetCategories replaces the category tags.
func (f *SelectedFeature) SetCategories(categories map[string]string) {
	if len(categories) == 0 {
		f.Unset(fieldCategories)
		return
	}
	table := make(map[string]any, len(categories))
	for k, v := range categories {
		table[k] = v
	}
	f.put(fieldCategories, table)
}

// Selections returns the picked references in order.
func (f *SelectedFeature) Selections() []*LookupReference {
	elems := f.list(fieldSelections)
	out := make([]*LookupReference, 0, len(elems))
	for i, elem := range elems {
		ref := asLookupReference(elem)
		if ref == nil {
			continue
		}
		elems[i] = ref
		out = append(out, ref)
	}
	return out
}

// AddSelection appends a picked reference; the feature takes ownership.
func (f *SelectedFeature) AddSelection(ref *LookupReference) {
	if ref == nil {
		return
	}
	f.put(fieldSelections, append(f.list(fieldSelections), ref))
}

func asLookupReference(elem any) *LookupReference {
	switch v := elem.(type) {
	case *LookupReference:
		return v
	case map[string]any:
		rec, err := DeserializeAs(LookupReferenceType, v)
		if err != nil {
			return nil
		}
		ref, _ := rec.(*LookupReference)
		return ref
	default:
		return nil
	}
}

// SelectedFeatures is the ordered set of choices made within one subsystem.
// Entries with a choice id are unique by it; others keep insertion order.
//
// Documents store the set either as a "features" list or as entries keyed by
// feature id. Keyed entries are folded into the list on first access, in key
// order after any listed entries, taking their key as choice id when they
// carry none.
type SelectedFeatures struct {
	BaseRecord
}

// NewSelectedFeatures returns an empty container.
func NewSelectedFeatures() *SelectedFeatures {
	s := &SelectedFeatures{}
	s.init(SelectedFeaturesType)
	return s
}

func newSelectedFeaturesFromList(elems []any) *SelectedFeatures {
	s := NewSelectedFeatures()
	s.put(fieldFeatures, elems)
	return s
}

// All returns the selected features in order.
func (s *SelectedFeatures) All() []*SelectedFeature {
	if s == nil {
		return nil
	}
	s.foldKeyed()
	elems := s.list(fieldFeatures)
	out := make([]*SelectedFeature, 0, len(elems))
	for i, elem := range elems {
		f := asSelectedFeature(elem)
		if f == nil {
			continue
		}
		elems[i] = f
		out = append(out, f)
	}
	return out
}

// Len returns the number of selected features.
func (s *SelectedFeatures) Len() int {
	return len(s.All())
}

// Find returns the feature answering choiceID.
func (s *SelectedFeatures) Find(choiceID string) *SelectedFeature {
	for _, f := range s.All() {
		if f.ChoiceID() == choiceID {
			return f
		}
	}
	return nil
}

// Put adds f. A feature with the same non-empty choice id is replaced in
// place, so later writes win without reordering.
func (s *SelectedFeatures) Put(f *SelectedFeature) {
	if f == nil {
		return
	}
	s.foldKeyed()
	s.insert(f)
}

func (s *SelectedFeatures) insert(f *SelectedFeature) {
	elems := s.list(fieldFeatures)
	if id := f.ChoiceID(); id != "" {
		for i, elem := range elems {
			if existing := asSelectedFeature(elem); existing != nil && existing.ChoiceID() == id {
				elems[i] = f
				return
			}
		}
	}
	s.put(fieldFeatures, append(elems, f))
}

// foldKeyed moves entries stored under a feature id into the features list.
func (s *SelectedFeatures) foldKeyed() {
	for _, key := range s.Keys() {
		if key == fieldFeatures {
			continue
		}
		f := asSelectedFeature(s.values[key])
		if f == nil {
			continue
		}
		if f.ChoiceID() == "" {
			f.SetChoiceID(key)
		}
		delete(s.values, key)
		s.insert(f)
	}
}

// Prune drops features without selections and returns how many were removed.
func (s *SelectedFeatures) Prune() int {
	all := s.All()
	kept := make([]any, 0, len(all))
	for _, f := range all {
		if len(f.Selections()) > 0 {
			kept = append(kept, f)
		}
	}
	removed := len(all) - len(kept)
	if removed > 0 {
		s.put(fieldFeatures, kept)
	}
	return removed
}

func asSelectedFeature(elem any) *SelectedFeature {
	switch v := elem.(type) {
	case *SelectedFeature:
		return v
	case map[string]any:
		rec, err := DeserializeAs(SelectedFeatureType, v)
		if err != nil {
			return nil
		}
		f, _ := rec.(*SelectedFeature)
		return f
	default:
		return nil
	}
}
