package dto

import (
	"math"
)

// Type tags for the character subsystems.
const (
	AncestryType      = "AncestryDto"
	CareerType        = "CareerDto"
	CultureAspectType = "CultureAspectDto"
	CultureType       = "CultureDto"
	ClassType         = "ClassDto"
	AttributesType    = "AttributesDto"
)

const (
	fieldReference        = "reference"
	fieldSelectedFeatures = "selectedFeatures"
	fieldSubclass         = "subclass"
	fieldLevel            = "level"
	fieldLanguage         = "language"
)

// Class level bounds.
const (
	MinClassLevel = 1
	MaxClassLevel = 10
)

// Culture aspect slots.
const (
	SlotEnvironment  = "environment"
	SlotOrganization = "organization"
	SlotUpbringing   = "upbringing"
)

// AspectSlots lists the culture aspect slots in export order.
var AspectSlots = []string{SlotEnvironment, SlotOrganization, SlotUpbringing}

// subsystem is the shape shared by every subsystem record: a reference to
// what the subsystem is plus the choices made inside it.
type subsystem struct {
	BaseRecord
}

// Reference returns the primary lookup reference.
func (s *subsystem) Reference() *LookupReference {
	ref, _ := s.child(fieldReference, LookupReferenceType).(*LookupReference)
	return ref
}

// SetReference replaces the primary lookup reference.
func (s *subsystem) SetReference(ref *LookupReference) {
	s.putRecord(fieldReference, ref)
}

// SelectedFeatures returns the choices made within the subsystem, or nil.
// A bare list of features is wrapped in a container.
func (s *subsystem) SelectedFeatures() *SelectedFeatures {
	if elems, ok := s.values[fieldSelectedFeatures].([]any); ok {
		sf := newSelectedFeaturesFromList(elems)
		s.values[fieldSelectedFeatures] = sf
		return sf
	}
	sf, _ := s.child(fieldSelectedFeatures, SelectedFeaturesType).(*SelectedFeatures)
	return sf
}

// SetSelectedFeatures replaces the choices. An empty container unsets them.
func (s *subsystem) SetSelectedFeatures(sf *SelectedFeatures) {
	if sf.Len() == 0 {
		s.Unset(fieldSelectedFeatures)
		return
	}
	s.putRecord(fieldSelectedFeatures, sf)
}

// Ancestry records the character's race.
type Ancestry struct {
	subsystem
}

// NewAncestry returns an empty ancestry record.
func NewAncestry() *Ancestry {
	a := &Ancestry{}
	a.init(AncestryType)
	return a
}

// Career records the character's background.
type Career struct {
	subsystem
}

// NewCareer returns an empty career record.
func NewCareer() *Career {
	c := &Career{}
	c.init(CareerType)
	return c
}

// CultureAspect records one culture slot.
type CultureAspect struct {
	subsystem
}

// NewCultureAspect returns an empty culture aspect record.
func NewCultureAspect() *CultureAspect {
	c := &CultureAspect{}
	c.init(CultureAspectType)
	return c
}

// Class records the character's first class.
type Class struct {
	subsystem
}

// NewClass returns an empty class record.
func NewClass() *Class {
	c := &Class{}
	c.init(ClassType)
	return c
}

// Subclass returns the subclass reference, if any.
func (c *Class) Subclass() *LookupReference {
	ref, _ := c.child(fieldSubclass, LookupReferenceType).(*LookupReference)
	return ref
}

// SetSubclass replaces the subclass reference.
func (c *Class) SetSubclass(ref *LookupReference) {
	c.putRecord(fieldSubclass, ref)
}

// Level returns the class level. Missing, fractional or out of range values
// read as MinClassLevel.
func (c *Class) Level() int {
	return ClampLevel(c.number(fieldLevel))
}

// SetLevel stores level, clamped with ClampLevel.
func (c *Class) SetLevel(level int) {
	c.put(fieldLevel, float64(ClampLevel(float64(level))))
}

// ClampLevel maps a raw level onto [MinClassLevel, MaxClassLevel], using
// MinClassLevel for anything outside the range.
func ClampLevel(raw float64) int {
	if raw != math.Trunc(raw) || raw < MinClassLevel || raw > MaxClassLevel {
		return MinClassLevel
	}
	return int(raw)
}

// Culture records the language and the three culture aspect slots.
type Culture struct {
	BaseRecord
}

// NewCulture returns an empty culture record.
func NewCulture() *Culture {
	c := &Culture{}
	c.init(CultureType)
	return c
}

// Language returns the language reference.
func (c *Culture) Language() *LookupReference {
	ref, _ := c.child(fieldLanguage, LookupReferenceType).(*LookupReference)
	return ref
}

// SetLanguage replaces the language reference.
func (c *Culture) SetLanguage(ref *LookupReference) {
	c.putRecord(fieldLanguage, ref)
}

// Aspect returns the aspect stored in slot.
func (c *Culture) Aspect(slot string) *CultureAspect {
	aspect, _ := c.child(slot, CultureAspectType).(*CultureAspect)
	return aspect
}

// SetAspect replaces the aspect stored in slot.
func (c *Culture) SetAspect(slot string, aspect *CultureAspect) {
	c.putRecord(slot, aspect)
}

// Attributes holds one numeric field per characteristic.
type Attributes struct {
	BaseRecord
}

// NewAttributes returns an empty attributes record.
func NewAttributes() *Attributes {
	a := &Attributes{}
	a.init(AttributesType)
	return a
}

// Values returns every numeric field as an integer.
func (a *Attributes) Values() map[string]int {
	out := make(map[string]int, len(a.values))
	for k, v := range a.values {
		if f, ok := v.(float64); ok {
			out[k] = int(f)
		}
	}
	return out
}

// SetValue stores one characteristic.
func (a *Attributes) SetValue(name string, value int) {
	a.put(name, float64(value))
}
