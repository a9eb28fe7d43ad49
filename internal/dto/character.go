package dto

// CharacterType is the tag of the character snapshot record.
const CharacterType = "CharacterDto"

const (
	fieldAncestry        = "ancestry"
	fieldCareer          = "career"
	fieldClass           = "class"
	fieldCulture         = "culture"
	fieldAttributes      = "attributes"
	fieldCharacterType   = "characterType"
	fieldComplication    = "complication"
	fieldResistances     = "resistances"
	fieldInnateAbilities = "innateAbilities"
)

// Character is the snapshot of a hero: one record per subsystem, the two
// top-level references and the fields copied verbatim between worlds.
type Character struct {
	BaseRecord
}

// NewCharacter returns an empty character record.
func NewCharacter() *Character {
	c := &Character{}
	c.init(CharacterType)
	return c
}

func (c *Character) Ancestry() *Ancestry {
	a, _ := c.child(fieldAncestry, AncestryType).(*Ancestry)
	return a
}

func (c *Character) SetAncestry(a *Ancestry) {
	c.putRecord(fieldAncestry, a)
}

func (c *Character) Career() *Career {
	cr, _ := c.child(fieldCareer, CareerType).(*Career)
	return cr
}

func (c *Character) SetCareer(cr *Career) {
	c.putRecord(fieldCareer, cr)
}

func (c *Character) Class() *Class {
	cl, _ := c.child(fieldClass, ClassType).(*Class)
	return cl
}

func (c *Character) SetClass(cl *Class) {
	c.putRecord(fieldClass, cl)
}

func (c *Character) Culture() *Culture {
	cu, _ := c.child(fieldCulture, CultureType).(*Culture)
	return cu
}

func (c *Character) SetCulture(cu *Culture) {
	c.putRecord(fieldCulture, cu)
}

func (c *Character) Attributes() *Attributes {
	a, _ := c.child(fieldAttributes, AttributesType).(*Attributes)
	return a
}

func (c *Character) SetAttributes(a *Attributes) {
	c.putRecord(fieldAttributes, a)
}

// CharacterTypeRef returns the character type reference.
func (c *Character) CharacterTypeRef() *LookupReference {
	ref, _ := c.child(fieldCharacterType, LookupReferenceType).(*LookupReference)
	return ref
}

func (c *Character) SetCharacterTypeRef(ref *LookupReference) {
	c.putRecord(fieldCharacterType, ref)
}

func (c *Character) Complication() *LookupReference {
	ref, _ := c.child(fieldComplication, LookupReferenceType).(*LookupReference)
	return ref
}

func (c *Character) SetComplication(ref *LookupReference) {
	c.putRecord(fieldComplication, ref)
}

// Resistances returns the verbatim resistance table.
func (c *Character) Resistances() map[string]any {
	table, _ := c.values[fieldResistances].(map[string]any)
	return table
}

// SetResistances copies table into the record.
func (c *Character) SetResistances(table map[string]any) error {
	if len(table) == 0 {
		c.Unset(fieldResistances)
		return nil
	}
	return c.Set(fieldResistances, table)
}

// InnateAbilities returns the verbatim innate ability list.
func (c *Character) InnateAbilities() []any {
	return c.list(fieldInnateAbilities)
}

// SetInnateAbilities copies list into the record.
func (c *Character) SetInnateAbilities(list []any) error {
	if len(list) == 0 {
		c.Unset(fieldInnateAbilities)
		return nil
	}
	return c.Set(fieldInnateAbilities, list)
}

// Features returns the verbatim feature list.
func (c *Character) Features() []any {
	return c.list(fieldFeatures)
}

// SetFeatures copies list into the record.
func (c *Character) SetFeatures(list []any) error {
	if len(list) == 0 {
		c.Unset(fieldFeatures)
		return nil
	}
	return c.Set(fieldFeatures, list)
}
