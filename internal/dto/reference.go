package dto

// Type tags
const (
	LookupReferenceType  = "LookupReferenceDto"
	SelectedFeatureType  = "SelectedFeatureDto"
	SelectedFeaturesType = "SelectedFeaturesDto"
)

const (
	fieldTableName = "tableName"
	fieldID        = "id"
	fieldName      = "name"
)

// LookupReference points at a row of a catalog table. The id is the source
// world's identifier and may not exist in the destination; the name is the
// fallback match key.
type LookupReference struct {
	BaseRecord
}

// NewLookupReference returns a reference to tableName. Empty values are left unset.
func NewLookupReference(tableName, id, name string) *LookupReference {
	l := &LookupReference{}
	l.init(LookupReferenceType)
	l.putString(fieldTableName, tableName)
	l.putString(fieldID, id)
	l.putString(fieldName, name)
	return l
}

// TableName returns the catalog table the reference points into.
func (l *LookupReference) TableName() string {
	if l == nil {
		return ""
	}
	return l.str(fieldTableName)
}

// ID returns the candidate identifier.
func (l *LookupReference) ID() string {
	if l == nil {
		return ""
	}
	return l.str(fieldID)
}

// Name returns the display name used as fallback match key.
func (l *LookupReference) Name() string {
	if l == nil {
		return ""
	}
	return l.str(fieldName)
}

// IsEmpty reports whether the reference carries neither id nor name.
func (l *LookupReference) IsEmpty() bool {
	return l.ID() == "" && l.Name() == ""
}
