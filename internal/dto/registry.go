package dto

import (
	"sort"
	"strings"
	"sync"
)

// TypeSuffix is the naming convention shared by every record type tag.
const TypeSuffix = "Dto"

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Record{}
)

// Register associates a type tag with the factory used to decode it.
// Registering the same tag twice replaces the earlier factory.
func Register(typeName string, factory func() Record) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typeName] = factory
}

// Registered reports whether a factory exists for typeName.
func Registered(typeName string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[typeName]
	return ok
}

// IsRecord reports whether v is a record of this family: it exposes a type
// tag and the tag follows the TypeSuffix convention.
func IsRecord(v any) bool {
	rec, ok := v.(Record)
	if !ok || isNilRecord(rec) {
		return false
	}
	name := rec.TypeName()
	return len(name) > len(TypeSuffix) && strings.HasSuffix(name, TypeSuffix)
}

// newRecord instantiates the registered type for typeName, falling back to a
// bare BaseRecord that keeps the tag.
func newRecord(typeName string) Record {
	registryMu.RLock()
	factory, ok := registry[typeName]
	registryMu.RUnlock()
	if ok {
		return factory()
	}
	return NewBaseRecord(typeName)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	Register(LookupReferenceType, func() Record { return NewLookupReference("", "", "") })
	Register(SelectedFeatureType, func() Record { return NewSelectedFeature() })
	Register(SelectedFeaturesType, func() Record { return NewSelectedFeatures() })
	Register(AncestryType, func() Record { return NewAncestry() })
	Register(CareerType, func() Record { return NewCareer() })
	Register(CultureAspectType, func() Record { return NewCultureAspect() })
	Register(CultureType, func() Record { return NewCulture() })
	Register(ClassType, func() Record { return NewClass() })
	Register(AttributesType, func() Record { return NewAttributes() })
	Register(CharacterType, func() Record { return NewCharacter() })
	Register(PortraitOffsetType, func() Record { return newPortraitOffset() })
	Register(TokenType, func() Record { return NewToken() })
	Register(MetadataType, func() Record { return NewMetadata() })
	Register(EnvelopeType, func() Record { return NewEnvelope() })
}
