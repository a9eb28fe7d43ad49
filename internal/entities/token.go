// Package entities provides the host world model read by export and written
// by import: tokens, the characters they carry, and the catalog tables those
// characters reference.
package entities

// Entity type names reported through core.Entity. They prefix storage keys,
// see EntityKey.
const (
	EntityTypeToken         = "token"
	EntityTypeCatalogRecord = "catalog_record"
)

// Vector2 is a 2-D offset in fractions of the portrait frame
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Token is a world token: display settings, ownership and the character it carries
type Token struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Portrait       string     `json:"portrait,omitempty"`
	PortraitFrame  string     `json:"portrait_frame,omitempty"`
	PortraitZoom   float64    `json:"portrait_zoom,omitempty"`
	OwnerID        string     `json:"owner_id,omitempty"`
	PartyID        string     `json:"party_id,omitempty"`
	PortraitOffset Vector2    `json:"portrait_offset"`
	Character      *Character `json:"character,omitempty"`
}

// GetID returns the token's ID
func (t *Token) GetID() string {
	return t.ID
}

// GetType returns the entity type for rpg-toolkit
func (t *Token) GetType() string {
	return EntityTypeToken
}
