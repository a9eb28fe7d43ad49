package dto

// Type tags for token display records.
const (
	TokenType          = "TokenDto"
	PortraitOffsetType = "PortraitOffsetDto"
)

const (
	fieldPortrait       = "portrait"
	fieldPortraitFrame  = "portraitFrame"
	fieldPortraitZoom   = "portraitZoom"
	fieldOwnerID        = "ownerId"
	fieldPartyID        = "partyId"
	fieldPortraitOffset = "portraitOffset"
	fieldCharacter      = "character"
	fieldX              = "x"
	fieldY              = "y"
)

// PortraitOffset is the portrait shift inside its frame, in percent.
type PortraitOffset struct {
	BaseRecord
}

func newPortraitOffset() *PortraitOffset {
	p := &PortraitOffset{}
	p.init(PortraitOffsetType)
	return p
}

// NewPortraitOffset returns an offset of (x, y) percent.
func NewPortraitOffset(x, y float64) *PortraitOffset {
	p := newPortraitOffset()
	p.put(fieldX, x)
	p.put(fieldY, y)
	return p
}

func (p *PortraitOffset) X() float64 { return p.number(fieldX) }
func (p *PortraitOffset) Y() float64 { return p.number(fieldY) }

// Token is the display and ownership side of a character.
type Token struct {
	BaseRecord
}

// NewToken returns an empty token record.
func NewToken() *Token {
	t := &Token{}
	t.init(TokenType)
	return t
}

func (t *Token) Name() string { return t.str(fieldName) }

func (t *Token) SetName(name string) { t.putString(fieldName, name) }

func (t *Token) Portrait() string { return t.str(fieldPortrait) }

func (t *Token) SetPortrait(portrait string) { t.putString(fieldPortrait, portrait) }

func (t *Token) PortraitFrame() string { return t.str(fieldPortraitFrame) }

func (t *Token) SetPortraitFrame(frame string) { t.putString(fieldPortraitFrame, frame) }

// PortraitZoom returns the zoom factor, or zero when unset.
func (t *Token) PortraitZoom() float64 { return t.number(fieldPortraitZoom) }

func (t *Token) SetPortraitZoom(zoom float64) {
	if zoom == 0 {
		t.Unset(fieldPortraitZoom)
		return
	}
	t.put(fieldPortraitZoom, zoom)
}

func (t *Token) OwnerID() string { return t.str(fieldOwnerID) }

func (t *Token) SetOwnerID(id string) { t.putString(fieldOwnerID, id) }

func (t *Token) PartyID() string { return t.str(fieldPartyID) }

func (t *Token) SetPartyID(id string) { t.putString(fieldPartyID, id) }

func (t *Token) PortraitOffset() *PortraitOffset {
	p, _ := t.child(fieldPortraitOffset, PortraitOffsetType).(*PortraitOffset)
	return p
}

func (t *Token) SetPortraitOffset(p *PortraitOffset) {
	t.putRecord(fieldPortraitOffset, p)
}

// Character returns the character nested in a legacy token document. Current
// documents keep the character on the envelope instead.
func (t *Token) Character() *Character {
	c, _ := t.child(fieldCharacter, CharacterType).(*Character)
	return c
}

// detachCharacter removes and returns the nested legacy character.
func (t *Token) detachCharacter() *Character {
	c := t.Character()
	t.Unset(fieldCharacter)
	return c
}
