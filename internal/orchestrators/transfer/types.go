package transfer

import (
	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// ExportInput selects the token to export
type ExportInput struct {
	// TokenID names the token; empty exports the world's selected token
	TokenID string
}

// ExportOutput describes a written export
type ExportOutput struct {
	Path     string
	Envelope *dto.Envelope
}

// ImportInput carries the document to import, inline or by path
type ImportInput struct {
	// Document is the raw document text; it takes precedence over Path
	Document []byte
	Path     string
}

// ImportOutput holds the registered token
type ImportOutput struct {
	Token    *entities.Token
	Envelope *dto.Envelope
}
