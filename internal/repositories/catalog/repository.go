// Package catalog provides access to the world's catalog tables
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-porter/internal/repositories/catalog Reader,Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// Reader defines read access to catalog tables
type Reader interface {
	// GetTable returns every row of a table in iteration order
	// An unknown table is returned empty, not as an error
	// Returns errors.InvalidArgument for an empty table name
	// Returns errors.Internal for storage failures
	GetTable(ctx context.Context, input GetTableInput) (*GetTableOutput, error)

	// FindByName returns the row registered under an exact display name
	// Returns errors.InvalidArgument for an empty table name or name
	// Returns errors.NotFound if no row carries that name
	// Returns errors.Internal for storage failures
	FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error)
}

// Repository adds catalog writes used when loading a world
type Repository interface {
	Reader

	// PutTable replaces a whole table and its name index
	// Returns errors.InvalidArgument for a nil or unnamed table
	// Returns errors.Internal for storage failures
	PutTable(ctx context.Context, input PutTableInput) (*PutTableOutput, error)
}

// GetTableInput defines the input for reading a table
type GetTableInput struct {
	Name string
}

// GetTableOutput defines the output for reading a table
type GetTableOutput struct {
	Table *entities.Table
}

// FindByNameInput defines the input for an exact name lookup
type FindByNameInput struct {
	Table string
	Name  string
}

// FindByNameOutput defines the output for an exact name lookup
type FindByNameOutput struct {
	Record *entities.CatalogRecord
}

// PutTableInput defines the input for replacing a table
type PutTableInput struct {
	Table *entities.Table
}

// PutTableOutput defines the output for replacing a table
type PutTableOutput struct {
	Rows int
}
