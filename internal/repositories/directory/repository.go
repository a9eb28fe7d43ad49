// Package directory provides the world's users and parties
package directory

//go:generate mockgen -destination=mock/mock_repository.go -package=directorymock github.com/KirkDiggler/rpg-porter/internal/repositories/directory Repository

import (
	"context"
)

// Repository defines the interface for user and party lookups
type Repository interface {
	// UserExists reports whether a user is known to the world
	// Returns errors.Internal for storage failures
	UserExists(ctx context.Context, input UserExistsInput) (*UserExistsOutput, error)

	// PartyExists reports whether a party is known to the world
	// Returns errors.Internal for storage failures
	PartyExists(ctx context.Context, input PartyExistsInput) (*PartyExistsOutput, error)

	// GetDefaultParty returns the party new characters fall back to
	// Returns errors.NotFound if the world has no default party
	// Returns errors.Internal for storage failures
	GetDefaultParty(ctx context.Context, input GetDefaultPartyInput) (*GetDefaultPartyOutput, error)

	// AddUser registers a user
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	AddUser(ctx context.Context, input AddUserInput) (*AddUserOutput, error)

	// AddParty registers a party, optionally making it the default
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	AddParty(ctx context.Context, input AddPartyInput) (*AddPartyOutput, error)
}

// UserExistsInput defines the input for checking a user
type UserExistsInput struct {
	ID string
}

// UserExistsOutput defines the output for checking a user
type UserExistsOutput struct {
	Exists bool
}

// PartyExistsInput defines the input for checking a party
type PartyExistsInput struct {
	ID string
}

// PartyExistsOutput defines the output for checking a party
type PartyExistsOutput struct {
	Exists bool
}

// GetDefaultPartyInput defines the input for getting the default party
type GetDefaultPartyInput struct{}

// GetDefaultPartyOutput defines the output for getting the default party
type GetDefaultPartyOutput struct {
	PartyID string
}

// AddUserInput defines the input for adding a user
type AddUserInput struct {
	ID string
}

// AddUserOutput defines the output for adding a user
type AddUserOutput struct{}

// AddPartyInput defines the input for adding a party
type AddPartyInput struct {
	ID      string
	Default bool
}

// AddPartyOutput defines the output for adding a party
type AddPartyOutput struct{}
