// Package token provides the interface for world token persistence
package token

//go:generate mockgen -destination=mock/mock_repository.go -package=tokenmock github.com/KirkDiggler/rpg-porter/internal/repositories/token Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
)

// Repository defines the interface for token persistence
type Repository interface {
	// CreateShell reserves a new token ID and returns an empty hero token
	// The shell is not visible in the world until it is registered
	// Returns errors.Internal for storage failures
	CreateShell(ctx context.Context, input CreateShellInput) (*CreateShellOutput, error)

	// Register stores a finished token and adds it to the world
	// Returns errors.InvalidArgument for a nil token or empty ID
	// Returns errors.Internal for storage failures
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Get retrieves a registered token
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the token doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetSelected retrieves the token currently selected in the world
	// Returns errors.NotFound if nothing is selected
	// Returns errors.Internal for storage failures
	GetSelected(ctx context.Context, input GetSelectedInput) (*GetSelectedOutput, error)

	// Select marks a registered token as the world's current selection
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the token doesn't exist
	// Returns errors.Internal for storage failures
	Select(ctx context.Context, input SelectInput) (*SelectOutput, error)
}

// CreateShellInput defines the input for creating a shell
type CreateShellInput struct{}

// CreateShellOutput defines the output for creating a shell
type CreateShellOutput struct {
	Token *entities.Token
}

// RegisterInput defines the input for registering a token
type RegisterInput struct {
	Token *entities.Token
}

// RegisterOutput defines the output for registering a token
type RegisterOutput struct {
	Token *entities.Token
}

// GetInput defines the input for getting a token
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a token
type GetOutput struct {
	Token *entities.Token
}

// GetSelectedInput defines the input for getting the selected token
type GetSelectedInput struct{}

// GetSelectedOutput defines the output for getting the selected token
type GetSelectedOutput struct {
	Token *entities.Token
}

// SelectInput defines the input for selecting a token
type SelectInput struct {
	ID string
}

// SelectOutput defines the output for selecting a token
type SelectOutput struct{}
