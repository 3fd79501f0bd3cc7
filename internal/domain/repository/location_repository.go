// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fleetops/internal/domain/entity"
	"fleetops/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationScope narrows FetchAll to a region. The zero value is unscoped.
type LocationScope struct {
	Country string
	Region  string
}

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// FetchAll retrieves every known location, optionally narrowed to a region scope.
	FetchAll(ctx context.Context, scope LocationScope) ([]*entity.Location, error)

	// FindByID retrieves a location by its unique ID.
	// Returns ErrLocationNotFound if no such location exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Save persists a new location or updates an existing one.
	Save(ctx context.Context, location *entity.Location) error

	// Delete removes a location by its ID. Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
