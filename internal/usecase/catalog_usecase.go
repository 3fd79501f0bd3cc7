package usecase

import (
	"context"

	"fleetops/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLocationInput represents the input for adding a new location
type AddLocationInput struct {
	Name           string                  `json:"name"`
	Address        string                  `json:"address"`
	Latitude       float64                 `json:"latitude"`
	Longitude      float64                 `json:"longitude"`
	Category       entity.LocationCategory `json:"category"`
	FullCylinders  int                     `json:"full_cylinders"`
	EmptyCylinders int                     `json:"empty_cylinders"`
	OperatingHours string                  `json:"operating_hours"`
	Country        string                  `json:"country"`
	Region         string                  `json:"region"`
}

// UpdateLocationInput represents the input for updating an existing location.
// Nil fields keep their current value.
type UpdateLocationInput struct {
	Name           *string                  `json:"name,omitempty"`
	Address        *string                  `json:"address,omitempty"`
	Latitude       *float64                 `json:"latitude,omitempty"`
	Longitude      *float64                 `json:"longitude,omitempty"`
	Category       *entity.LocationCategory `json:"category,omitempty"`
	FullCylinders  *int                     `json:"full_cylinders,omitempty"`
	EmptyCylinders *int                     `json:"empty_cylinders,omitempty"`
	OperatingHours *string                  `json:"operating_hours,omitempty"`
	Country        *string                  `json:"country,omitempty"`
	Region         *string                  `json:"region,omitempty"`
}

// ReferenceGuard reports whether a location is currently referenced by the
// active route draft. The planner registers it on the catalog so that
// referenced locations cannot be deleted.
type ReferenceGuard func(locationID uuid.UUID) bool

// CatalogUsecase defines the interface for the location catalog: the
// repo-backed set of known delivery and storage locations, scoped to the
// active region.
type CatalogUsecase interface {
	// Refresh reloads the in-memory set from persistence.
	Refresh(ctx context.Context) error

	// List returns all known locations scoped to the active region, or
	// unscoped when no region is selected.
	List(ctx context.Context) ([]*entity.Location, error)

	// Search filters the listed locations by case-insensitive substring
	// match on name and address.
	Search(ctx context.Context, term string) ([]*entity.Location, error)

	// Get resolves a location by id from the full (unscoped) set.
	Get(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Add assigns a new id and persists the location; the in-memory set is
	// only updated on success.
	Add(ctx context.Context, input *AddLocationInput) (*entity.Location, error)

	// Update merges non-nil patch fields; persistence-first like Add.
	Update(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// Remove deletes the location permanently. Removing an absent id is a
	// no-op; removing a location referenced by the active draft is refused.
	Remove(ctx context.Context, id uuid.UUID) error

	// RegisterReferenceGuard wires the draft-reference check used by Remove.
	RegisterReferenceGuard(guard ReferenceGuard)
}
