// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// LocationCategory distinguishes depot-style storage sites from customer sites.
type LocationCategory string

const (
	// CategoryStorage marks a depot holding full cylinders to be loaded.
	CategoryStorage LocationCategory = "storage"
	// CategoryCustomer marks a customer site with an expected empty-cylinder pickup.
	CategoryCustomer LocationCategory = "customer"
)

// Location is the core entity for a delivery or storage site.
type Location struct {
	ID             uuid.UUID        `json:"id"`              // The Global Unique Identifier (GUID) for the location.
	Name           string           `json:"name"`            // Display name, e.g. "Afrox Depot Midrand".
	Address        string           `json:"address"`         // The full, human-readable street address.
	Latitude       float64          `json:"latitude"`        // The geographic latitude.
	Longitude      float64          `json:"longitude"`       // The geographic longitude.
	Category       LocationCategory `json:"category"`        // Storage depot or customer site.
	FullCylinders  int              `json:"full_cylinders"`  // Full cylinders in stock (storage) or to deliver.
	EmptyCylinders int              `json:"empty_cylinders"` // Empty cylinders expected for pickup.
	OperatingHours string           `json:"operating_hours"` // Optional free-form opening hours.
	Country        string           `json:"country"`         // Optional country tag for region scoping.
	Region         string           `json:"region"`          // Optional region tag for region scoping.
	CreatedAt      time.Time        `json:"created_at"`      // Timestamp of when this location was created.
	UpdatedAt      time.Time        `json:"updated_at"`      // Timestamp of the last modification.
}

// HasValidCoordinates reports whether the location can participate in map
// framing and route optimization. The (0,0) origin is treated as "not
// geocoded", matching how un-geocoded records come back from persistence.
func (l *Location) HasValidCoordinates() bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) ||
		math.IsInf(l.Latitude, 0) || math.IsInf(l.Longitude, 0) {
		return false
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}

	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// InRegion reports whether the location belongs to the given region scope.
// Locations without a region tag are visible in every scope.
func (l *Location) InRegion(country, region string) bool {
	if l.Country == "" && l.Region == "" {
		return true
	}

	return l.Country == country && l.Region == region
}
