package entity

import (
	"time"

	"github.com/google/uuid"
)

// RouteStatus tracks the lifecycle of a persisted route.
type RouteStatus string

const (
	// RouteStatusPlanned marks a saved route that has not been driven yet.
	RouteStatusPlanned RouteStatus = "planned"
	// RouteStatusInProgress marks a route currently being driven.
	RouteStatusInProgress RouteStatus = "in_progress"
	// RouteStatusCompleted marks a finished route.
	RouteStatusCompleted RouteStatus = "completed"
)

// Route is the persisted record produced from a confirmed draft. It is the
// unit the history drilldowns aggregate over.
type Route struct {
	ID          uuid.UUID   `json:"id"`           // The Global Unique Identifier (GUID) for the route.
	Name        string      `json:"name"`         // Display name, e.g. "Gauteng run 2026-08-29".
	Country     string      `json:"country"`      // Region scope the route was planned in.
	Region      string      `json:"region"`       //
	RouteDate   time.Time   `json:"route_date"`   // The day the route is driven.
	Stops       int         `json:"stops"`        // Number of stops at save time.
	DistanceKm  float64     `json:"distance_km"`  // Optimized distance in kilometers.
	DurationMin float64     `json:"duration_min"` // Optimized duration in minutes; 0 when never optimized.
	CostRand    float64     `json:"cost_rand"`    // Estimated cost in rand.
	Cylinders   int         `json:"cylinders"`    // Total cylinders loaded.
	Status      RouteStatus `json:"status"`       // Current lifecycle status.
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp of when this route was persisted.
	UpdatedAt   time.Time   `json:"updated_at"`   // Timestamp of the last modification.
}
