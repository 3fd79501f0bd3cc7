package usecase

import (
	"context"
	"time"

	"fleetops/internal/domain/entity"
	"fleetops/internal/domain/geo"

	"github.com/google/uuid"
)

// WorkflowState is the route-building workflow position.
type WorkflowState string

const (
	// StateCreating is the initial state of a fresh draft.
	StateCreating WorkflowState = "creating"
	// StateLocationsSelected is reached once the draft has at least one stop.
	StateLocationsSelected WorkflowState = "locations_selected"
	// StateOptimized is reached after a successful optimization.
	StateOptimized WorkflowState = "optimized"
	// StateLoadConfirmed is reached when the operator confirms the load.
	StateLoadConfirmed WorkflowState = "load_confirmed"
	// StatePersisted is reached once the confirmed route is saved.
	StatePersisted WorkflowState = "persisted"
)

// DraftSnapshot is the read model of the active draft and workflow state.
type DraftSnapshot struct {
	State         WorkflowState          `json:"state"`
	Stops         []entity.Stop          `json:"stops"`
	Start         *entity.Location       `json:"start,omitempty"`
	End           *entity.Location       `json:"end,omitempty"`
	LoadConfirmed bool                   `json:"load_confirmed"`
	DistanceKm    float64                `json:"distance_km"`
	DurationMin   float64                `json:"duration_min"`
	CostRand      float64                `json:"cost_rand"`
	Totals        entity.DraftTotals     `json:"totals"`
	Region        entity.RegionSelection `json:"region"`

	// IsOptimizeDisabled is derived on every snapshot; the presentation
	// layer must use it as the single source of truth for the optimize
	// control.
	IsOptimizeDisabled bool `json:"is_optimize_disabled"`
}

// PlannerUsecase defines the interface for the route-building workflow
// controller. It owns the active draft and gates which mutations are legal
// in each workflow state.
type PlannerUsecase interface {
	// AddStop resolves the location in the catalog and appends it with the
	// given cylinder quantity.
	AddStop(ctx context.Context, locationID uuid.UUID, quantity int) (*DraftSnapshot, error)

	// RemoveStop removes the stop for the location.
	RemoveStop(ctx context.Context, locationID uuid.UUID) (*DraftSnapshot, error)

	// MoveStop reorders the stop to the given position (clamped).
	MoveStop(ctx context.Context, locationID uuid.UUID, position int) (*DraftSnapshot, error)

	// SetStart / SetEnd designate the endpoints; the location must exist in
	// the catalog but need not already be a stop.
	SetStart(ctx context.Context, locationID uuid.UUID) (*DraftSnapshot, error)
	SetEnd(ctx context.Context, locationID uuid.UUID) (*DraftSnapshot, error)

	// Optimize calls the optimization collaborator and applies its result.
	// Requires at least three stops, an unconfirmed draft, and no
	// optimization already in flight.
	Optimize(ctx context.Context) (*DraftSnapshot, error)

	// ConfirmLoad freezes the draft. Only legal from the optimized state;
	// confirming twice is a no-op.
	ConfirmLoad() (*DraftSnapshot, error)

	// Save persists the confirmed draft as a route record.
	Save(ctx context.Context, name string, routeDate time.Time) (*entity.Route, error)

	// NewRoute discards the draft unconditionally and returns to creating.
	NewRoute() *DraftSnapshot

	// Snapshot returns the current read model.
	Snapshot() *DraftSnapshot

	// MapFrame derives the map center/zoom/bounds for the current
	// selection, falling back to the active region's defaults.
	MapFrame(ctx context.Context) (geo.Frame, error)

	// HasStop reports whether the location participates in the active
	// draft; the catalog consults it before deleting a location.
	HasStop(locationID uuid.UUID) bool
}
