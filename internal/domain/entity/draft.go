package entity

import (
	"fleetops/internal/errors"

	"github.com/google/uuid"
)

// Draft guard errors. These are deliberately plain sentinels: the workflow
// layer decides how loudly to surface them.
var (
	// ErrDraftFrozen is returned when mutating a load-confirmed draft.
	ErrDraftFrozen = errors.New("draft is load-confirmed and frozen")
	// ErrStopNotFound is returned when a stop id is not part of the draft.
	ErrStopNotFound = errors.New("stop not found in draft")
)

// MinOptimizableStops is the smallest stop list worth optimizing: a start,
// at least one intermediate, and an end.
const MinOptimizableStops = 3

// Stop is a location participating in a route draft together with the
// cylinder quantity handled there.
type Stop struct {
	Location Location `json:"location"`
	Quantity int      `json:"quantity"`
}

// DraftTotals are the on-demand derived numbers for the current stop list.
// Distance, duration and cost are NOT part of this: those come exclusively
// from the optimization collaborator.
type DraftTotals struct {
	Stops          int `json:"stops"`
	Cylinders      int `json:"cylinders"`       // Sum of per-stop quantities.
	FullCylinders  int `json:"full_cylinders"`  // Quantities at storage stops (load).
	EmptyCylinders int `json:"empty_cylinders"` // Expected pickups at customer stops.
}

// RouteDraft is the in-progress, editable route of one planning session.
// Once LoadConfirmed is set the stop list and endpoints are immutable;
// only Reset may clear the flag.
type RouteDraft struct {
	Stops         []Stop    `json:"stops"`
	Start         *Location `json:"start,omitempty"`
	End           *Location `json:"end,omitempty"`
	LoadConfirmed bool      `json:"load_confirmed"`

	// Populated only by an optimization result and retained until the next
	// optimization or reset.
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	CostRand    float64 `json:"cost_rand"`
}

// NewRouteDraft creates an empty draft.
func NewRouteDraft() *RouteDraft {
	return &RouteDraft{Stops: []Stop{}}
}

// AddStop appends a stop to the draft. Adding a location that is already a
// stop updates its quantity instead of duplicating the entry.
func (d *RouteDraft) AddStop(location Location, quantity int) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}

	for i := range d.Stops {
		if d.Stops[i].Location.ID == location.ID {
			d.Stops[i].Quantity = quantity

			return nil
		}
	}

	d.Stops = append(d.Stops, Stop{Location: location, Quantity: quantity})

	return nil
}

// RemoveStop removes the stop for the given location id.
func (d *RouteDraft) RemoveStop(locationID uuid.UUID) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}

	for i := range d.Stops {
		if d.Stops[i].Location.ID == locationID {
			d.Stops = append(d.Stops[:i], d.Stops[i+1:]...)

			return nil
		}
	}

	return ErrStopNotFound
}

// MoveStop reorders the stop for the given location id to the target
// position. The position is clamped to the list bounds.
func (d *RouteDraft) MoveStop(locationID uuid.UUID, position int) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}

	from := -1
	for i := range d.Stops {
		if d.Stops[i].Location.ID == locationID {
			from = i

			break
		}
	}
	if from == -1 {
		return ErrStopNotFound
	}

	if position < 0 {
		position = 0
	}
	if position >= len(d.Stops) {
		position = len(d.Stops) - 1
	}

	stop := d.Stops[from]
	d.Stops = append(d.Stops[:from], d.Stops[from+1:]...)
	d.Stops = append(d.Stops[:position], append([]Stop{stop}, d.Stops[position:]...)...)

	return nil
}

// SetStart designates the route's starting location.
func (d *RouteDraft) SetStart(location Location) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}
	d.Start = &location

	return nil
}

// SetEnd designates the route's final location.
func (d *RouteDraft) SetEnd(location Location) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}
	d.End = &location

	return nil
}

// ApplyOptimization replaces the stop order and the derived metrics with an
// optimization result.
func (d *RouteDraft) ApplyOptimization(stops []Stop, distanceKm, durationMin, costRand float64) error {
	if d.LoadConfirmed {
		return ErrDraftFrozen
	}

	d.Stops = stops
	d.DistanceKm = distanceKm
	d.DurationMin = durationMin
	d.CostRand = costRand

	return nil
}

// ConfirmLoad freezes the draft. Confirming an already-confirmed draft is a
// no-op; the returned flag reports whether this call changed anything.
func (d *RouteDraft) ConfirmLoad() bool {
	if d.LoadConfirmed {
		return false
	}
	d.LoadConfirmed = true

	return true
}

// Reset clears all stops, endpoints, metrics and the confirmation flag.
func (d *RouteDraft) Reset() {
	d.Stops = []Stop{}
	d.Start = nil
	d.End = nil
	d.LoadConfirmed = false
	d.DistanceKm = 0
	d.DurationMin = 0
	d.CostRand = 0
}

// StopCount returns the number of stops in the draft.
func (d *RouteDraft) StopCount() int {
	return len(d.Stops)
}

// HasStop reports whether the location participates in the draft as a stop
// or a designated endpoint.
func (d *RouteDraft) HasStop(locationID uuid.UUID) bool {
	for i := range d.Stops {
		if d.Stops[i].Location.ID == locationID {
			return true
		}
	}
	if d.Start != nil && d.Start.ID == locationID {
		return true
	}
	if d.End != nil && d.End.ID == locationID {
		return true
	}

	return false
}

// OptimizeDisabled is the single source of truth for disabling the
// optimize control. It is derived on every call, never cached.
func (d *RouteDraft) OptimizeDisabled() bool {
	return len(d.Stops) < MinOptimizableStops || d.LoadConfirmed
}

// Totals recomputes the cylinder totals from the current stop list.
func (d *RouteDraft) Totals() DraftTotals {
	totals := DraftTotals{Stops: len(d.Stops)}
	for i := range d.Stops {
		stop := d.Stops[i]
		totals.Cylinders += stop.Quantity
		switch stop.Location.Category {
		case CategoryStorage:
			totals.FullCylinders += stop.Quantity
		case CategoryCustomer:
			totals.EmptyCylinders += stop.Location.EmptyCylinders
		}
	}

	return totals
}
