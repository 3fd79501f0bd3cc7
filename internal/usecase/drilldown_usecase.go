package usecase

import (
	"context"
	"time"

	"fleetops/internal/domain/entity"
	"fleetops/internal/errors"

	"github.com/google/uuid"
)

// DrilldownKind selects which historical view to build.
type DrilldownKind string

const (
	// KindDeliveries shows delivery counts per route.
	KindDeliveries DrilldownKind = "deliveries"
	// KindFuel shows estimated fuel cost per route.
	KindFuel DrilldownKind = "fuel"
	// KindRoute shows distance/duration per route.
	KindRoute DrilldownKind = "route"
	// KindCylinders shows cylinder totals per route.
	KindCylinders DrilldownKind = "cylinders"
)

// ErrUnknownDrilldownKind is returned for unrecognized kind strings.
var ErrUnknownDrilldownKind = errors.New("unknown drilldown kind")

// ParseDrilldownKind validates a kind string.
func ParseDrilldownKind(s string) (DrilldownKind, error) {
	switch DrilldownKind(s) {
	case KindDeliveries, KindFuel, KindRoute, KindCylinders:
		return DrilldownKind(s), nil
	default:
		return "", ErrUnknownDrilldownKind
	}
}

// DetailRecord is the read-only projection of a historical route shown in
// a drilldown. It is recomputed on every open and never persisted.
type DetailRecord struct {
	ID              uuid.UUID          `json:"id"`
	DisplayName     string             `json:"display_name"`
	FormattedDate   string             `json:"formatted_date"`
	Date            time.Time          `json:"date"`
	DistanceKm      float64            `json:"distance_km"`
	DurationMin     float64            `json:"duration_min"`
	DurationDerived bool               `json:"duration_derived"` // True when the duration was estimated, not stored.
	CostRand        float64            `json:"cost_rand"`
	Cylinders       int                `json:"cylinders"`
	Status          entity.RouteStatus `json:"status"`
}

// DrilldownUsecase defines the interface for read-only history views.
type DrilldownUsecase interface {
	// Show fetches routes from the last sinceDays days (inclusive), newest
	// first, deriving a display duration where none was stored.
	Show(ctx context.Context, kind DrilldownKind, sinceDays int) ([]DetailRecord, error)

	// Export flattens the same records and hands them to the export
	// collaborator under the given title.
	Export(ctx context.Context, kind DrilldownKind, sinceDays int, title string) error
}
