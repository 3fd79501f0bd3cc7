// Package service defines interfaces for core domain collaborators.
// These services encapsulate capabilities the workflow depends on without
// tying the domain to a concrete engine or backend.
package service

import (
	"context"

	"fleetops/internal/domain/entity"
)

// RoutePlan is the optimizer input: the draft's ordered stops, the
// designated endpoints and the region the plan belongs to.
type RoutePlan struct {
	Stops  []entity.Stop
	Start  *entity.Location
	End    *entity.Location
	Region entity.RegionSelection
}

// OptimizedRoute is the optimizer output. The stop list is the reordered
// input, never a different set of stops.
type OptimizedRoute struct {
	Stops       []entity.Stop
	DistanceKm  float64
	DurationMin float64
	CostRand    float64
	Cylinders   int
}

// RouteOptimizer computes an efficient stop ordering with distance,
// duration and cost estimates. Implementations must be idempotent: the
// same plan always yields the same result.
type RouteOptimizer interface {
	Optimize(ctx context.Context, plan *RoutePlan) (*OptimizedRoute, error)
}
