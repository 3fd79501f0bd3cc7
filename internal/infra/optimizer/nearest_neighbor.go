// Package optimizer implements the route optimization collaborator with a
// greedy nearest-neighbor ordering over haversine distances.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (e.g., VRP solvers); determinism
// and simplicity are preferred over optimality, and identical input always
// produces identical output.
package optimizer

import (
	"context"
	"math"

	"fleetops/config"
	"fleetops/internal/domain/entity"
	"fleetops/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// fallback defaults to keep optimization functional when config is missing/invalid
	defaultSpeedKmh    = 40.0
	defaultStopMinutes = 15.0
	defaultCostPerKm   = 7.50
)

type nearestNeighborOptimizer struct {
	averageSpeedKmh float64 // Average driving speed for duration estimation
	stopMinutes     float64 // Per-stop offload/load time allowance
	costPerKm       float64 // Operating cost per kilometer in rand
}

// NewNearestNeighborOptimizer creates a new optimizer instance.
func NewNearestNeighborOptimizer(cfg *config.Config) service.RouteOptimizer {
	opt := &nearestNeighborOptimizer{
		averageSpeedKmh: defaultSpeedKmh,
		stopMinutes:     defaultStopMinutes,
		costPerKm:       defaultCostPerKm,
	}

	if cfg.Optimizer != nil {
		if cfg.Optimizer.AverageSpeedKmh > 0 {
			opt.averageSpeedKmh = cfg.Optimizer.AverageSpeedKmh
		}
		if cfg.Optimizer.StopMinutes > 0 {
			opt.stopMinutes = cfg.Optimizer.StopMinutes
		}
		if cfg.Optimizer.CostPerKm > 0 {
			opt.costPerKm = cfg.Optimizer.CostPerKm
		}
	}

	return opt
}

// Optimize reorders the plan's stops greedily by nearest haversine distance
// and derives distance, duration, cost and cylinder totals.
func (o *nearestNeighborOptimizer) Optimize(ctx context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
	if plan == nil || len(plan.Stops) == 0 {
		return nil, errors.New("optimize: plan has no stops")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "optimize: canceled")
	}

	routable, unroutable := splitByCoordinates(plan.Stops)

	current, hasCurrent := startPoint(plan)

	ordered := make([]entity.Stop, 0, len(plan.Stops))
	totalKm := 0.0

	remaining := append([]entity.Stop(nil), routable...)
	for len(remaining) > 0 {
		best := 0
		if hasCurrent {
			bestDist := math.MaxFloat64
			for i, stop := range remaining {
				d := haversineKm(current.lat, current.lng, stop.Location.Latitude, stop.Location.Longitude)
				// Tie-breaker ensures deterministic ordering when distances are equal.
				if d < bestDist || (d == bestDist && lessStop(stop, remaining[best])) {
					bestDist = d
					best = i
				}
			}
			totalKm += haversineKm(current.lat, current.lng,
				remaining[best].Location.Latitude, remaining[best].Location.Longitude)
		}

		chosen := remaining[best]
		ordered = append(ordered, chosen)
		remaining = append(remaining[:best], remaining[best+1:]...)
		current = point{lat: chosen.Location.Latitude, lng: chosen.Location.Longitude}
		hasCurrent = true
	}

	// Stops without usable coordinates keep their original order at the tail.
	// They still count for the per-stop time allowance.
	ordered = append(ordered, unroutable...)

	if plan.End != nil && plan.End.HasValidCoordinates() && hasCurrent {
		totalKm += haversineKm(current.lat, current.lng, plan.End.Latitude, plan.End.Longitude)
	}

	drivingMinutes := (totalKm / o.averageSpeedKmh) * 60
	durationMin := drivingMinutes + o.stopMinutes*float64(len(plan.Stops))

	cylinders := 0
	for _, stop := range plan.Stops {
		cylinders += stop.Quantity
	}

	return &service.OptimizedRoute{
		Stops:       ordered,
		DistanceKm:  totalKm,
		DurationMin: durationMin,
		CostRand:    totalKm * o.costPerKm,
		Cylinders:   cylinders,
	}, nil
}

type point struct {
	lat, lng float64
}

func startPoint(plan *service.RoutePlan) (point, bool) {
	if plan.Start != nil && plan.Start.HasValidCoordinates() {
		return point{lat: plan.Start.Latitude, lng: plan.Start.Longitude}, true
	}

	return point{}, false
}

func splitByCoordinates(stops []entity.Stop) (routable, unroutable []entity.Stop) {
	routable = make([]entity.Stop, 0, len(stops))
	for _, stop := range stops {
		if stop.Location.HasValidCoordinates() {
			routable = append(routable, stop)
		} else {
			unroutable = append(unroutable, stop)
		}
	}

	return routable, unroutable
}

func lessStop(a, b entity.Stop) bool {
	if a.Location.Name != b.Location.Name {
		return a.Location.Name < b.Location.Name
	}

	return a.Location.ID.String() < b.Location.ID.String()
}

// haversineKm calculates the great circle distance between two points in kilometers.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
