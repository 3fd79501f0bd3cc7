package optimizer

import (
	"context"
	"testing"

	"fleetops/config"
	"fleetops/internal/domain/entity"
	"fleetops/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stopAt(name string, lat, lng float64, quantity int) entity.Stop {
	return entity.Stop{
		Location: entity.Location{
			ID:        uuid.New(),
			Name:      name,
			Latitude:  lat,
			Longitude: lng,
			Category:  entity.CategoryCustomer,
		},
		Quantity: quantity,
	}
}

func newTestOptimizer() service.RouteOptimizer {
	return NewNearestNeighborOptimizer(&config.Config{
		Optimizer: &config.OptimizerConfig{
			AverageSpeedKmh: 40,
			StopMinutes:     15,
			CostPerKm:       10,
		},
	})
}

func TestOptimize_OrdersStopsByNearestNeighbor(t *testing.T) {
	opt := newTestOptimizer()

	depot := entity.Location{ID: uuid.New(), Name: "Depot", Latitude: -26.0, Longitude: 28.0}
	near := stopAt("Near", -26.05, 28.0, 5)
	mid := stopAt("Mid", -26.20, 28.0, 3)
	far := stopAt("Far", -26.40, 28.0, 2)

	// Deliberately scrambled input order.
	plan := &service.RoutePlan{
		Stops: []entity.Stop{far, near, mid},
		Start: &depot,
	}

	result, err := opt.Optimize(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, result.Stops, 3)

	assert.Equal(t, "Near", result.Stops[0].Location.Name)
	assert.Equal(t, "Mid", result.Stops[1].Location.Name)
	assert.Equal(t, "Far", result.Stops[2].Location.Name)

	// Depot -> Far is ~44.5km straight down one meridian.
	assert.InDelta(t, 44.5, result.DistanceKm, 0.5)
	assert.InDelta(t, result.DistanceKm/40*60+3*15, result.DurationMin, 0.01)
	assert.InDelta(t, result.DistanceKm*10, result.CostRand, 0.01)
	assert.Equal(t, 10, result.Cylinders)
}

func TestOptimize_IsIdempotent(t *testing.T) {
	opt := newTestOptimizer()

	depot := entity.Location{ID: uuid.New(), Name: "Depot", Latitude: -26.0, Longitude: 28.0}
	plan := &service.RoutePlan{
		Stops: []entity.Stop{
			stopAt("A", -26.1, 28.1, 1),
			stopAt("B", -26.2, 27.9, 2),
			stopAt("C", -25.9, 28.2, 3),
		},
		Start: &depot,
	}

	first, err := opt.Optimize(context.Background(), plan)
	require.NoError(t, err)
	second, err := opt.Optimize(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimize_KeepsUngecodedStopsAtTail(t *testing.T) {
	opt := newTestOptimizer()

	depot := entity.Location{ID: uuid.New(), Name: "Depot", Latitude: -26.0, Longitude: 28.0}
	ungeocoded := stopAt("No coords", 0, 0, 4)
	plan := &service.RoutePlan{
		Stops: []entity.Stop{
			ungeocoded,
			stopAt("A", -26.1, 28.0, 1),
			stopAt("B", -26.2, 28.0, 2),
		},
		Start: &depot,
	}

	result, err := opt.Optimize(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, result.Stops, 3)
	assert.Equal(t, "No coords", result.Stops[2].Location.Name)
	// Per-stop time allowance still counts the ungeocoded stop.
	assert.InDelta(t, result.DistanceKm/40*60+3*15, result.DurationMin, 0.01)
}

func TestOptimize_EmptyPlanRejected(t *testing.T) {
	opt := newTestOptimizer()

	_, err := opt.Optimize(context.Background(), &service.RoutePlan{})
	assert.Error(t, err)
}
