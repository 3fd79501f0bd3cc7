package repository

import (
	"context"
	"time"

	"fleetops/internal/domain/entity"
)

// RouteRepository defines the interface for persisted-route operations.
type RouteRepository interface {
	// FetchHistory retrieves routes whose route date falls inside
	// [from, to] inclusive, newest first.
	FetchHistory(ctx context.Context, from, to time.Time) ([]*entity.Route, error)

	// SaveRoute persists a route produced from a confirmed draft and fills
	// in generated fields (id, timestamps) on success.
	SaveRoute(ctx context.Context, route *entity.Route) error
}
