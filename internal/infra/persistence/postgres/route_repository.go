package postgres

import (
	"context"
	"time"

	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/repository"
	"fleetops/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// FetchHistory retrieves routes whose route date falls inside [from, to] inclusive, newest first.
func (repo *routeRepository) FetchHistory(ctx context.Context, from, to time.Time) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel
	err := repo.db.WithContext(ctx).
		Where("route_date >= ? AND route_date <= ?", from, to).
		Order("route_date DESC").
		Find(&routeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch route history")
	}

	routes := make([]*entity.Route, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

// SaveRoute persists a route produced from a confirmed draft.
func (repo *routeRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRouteSaveFailed.WrapMessage("route already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRouteSaveFailed.WrapMessage("missing required route information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save route")
	}

	// Update the entity with generated values
	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

func toRouteDomain(m *model.RouteModel) *entity.Route {
	return &entity.Route{
		ID:          m.ID,
		Name:        m.Name,
		Country:     m.Country,
		Region:      m.Region,
		RouteDate:   m.RouteDate,
		Stops:       m.Stops,
		DistanceKm:  m.DistanceKm,
		DurationMin: m.DurationMin,
		CostRand:    m.CostRand,
		Cylinders:   m.Cylinders,
		Status:      entity.RouteStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromRouteDomain(r *entity.Route) *model.RouteModel {
	return &model.RouteModel{
		ID:          r.ID,
		Name:        r.Name,
		Country:     r.Country,
		Region:      r.Region,
		RouteDate:   r.RouteDate,
		Stops:       r.Stops,
		DistanceKm:  r.DistanceKm,
		DurationMin: r.DurationMin,
		CostRand:    r.CostRand,
		Cylinders:   r.Cylinders,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
