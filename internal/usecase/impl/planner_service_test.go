package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fleetops/config"
	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/repository"
	"fleetops/internal/domain/service"
	"fleetops/internal/errors"
	mocksRepo "fleetops/internal/mocks/repository"
	mocksSvc "fleetops/internal/mocks/service"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerFixture struct {
	planner      usecase.PlannerUsecase
	catalog      usecase.CatalogUsecase
	regions      usecase.RegionUsecase
	locationRepo *mocksRepo.MockLocationRepository
	routeRepo    *mocksRepo.MockRouteRepository
	optimizer    *mocksSvc.MockRouteOptimizer
}

func newPlannerFixture(t *testing.T, locations []*entity.Location) *plannerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	locationRepo := mocksRepo.NewMockLocationRepository(t)
	locationRepo.EXPECT().FetchAll(mock.Anything, repository.LocationScope{}).Return(locations, nil).Maybe()

	routeRepo := mocksRepo.NewMockRouteRepository(t)
	optimizer := mocksSvc.NewMockRouteOptimizer(t)

	regions := NewRegionService(&config.Config{}, logger)
	catalog := NewCatalogService(locationRepo, regions, logger)
	planner := NewPlannerService(catalog, regions, optimizer, routeRepo, logger)

	return &plannerFixture{
		planner:      planner,
		catalog:      catalog,
		regions:      regions,
		locationRepo: locationRepo,
		routeRepo:    routeRepo,
		optimizer:    optimizer,
	}
}

func makeTestLocation(name string, lat, lng float64) *entity.Location {
	return &entity.Location{
		ID:        uuid.New(),
		Name:      name,
		Address:   name + " Street",
		Latitude:  lat,
		Longitude: lng,
		Category:  entity.CategoryCustomer,
	}
}

func threeTestLocations() []*entity.Location {
	return []*entity.Location{
		makeTestLocation("Alpha", -26.20, 28.04),
		makeTestLocation("Bravo", -26.25, 28.10),
		makeTestLocation("Charlie", -26.30, 28.20),
	}
}

func addAll(t *testing.T, fx *plannerFixture, locations []*entity.Location) *usecase.DraftSnapshot {
	t.Helper()

	ctx := context.Background()
	var snap *usecase.DraftSnapshot
	var err error
	for _, loc := range locations {
		snap, err = fx.planner.AddStop(ctx, loc.ID, 5)
		require.NoError(t, err)
	}

	return snap
}

func optimizedResult(stops []entity.Stop) *service.OptimizedRoute {
	return &service.OptimizedRoute{
		Stops:       stops,
		DistanceKm:  42.5,
		DurationMin: 110,
		CostRand:    318.75,
		Cylinders:   15,
	}
}

func TestPlannerOptimizeDisabledDerivation(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	snap := fx.planner.Snapshot()
	assert.True(t, snap.IsOptimizeDisabled)
	assert.Equal(t, usecase.StateCreating, snap.State)

	snap, err := fx.planner.AddStop(ctx, locations[0].ID, 4)
	require.NoError(t, err)
	assert.True(t, snap.IsOptimizeDisabled)
	assert.Equal(t, usecase.StateLocationsSelected, snap.State)

	snap, err = fx.planner.AddStop(ctx, locations[1].ID, 4)
	require.NoError(t, err)
	assert.True(t, snap.IsOptimizeDisabled)

	snap, err = fx.planner.AddStop(ctx, locations[2].ID, 4)
	require.NoError(t, err)
	assert.False(t, snap.IsOptimizeDisabled)

	// Dropping back under the minimum disables the control again.
	snap, err = fx.planner.RemoveStop(ctx, locations[2].ID)
	require.NoError(t, err)
	assert.True(t, snap.IsOptimizeDisabled)
}

func TestPlannerOptimizeRejectsTooFewStops(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations[:2])

	snap, err := fx.planner.Optimize(ctx)
	require.ErrorIs(t, err, domainerrors.ErrTooFewStops)
	assert.Nil(t, snap)

	// The draft is untouched and the collaborator was never called.
	current := fx.planner.Snapshot()
	assert.Len(t, current.Stops, 2)
	assert.Zero(t, current.DistanceKm)
	fx.optimizer.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestPlannerOptimizeAppliesResult(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)

	reordered := []entity.Stop{
		{Location: *locations[2], Quantity: 5},
		{Location: *locations[1], Quantity: 5},
		{Location: *locations[0], Quantity: 5},
	}
	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).Return(optimizedResult(reordered), nil).Once()

	snap, err := fx.planner.Optimize(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateOptimized, snap.State)
	assert.Equal(t, "Charlie", snap.Stops[0].Location.Name)
	assert.InDelta(t, 42.5, snap.DistanceKm, 0.001)
	assert.InDelta(t, 110, snap.DurationMin, 0.001)
	assert.InDelta(t, 318.75, snap.CostRand, 0.001)
	assert.False(t, snap.IsOptimizeDisabled)
}

func TestPlannerOptimizeFailureLeavesDraftUnchanged(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	before := addAll(t, fx, locations)

	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		Return(nil, errors.New("engine unavailable")).Once()

	snap, err := fx.planner.Optimize(ctx)
	assert.Nil(t, snap)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOptimizationFailed.ErrorCode(), appErr.ErrorCode())

	after := fx.planner.Snapshot()
	assert.Equal(t, before.Stops, after.Stops)
	assert.Zero(t, after.DistanceKm)
	assert.Equal(t, usecase.StateLocationsSelected, after.State)
}

func TestPlannerOptimizeInFlightRefused(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)

	started := make(chan struct{})
	release := make(chan struct{})
	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			close(started)
			<-release

			return optimizedResult(plan.Stops), nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.planner.Optimize(ctx)
		done <- err
	}()

	<-started
	_, err := fx.planner.Optimize(ctx)
	require.ErrorIs(t, err, domainerrors.ErrOptimizeInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, usecase.StateOptimized, fx.planner.Snapshot().State)
}

func TestPlannerStaleOptimizationDiscarded(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)

	// The draft is discarded while the optimizer is still running; its
	// result must not resurrect the old stops.
	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			fx.planner.NewRoute()

			return optimizedResult(plan.Stops), nil
		}).Once()

	snap, err := fx.planner.Optimize(ctx)
	require.ErrorIs(t, err, domainerrors.ErrStaleResult)
	assert.Nil(t, snap)

	current := fx.planner.Snapshot()
	assert.Equal(t, usecase.StateCreating, current.State)
	assert.Empty(t, current.Stops)
	assert.Zero(t, current.DistanceKm)
}

func TestPlannerConfirmLoadIdempotent(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)
	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			return optimizedResult(plan.Stops), nil
		}).Once()

	_, err := fx.planner.Optimize(ctx)
	require.NoError(t, err)

	first, err := fx.planner.ConfirmLoad()
	require.NoError(t, err)
	assert.True(t, first.LoadConfirmed)
	assert.True(t, first.IsOptimizeDisabled)
	assert.Equal(t, usecase.StateLoadConfirmed, first.State)

	second, err := fx.planner.ConfirmLoad()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlannerConfirmLoadRequiresOptimized(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)

	addAll(t, fx, locations)

	snap, err := fx.planner.ConfirmLoad()
	require.ErrorIs(t, err, domainerrors.ErrNotOptimized)
	assert.Nil(t, snap)
}

func TestPlannerFrozenDraftRejectsMutation(t *testing.T) {
	t.Parallel()

	spare := makeTestLocation("Delta", -26.35, 28.30)
	stops := threeTestLocations()
	fx := newPlannerFixture(t, append(stops, spare))
	ctx := context.Background()

	addAll(t, fx, stops)

	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			return optimizedResult(plan.Stops), nil
		}).Once()
	_, err := fx.planner.Optimize(ctx)
	require.NoError(t, err)
	_, err = fx.planner.ConfirmLoad()
	require.NoError(t, err)

	_, err = fx.planner.AddStop(ctx, spare.ID, 2)
	require.ErrorIs(t, err, domainerrors.ErrDraftFrozen)

	_, err = fx.planner.RemoveStop(ctx, stops[0].ID)
	require.ErrorIs(t, err, domainerrors.ErrDraftFrozen)

	_, err = fx.planner.Optimize(ctx)
	require.ErrorIs(t, err, domainerrors.ErrDraftFrozen)
}

func TestPlannerSaveRequiresConfirmedLoad(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)

	route, err := fx.planner.Save(ctx, "Gauteng run", time.Now())
	require.ErrorIs(t, err, domainerrors.ErrLoadNotConfirmed)
	assert.Nil(t, route)
}

func TestPlannerSavePersistsRoute(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	_, err := fx.regions.Select("South Africa", "Gauteng")
	require.NoError(t, err)

	addAll(t, fx, locations)
	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			return optimizedResult(plan.Stops), nil
		}).Once()
	_, err = fx.planner.Optimize(ctx)
	require.NoError(t, err)
	_, err = fx.planner.ConfirmLoad()
	require.NoError(t, err)

	fx.routeRepo.EXPECT().SaveRoute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, route *entity.Route) error {
			route.ID = uuid.New()
			route.CreatedAt = time.Now()
			route.UpdatedAt = route.CreatedAt

			return nil
		}).Once()

	routeDate := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	route, err := fx.planner.Save(ctx, "Gauteng run", routeDate)
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.NotEqual(t, uuid.Nil, route.ID)
	assert.Equal(t, "Gauteng run", route.Name)
	assert.Equal(t, "South Africa", route.Country)
	assert.Equal(t, "Gauteng", route.Region)
	assert.Equal(t, 3, route.Stops)
	assert.Equal(t, 15, route.Cylinders)
	assert.InDelta(t, 42.5, route.DistanceKm, 0.001)
	assert.Equal(t, entity.RouteStatusPlanned, route.Status)

	assert.Equal(t, usecase.StatePersisted, fx.planner.Snapshot().State)
}

func TestPlannerNewRouteResetsEverything(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)
	_, err := fx.planner.SetStart(ctx, locations[0].ID)
	require.NoError(t, err)

	fx.optimizer.EXPECT().Optimize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan *service.RoutePlan) (*service.OptimizedRoute, error) {
			return optimizedResult(plan.Stops), nil
		}).Once()
	_, err = fx.planner.Optimize(ctx)
	require.NoError(t, err)
	_, err = fx.planner.ConfirmLoad()
	require.NoError(t, err)

	snap := fx.planner.NewRoute()
	assert.Equal(t, usecase.StateCreating, snap.State)
	assert.Empty(t, snap.Stops)
	assert.Nil(t, snap.Start)
	assert.Nil(t, snap.End)
	assert.False(t, snap.LoadConfirmed)
	assert.Zero(t, snap.DistanceKm)
	assert.Zero(t, snap.DurationMin)
	assert.Zero(t, snap.CostRand)
	assert.True(t, snap.IsOptimizeDisabled)
}

func TestPlannerRegionChangeKeepsDraft(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)

	addAll(t, fx, locations)

	_, err := fx.regions.Select("South Africa", "Western Cape")
	require.NoError(t, err)

	snap := fx.planner.Snapshot()
	assert.Len(t, snap.Stops, 3)
	assert.Equal(t, "Western Cape", snap.Region.Region)
}

func TestPlannerGuardBlocksCatalogDelete(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations[:1])

	err := fx.catalog.Remove(ctx, locations[0].ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLocationInUse.ErrorCode(), appErr.ErrorCode())

	// Dropping the stop releases the guard.
	_, err = fx.planner.RemoveStop(ctx, locations[0].ID)
	require.NoError(t, err)

	fx.locationRepo.EXPECT().Delete(mock.Anything, locations[0].ID).Return(nil).Once()
	require.NoError(t, fx.catalog.Remove(ctx, locations[0].ID))
}

func TestPlannerMoveStopClampsPosition(t *testing.T) {
	t.Parallel()

	locations := threeTestLocations()
	fx := newPlannerFixture(t, locations)
	ctx := context.Background()

	addAll(t, fx, locations)

	snap, err := fx.planner.MoveStop(ctx, locations[0].ID, 99)
	require.NoError(t, err)
	assert.Equal(t, locations[0].ID, snap.Stops[2].Location.ID)

	snap, err = fx.planner.MoveStop(ctx, locations[0].ID, -5)
	require.NoError(t, err)
	assert.Equal(t, locations[0].ID, snap.Stops[0].Location.ID)
}

func TestPlannerMapFrameFallsBackToRegion(t *testing.T) {
	t.Parallel()

	fx := newPlannerFixture(t, nil)
	ctx := context.Background()

	_, err := fx.regions.Select("South Africa", "Gauteng")
	require.NoError(t, err)

	frame, err := fx.planner.MapFrame(ctx)
	require.NoError(t, err)
	assert.False(t, frame.HasBound)
	assert.Equal(t, 10, frame.Zoom)
	assert.InDelta(t, -26.2041, frame.Center.Lat(), 0.0001)
	assert.InDelta(t, 28.0473, frame.Center.Lon(), 0.0001)
}

func TestPlannerMapFrameCentersOnStops(t *testing.T) {
	t.Parallel()

	a := makeTestLocation("North", -26.0, 28.0)
	b := makeTestLocation("South", -27.0, 29.0)
	fx := newPlannerFixture(t, []*entity.Location{a, b})
	ctx := context.Background()

	_, err := fx.planner.AddStop(ctx, a.ID, 1)
	require.NoError(t, err)
	_, err = fx.planner.AddStop(ctx, b.ID, 1)
	require.NoError(t, err)

	frame, err := fx.planner.MapFrame(ctx)
	require.NoError(t, err)
	assert.True(t, frame.HasBound)
	assert.InDelta(t, -26.5, frame.Center.Lat(), 0.0001)
	assert.InDelta(t, 28.5, frame.Center.Lon(), 0.0001)
}
