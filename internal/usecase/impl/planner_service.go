package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/geo"
	"fleetops/internal/domain/repository"
	"fleetops/internal/domain/service"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// plannerService owns the single active route draft and the workflow state
// around it. All draft access goes through mu; the optimizer and the route
// repository are called outside the lock, and a generation counter detects
// results that arrive after the draft they belonged to was discarded.
type plannerService struct {
	mu         sync.Mutex
	draft      *entity.RouteDraft
	state      usecase.WorkflowState
	generation uint64
	optimizing bool
	saving     bool
	region     entity.RegionSelection

	catalogUC usecase.CatalogUsecase
	regionUC  usecase.RegionUsecase
	optimizer service.RouteOptimizer
	routeRepo repository.RouteRepository
	logger    *slog.Logger
}

// NewPlannerService creates the workflow controller, subscribes it to region
// changes and registers its draft-reference guard on the catalog.
func NewPlannerService(
	catalogUC usecase.CatalogUsecase,
	regionUC usecase.RegionUsecase,
	optimizer service.RouteOptimizer,
	routeRepo repository.RouteRepository,
	logger *slog.Logger,
) usecase.PlannerUsecase {
	svc := &plannerService{
		draft:     entity.NewRouteDraft(),
		state:     usecase.StateCreating,
		region:    regionUC.Selection(),
		catalogUC: catalogUC,
		regionUC:  regionUC,
		optimizer: optimizer,
		routeRepo: routeRepo,
		logger:    logger,
	}

	regionUC.SubscribeRegionChanged(svc.onRegionChanged)
	catalogUC.RegisterReferenceGuard(svc.HasStop)

	return svc
}

// onRegionChanged retags the draft's region. The stop list is deliberately
// kept: switching regions mid-planning must not destroy work in progress.
func (s *plannerService) onRegionChanged(region entity.Region) {
	s.mu.Lock()
	s.region = entity.RegionSelection{Country: region.Country, Region: region.Name}
	stops := s.draft.StopCount()
	s.mu.Unlock()

	if stops > 0 {
		s.logger.Info("region changed with stops in draft; keeping them",
			slog.String("region", region.Name),
			slog.Int("stops", stops),
		)
	}
}

func (s *plannerService) AddStop(ctx context.Context, locationID uuid.UUID, quantity int) (*usecase.DraftSnapshot, error) {
	loc, err := s.catalogUC.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.AddStop(*loc, quantity); err != nil {
		return nil, domainerrors.ErrDraftFrozen
	}
	s.reconcileStateLocked()

	return s.snapshotLocked(), nil
}

func (s *plannerService) RemoveStop(_ context.Context, locationID uuid.UUID) (*usecase.DraftSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.RemoveStop(locationID); err != nil {
		return nil, mapDraftError(err, locationID)
	}
	s.reconcileStateLocked()

	return s.snapshotLocked(), nil
}

func (s *plannerService) MoveStop(_ context.Context, locationID uuid.UUID, position int) (*usecase.DraftSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.MoveStop(locationID, position); err != nil {
		return nil, mapDraftError(err, locationID)
	}
	s.reconcileStateLocked()

	return s.snapshotLocked(), nil
}

func (s *plannerService) SetStart(ctx context.Context, locationID uuid.UUID) (*usecase.DraftSnapshot, error) {
	return s.setEndpoint(ctx, locationID, (*entity.RouteDraft).SetStart)
}

func (s *plannerService) SetEnd(ctx context.Context, locationID uuid.UUID) (*usecase.DraftSnapshot, error) {
	return s.setEndpoint(ctx, locationID, (*entity.RouteDraft).SetEnd)
}

func (s *plannerService) setEndpoint(
	ctx context.Context,
	locationID uuid.UUID,
	assign func(*entity.RouteDraft, entity.Location) error,
) (*usecase.DraftSnapshot, error) {
	loc, err := s.catalogUC.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := assign(s.draft, *loc); err != nil {
		return nil, domainerrors.ErrDraftFrozen
	}

	return s.snapshotLocked(), nil
}

// Optimize sends the current stop list to the optimization collaborator and
// applies the result. Only one optimization may be in flight per draft, and
// a result for a draft that was discarded meanwhile is thrown away.
func (s *plannerService) Optimize(ctx context.Context) (*usecase.DraftSnapshot, error) {
	s.mu.Lock()
	if s.optimizing {
		s.mu.Unlock()

		return nil, domainerrors.ErrOptimizeInFlight
	}
	if s.draft.LoadConfirmed {
		s.mu.Unlock()

		return nil, domainerrors.ErrDraftFrozen
	}
	if s.draft.StopCount() < entity.MinOptimizableStops {
		s.mu.Unlock()

		return nil, domainerrors.ErrTooFewStops
	}

	gen := s.generation
	s.optimizing = true
	plan := &service.RoutePlan{
		Stops:  append([]entity.Stop(nil), s.draft.Stops...),
		Start:  cloneLocation(s.draft.Start),
		End:    cloneLocation(s.draft.End),
		Region: s.region,
	}
	s.mu.Unlock()

	result, err := s.optimizer.Optimize(ctx, plan)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimizing = false

	if err != nil {
		s.logger.Error("route optimization failed", slog.Any("error", err))

		return nil, domainerrors.ErrOptimizationFailed.WithDetails(err.Error())
	}
	if s.generation != gen {
		s.logger.Warn("discarding optimization result for a discarded draft")

		return nil, domainerrors.ErrStaleResult
	}

	if err := s.draft.ApplyOptimization(result.Stops, result.DistanceKm, result.DurationMin, result.CostRand); err != nil {
		return nil, domainerrors.ErrDraftFrozen
	}
	s.state = usecase.StateOptimized

	return s.snapshotLocked(), nil
}

// ConfirmLoad freezes the draft. Only legal from the optimized state;
// confirming an already-confirmed draft changes nothing and succeeds.
func (s *plannerService) ConfirmLoad() (*usecase.DraftSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.LoadConfirmed {
		return s.snapshotLocked(), nil
	}
	if s.state != usecase.StateOptimized {
		return nil, domainerrors.ErrNotOptimized
	}

	s.draft.ConfirmLoad()
	s.state = usecase.StateLoadConfirmed

	return s.snapshotLocked(), nil
}

// Save persists the confirmed draft as a route record. Like Optimize it
// runs the slow part outside the lock and refuses to advance the workflow
// when the draft was discarded while the write was in flight.
func (s *plannerService) Save(ctx context.Context, name string, routeDate time.Time) (*entity.Route, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()

		return nil, domainerrors.ErrSaveInFlight
	}
	if !s.draft.LoadConfirmed {
		s.mu.Unlock()

		return nil, domainerrors.ErrLoadNotConfirmed
	}

	gen := s.generation
	s.saving = true

	if routeDate.IsZero() {
		routeDate = time.Now()
	}
	if name == "" {
		name = "Route " + routeDate.Format("2006-01-02")
	}

	totals := s.draft.Totals()
	route := &entity.Route{
		Name:        name,
		Country:     s.region.Country,
		Region:      s.region.Region,
		RouteDate:   routeDate,
		Stops:       totals.Stops,
		DistanceKm:  s.draft.DistanceKm,
		DurationMin: s.draft.DurationMin,
		CostRand:    s.draft.CostRand,
		Cylinders:   totals.Cylinders,
		Status:      entity.RouteStatusPlanned,
	}
	s.mu.Unlock()

	err := s.routeRepo.SaveRoute(ctx, route)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false

	if err != nil {
		s.logger.Error("failed to persist route",
			slog.String("name", name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrRouteSaveFailed.WithDetails(err.Error())
	}
	if s.generation != gen {
		s.logger.Warn("route persisted but its draft was discarded meanwhile",
			slog.String("route_id", route.ID.String()),
		)

		return nil, domainerrors.ErrStaleResult
	}

	s.state = usecase.StatePersisted
	s.logger.Info("route persisted",
		slog.String("route_id", route.ID.String()),
		slog.String("name", route.Name),
		slog.Int("stops", route.Stops),
	)

	return route, nil
}

// NewRoute discards the draft unconditionally, even when it is confirmed or
// persisted, and bumps the generation so in-flight results get dropped.
func (s *plannerService) NewRoute() *usecase.DraftSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.draft.Reset()
	s.state = usecase.StateCreating

	return s.snapshotLocked()
}

func (s *plannerService) Snapshot() *usecase.DraftSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// MapFrame frames the map around the draft's locations. With an empty draft
// it falls back to the catalog's visible locations, and failing that to the
// active region's predefined center and zoom.
func (s *plannerService) MapFrame(ctx context.Context) (geo.Frame, error) {
	s.mu.Lock()
	points := make([]orb.Point, 0, s.draft.StopCount()+2)
	if s.draft.Start != nil {
		points = append(points, geo.LocationPoint(*s.draft.Start))
	}
	for i := range s.draft.Stops {
		points = append(points, geo.LocationPoint(s.draft.Stops[i].Location))
	}
	if s.draft.End != nil {
		points = append(points, geo.LocationPoint(*s.draft.End))
	}
	s.mu.Unlock()

	if len(points) == 0 {
		locations, err := s.catalogUC.List(ctx)
		if err != nil {
			s.logger.Warn("framing without catalog locations", slog.Any("error", err))
		}
		for _, loc := range locations {
			points = append(points, geo.LocationPoint(*loc))
		}
	}

	fallback, ok := s.regionUC.ActiveRegion()
	if !ok {
		fallback = entity.Region{DefaultZoom: geo.DefaultZoom}
	}

	return geo.ComputeFrame(points, fallback), nil
}

// HasStop reports whether the location participates in the active draft.
// The catalog consults it before deleting a location.
func (s *plannerService) HasStop(locationID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft.HasStop(locationID)
}

// reconcileStateLocked keeps the informational states in step with the stop
// list after a mutation. A mutated stop list invalidates a previous
// optimization result's ordering, so optimized falls back to
// locations_selected.
func (s *plannerService) reconcileStateLocked() {
	switch {
	case s.draft.StopCount() == 0:
		s.state = usecase.StateCreating
	case s.state == usecase.StateCreating || s.state == usecase.StateOptimized:
		s.state = usecase.StateLocationsSelected
	}
}

func (s *plannerService) snapshotLocked() *usecase.DraftSnapshot {
	return &usecase.DraftSnapshot{
		State:              s.state,
		Stops:              append([]entity.Stop(nil), s.draft.Stops...),
		Start:              cloneLocation(s.draft.Start),
		End:                cloneLocation(s.draft.End),
		LoadConfirmed:      s.draft.LoadConfirmed,
		DistanceKm:         s.draft.DistanceKm,
		DurationMin:        s.draft.DurationMin,
		CostRand:           s.draft.CostRand,
		Totals:             s.draft.Totals(),
		Region:             s.region,
		IsOptimizeDisabled: s.draft.OptimizeDisabled(),
	}
}

func cloneLocation(loc *entity.Location) *entity.Location {
	if loc == nil {
		return nil
	}
	clone := *loc

	return &clone
}

func mapDraftError(err error, locationID uuid.UUID) error {
	switch err {
	case entity.ErrDraftFrozen:
		return domainerrors.ErrDraftFrozen
	case entity.ErrStopNotFound:
		return domainerrors.ErrLocationNotFound.WithDetails(locationID.String())
	default:
		return err
	}
}
