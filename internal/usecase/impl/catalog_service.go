package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/repository"
	"fleetops/internal/errors"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	mu        sync.RWMutex
	locations map[uuid.UUID]*entity.Location
	loaded    bool
	scope     entity.RegionSelection
	guards    []usecase.ReferenceGuard

	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// NewCatalogService creates the location catalog. It subscribes to region
// changes so listing stays scoped to the active region without consulting
// the selector on every read.
func NewCatalogService(
	locationRepo repository.LocationRepository,
	regionUC usecase.RegionUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	svc := &catalogService{
		locations:    make(map[uuid.UUID]*entity.Location),
		scope:        regionUC.Selection(),
		locationRepo: locationRepo,
		logger:       logger,
	}

	regionUC.SubscribeRegionChanged(func(region entity.Region) {
		svc.mu.Lock()
		svc.scope = entity.RegionSelection{Country: region.Country, Region: region.Name}
		svc.mu.Unlock()

		svc.logger.Debug("catalog scope updated",
			slog.String("country", region.Country),
			slog.String("region", region.Name),
		)
	})

	return svc
}

// Refresh reloads the full location set from persistence, replacing the
// in-memory cache wholesale.
func (s *catalogService) Refresh(ctx context.Context) error {
	fetched, err := s.locationRepo.FetchAll(ctx, repository.LocationScope{})
	if err != nil {
		s.logger.Error("failed to load location catalog", slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "load location catalog")
	}

	locations := make(map[uuid.UUID]*entity.Location, len(fetched))
	for _, loc := range fetched {
		locations[loc.ID] = loc
	}

	s.mu.Lock()
	s.locations = locations
	s.loaded = true
	s.mu.Unlock()

	return nil
}

func (s *catalogService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	return s.Refresh(ctx)
}

// List returns the locations visible in the active region, sorted by name.
// Locations without a region tag are visible everywhere.
func (s *catalogService) List(ctx context.Context) ([]*entity.Location, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	scope := s.scope
	out := make([]*entity.Location, 0, len(s.locations))
	for _, loc := range s.locations {
		if scope.IsZero() || loc.InRegion(scope.Country, scope.Region) {
			out = append(out, loc)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}

		return out[i].ID.String() < out[j].ID.String()
	})

	return out, nil
}

// Search filters List by case-insensitive substring match on name and address.
func (s *catalogService) Search(ctx context.Context, term string) ([]*entity.Location, error) {
	listed, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return listed, nil
	}

	out := make([]*entity.Location, 0, len(listed))
	for _, loc := range listed {
		if strings.Contains(strings.ToLower(loc.Name), term) ||
			strings.Contains(strings.ToLower(loc.Address), term) {
			out = append(out, loc)
		}
	}

	return out, nil
}

// Get resolves a location by id from the full set, ignoring the region scope.
func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	loc, ok := s.locations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrLocationNotFound.WithDetails(id.String())
	}

	return loc, nil
}

// Add persists a new location and, only on success, commits it to the
// in-memory set.
func (s *catalogService) Add(ctx context.Context, input *usecase.AddLocationInput) (*entity.Location, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	loc := &entity.Location{
		ID:             uuid.New(),
		Name:           input.Name,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Category:       input.Category,
		FullCylinders:  input.FullCylinders,
		EmptyCylinders: input.EmptyCylinders,
		OperatingHours: input.OperatingHours,
		Country:        input.Country,
		Region:         input.Region,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.locationRepo.Save(ctx, loc); err != nil {
		s.logger.Error("failed to save location",
			slog.String("name", input.Name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrLocationSaveFailed.WithDetails(err.Error())
	}

	s.mu.Lock()
	s.locations[loc.ID] = loc
	s.mu.Unlock()

	return loc, nil
}

// Update merges the non-nil patch fields into a copy of the stored location,
// persists the copy, and only then replaces the in-memory entry.
func (s *catalogService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patched := *existing
	applyLocationPatch(&patched, input)
	patched.UpdatedAt = time.Now()

	if err := s.locationRepo.Save(ctx, &patched); err != nil {
		s.logger.Error("failed to update location",
			slog.String("location_id", id.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrLocationSaveFailed.WithDetails(err.Error())
	}

	s.mu.Lock()
	s.locations[id] = &patched
	s.mu.Unlock()

	return &patched, nil
}

// Remove deletes a location permanently. Removing an id that is not in the
// set is a no-op; removing a location referenced by the active draft is
// refused.
func (s *catalogService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	_, exists := s.locations[id]
	guards := make([]usecase.ReferenceGuard, len(s.guards))
	copy(guards, s.guards)
	s.mu.RUnlock()

	if !exists {
		return nil
	}

	for _, guard := range guards {
		if guard(id) {
			return domainerrors.ErrLocationInUse.WithDetails(id.String())
		}
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
		s.logger.Error("failed to delete location",
			slog.String("location_id", id.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrLocationDeleteFailed.WithDetails(err.Error())
	}

	s.mu.Lock()
	delete(s.locations, id)
	s.mu.Unlock()

	return nil
}

// RegisterReferenceGuard wires a draft-reference check consulted by Remove.
func (s *catalogService) RegisterReferenceGuard(guard usecase.ReferenceGuard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guards = append(s.guards, guard)
}

func applyLocationPatch(loc *entity.Location, input *usecase.UpdateLocationInput) {
	if input.Name != nil {
		loc.Name = *input.Name
	}
	if input.Address != nil {
		loc.Address = *input.Address
	}
	if input.Latitude != nil {
		loc.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		loc.Longitude = *input.Longitude
	}
	if input.Category != nil {
		loc.Category = *input.Category
	}
	if input.FullCylinders != nil {
		loc.FullCylinders = *input.FullCylinders
	}
	if input.EmptyCylinders != nil {
		loc.EmptyCylinders = *input.EmptyCylinders
	}
	if input.OperatingHours != nil {
		loc.OperatingHours = *input.OperatingHours
	}
	if input.Country != nil {
		loc.Country = *input.Country
	}
	if input.Region != nil {
		loc.Region = *input.Region
	}
}
