// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"log/slog"
	"sync"

	"fleetops/config"
	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/usecase"
)

// defaultRegions is the built-in closed set used when no regions are
// configured: the South African provinces the fleet operates in.
var defaultRegions = []entity.Region{
	{Country: "South Africa", Name: "Gauteng", CenterLat: -26.2041, CenterLng: 28.0473, DefaultZoom: 10},
	{Country: "South Africa", Name: "Western Cape", CenterLat: -33.9249, CenterLng: 18.4241, DefaultZoom: 10},
	{Country: "South Africa", Name: "KwaZulu-Natal", CenterLat: -29.8587, CenterLng: 31.0218, DefaultZoom: 10},
	{Country: "South Africa", Name: "Eastern Cape", CenterLat: -33.0292, CenterLng: 27.8546, DefaultZoom: 9},
	{Country: "South Africa", Name: "Free State", CenterLat: -29.0852, CenterLng: 26.1596, DefaultZoom: 9},
	{Country: "South Africa", Name: "Mpumalanga", CenterLat: -25.4658, CenterLng: 30.9853, DefaultZoom: 9},
}

type regionService struct {
	mu         sync.RWMutex
	regions    []entity.Region
	selection  entity.RegionSelection
	promptOpen bool
	hooks      []usecase.RegionChangedHook

	logger *slog.Logger
}

// NewRegionService creates a new region selector instance.
func NewRegionService(cfg *config.Config, logger *slog.Logger) usecase.RegionUsecase {
	regions := defaultRegions
	if cfg.Planner != nil && len(cfg.Planner.Regions) > 0 {
		regions = make([]entity.Region, 0, len(cfg.Planner.Regions))
		for _, rc := range cfg.Planner.Regions {
			regions = append(regions, entity.Region{
				Country:     rc.Country,
				Name:        rc.Name,
				CenterLat:   rc.CenterLat,
				CenterLng:   rc.CenterLng,
				DefaultZoom: rc.DefaultZoom,
			})
		}
	}

	return &regionService{
		regions: regions,
		logger:  logger,
	}
}

// Regions returns the closed set of selectable regions.
func (s *regionService) Regions() []entity.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Region, len(s.regions))
	copy(out, s.regions)

	return out
}

// Selection returns the active country/region choice.
func (s *regionService) Selection() entity.RegionSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selection
}

// ActiveRegion resolves the active selection to its region entry.
func (s *regionService) ActiveRegion() (entity.Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findLocked(s.selection.Country, s.selection.Region)
}

// Select sets the active region and closes the prompt. Hooks registered
// via SubscribeRegionChanged run synchronously, in registration order,
// after the new selection is committed.
func (s *regionService) Select(country, region string) (entity.Region, error) {
	s.mu.Lock()
	matched, ok := s.findLocked(country, region)
	if !ok {
		s.mu.Unlock()

		return entity.Region{}, domainerrors.ErrRegionUnknown.WithDetails(country + "/" + region)
	}

	s.selection = entity.RegionSelection{Country: matched.Country, Region: matched.Name}
	s.promptOpen = false
	hooks := make([]usecase.RegionChangedHook, len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	s.logger.Info("region selected",
		slog.String("country", matched.Country),
		slog.String("region", matched.Name),
	)

	for _, hook := range hooks {
		hook(matched)
	}

	return matched, nil
}

// OpenPrompt marks the region prompt as visible.
func (s *regionService) OpenPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promptOpen = true
}

// ClosePrompt hides the region prompt without changing the selection.
func (s *regionService) ClosePrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promptOpen = false
}

// PromptOpen reports whether the region prompt is visible.
func (s *regionService) PromptOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.promptOpen
}

// SubscribeRegionChanged registers a hook fired after every successful Select.
func (s *regionService) SubscribeRegionChanged(hook usecase.RegionChangedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

func (s *regionService) findLocked(country, region string) (entity.Region, bool) {
	for _, r := range s.regions {
		if r.Country == country && r.Name == region {
			return r, true
		}
	}

	return entity.Region{}, false
}
