// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"fleetops/internal/domain/entity"
)

// RegionChangedHook is invoked synchronously after the active region
// changes. Hooks run in registration order.
type RegionChangedHook func(region entity.Region)

// RegionUsecase defines the interface for the region selector: the closed
// set of selectable regions, the operator's active choice, and the
// region-prompt visibility.
type RegionUsecase interface {
	// Regions returns the closed set of selectable regions.
	Regions() []entity.Region

	// Selection returns the active country/region choice (zero before any selection).
	Selection() entity.RegionSelection

	// ActiveRegion resolves the active selection to its region entry.
	// The second result is false before any selection.
	ActiveRegion() (entity.Region, bool)

	// Select sets the active region and closes the prompt. Unknown
	// country/region pairs are rejected without a state change.
	Select(country, region string) (entity.Region, error)

	// OpenPrompt and ClosePrompt control region-prompt visibility.
	OpenPrompt()
	ClosePrompt()
	PromptOpen() bool

	// SubscribeRegionChanged registers a hook fired after every successful Select.
	SubscribeRegionChanged(hook RegionChangedHook)
}
