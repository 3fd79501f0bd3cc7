package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftLocation(name string, category LocationCategory) Location {
	return Location{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  -26.2,
		Longitude: 28.0,
		Category:  category,
	}
}

func TestDraftAddStopUpdatesDuplicate(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	loc := draftLocation("Bakery", CategoryCustomer)

	require.NoError(t, draft.AddStop(loc, 5))
	require.NoError(t, draft.AddStop(loc, 9))

	require.Equal(t, 1, draft.StopCount())
	assert.Equal(t, 9, draft.Stops[0].Quantity)
}

func TestDraftMoveStopClamps(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	a := draftLocation("A", CategoryCustomer)
	b := draftLocation("B", CategoryCustomer)
	c := draftLocation("C", CategoryCustomer)
	for _, loc := range []Location{a, b, c} {
		require.NoError(t, draft.AddStop(loc, 1))
	}

	require.NoError(t, draft.MoveStop(a.ID, 100))
	assert.Equal(t, a.ID, draft.Stops[2].Location.ID)

	require.NoError(t, draft.MoveStop(a.ID, -3))
	assert.Equal(t, a.ID, draft.Stops[0].Location.ID)

	require.ErrorIs(t, draft.MoveStop(uuid.New(), 1), ErrStopNotFound)
}

func TestDraftFrozenRejectsMutation(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	loc := draftLocation("Depot", CategoryStorage)
	require.NoError(t, draft.AddStop(loc, 3))
	require.True(t, draft.ConfirmLoad())

	assert.ErrorIs(t, draft.AddStop(draftLocation("X", CategoryCustomer), 1), ErrDraftFrozen)
	assert.ErrorIs(t, draft.RemoveStop(loc.ID), ErrDraftFrozen)
	assert.ErrorIs(t, draft.MoveStop(loc.ID, 0), ErrDraftFrozen)
	assert.ErrorIs(t, draft.SetStart(loc), ErrDraftFrozen)
	assert.ErrorIs(t, draft.SetEnd(loc), ErrDraftFrozen)
	assert.ErrorIs(t, draft.ApplyOptimization(nil, 1, 1, 1), ErrDraftFrozen)
}

func TestDraftConfirmLoadIdempotent(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	require.NoError(t, draft.AddStop(draftLocation("A", CategoryCustomer), 1))

	assert.True(t, draft.ConfirmLoad())
	assert.False(t, draft.ConfirmLoad())
	assert.True(t, draft.LoadConfirmed)
}

func TestDraftOptimizeDisabledDerivation(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	assert.True(t, draft.OptimizeDisabled())

	for i := 0; i < MinOptimizableStops; i++ {
		require.NoError(t, draft.AddStop(draftLocation("L", CategoryCustomer), 1))
	}
	assert.False(t, draft.OptimizeDisabled())

	draft.ConfirmLoad()
	assert.True(t, draft.OptimizeDisabled())
}

func TestDraftResetClearsEverything(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	start := draftLocation("Depot", CategoryStorage)
	require.NoError(t, draft.AddStop(draftLocation("A", CategoryCustomer), 4))
	require.NoError(t, draft.SetStart(start))
	require.NoError(t, draft.ApplyOptimization(draft.Stops, 12.5, 40, 93.75))
	draft.ConfirmLoad()

	draft.Reset()

	assert.Zero(t, draft.StopCount())
	assert.Nil(t, draft.Start)
	assert.Nil(t, draft.End)
	assert.False(t, draft.LoadConfirmed)
	assert.Zero(t, draft.DistanceKm)
	assert.Zero(t, draft.DurationMin)
	assert.Zero(t, draft.CostRand)
}

func TestDraftHasStopIncludesEndpoints(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()
	stop := draftLocation("A", CategoryCustomer)
	start := draftLocation("Depot", CategoryStorage)

	require.NoError(t, draft.AddStop(stop, 1))
	require.NoError(t, draft.SetStart(start))

	assert.True(t, draft.HasStop(stop.ID))
	assert.True(t, draft.HasStop(start.ID))
	assert.False(t, draft.HasStop(uuid.New()))
}

func TestDraftTotals(t *testing.T) {
	t.Parallel()

	draft := NewRouteDraft()

	depot := draftLocation("Depot", CategoryStorage)
	customer := draftLocation("Bakery", CategoryCustomer)
	customer.EmptyCylinders = 3

	require.NoError(t, draft.AddStop(depot, 20))
	require.NoError(t, draft.AddStop(customer, 6))

	totals := draft.Totals()
	assert.Equal(t, 2, totals.Stops)
	assert.Equal(t, 26, totals.Cylinders)
	assert.Equal(t, 20, totals.FullCylinders)
	assert.Equal(t, 3, totals.EmptyCylinders)
}
