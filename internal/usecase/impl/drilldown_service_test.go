package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/errors"
	mocksRepo "fleetops/internal/mocks/repository"
	mocksSvc "fleetops/internal/mocks/service"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var drilldownNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newDrilldownFixture(t *testing.T, exporter *mocksSvc.MockRecordExporter) (*drilldownService, *mocksRepo.MockRouteRepository) {
	t.Helper()

	routeRepo := mocksRepo.NewMockRouteRepository(t)

	svc := &drilldownService{
		routeRepo:       routeRepo,
		averageSpeedKmh: defaultDrilldownSpeedKmh,
		stopEveryKm:     defaultDrilldownStopEvery,
		stopMinutes:     defaultDrilldownStopMin,
		minDurationMin:  defaultDrilldownFloorMin,
		now:             func() time.Time { return drilldownNow },
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if exporter != nil {
		svc.exporter = exporter
	}

	return svc, routeRepo
}

func historicalRoute(name string, daysAgo int, distanceKm, durationMin float64) *entity.Route {
	return &entity.Route{
		ID:          uuid.New(),
		Name:        name,
		RouteDate:   drilldownNow.AddDate(0, 0, -daysAgo),
		Stops:       4,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		CostRand:    distanceKm * 7.5,
		Cylinders:   20,
		Status:      entity.RouteStatusCompleted,
	}
}

func TestDrilldownDeriveDuration(t *testing.T) {
	t.Parallel()

	svc, _ := newDrilldownFixture(t, nil)

	// 20 km at 40 km/h is 30 minutes driving plus one 15 minute stop.
	assert.InDelta(t, 45, svc.deriveDuration(20), 0.001)

	// 50 km means three estimated stops.
	assert.InDelta(t, 50.0/40*60+3*15, svc.deriveDuration(50), 0.001)
}

func TestDrilldownDurationFloor(t *testing.T) {
	t.Parallel()

	svc, _ := newDrilldownFixture(t, nil)
	svc.stopMinutes = 5

	// 1 km: 1.5 min driving + 5 min stop = 6.5, floored to the minimum.
	assert.InDelta(t, 15, svc.deriveDuration(1), 0.001)
}

func TestDrilldownShowDerivesMissingDuration(t *testing.T) {
	t.Parallel()

	svc, routeRepo := newDrilldownFixture(t, nil)
	ctx := context.Background()

	stored := historicalRoute("Stored duration", 1, 30, 80)
	missing := historicalRoute("Missing duration", 2, 20, 0)

	routeRepo.EXPECT().FetchHistory(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Route{stored, missing}, nil).Once()

	records, err := svc.Show(ctx, usecase.KindRoute, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Stored duration", records[0].DisplayName)
	assert.InDelta(t, 80, records[0].DurationMin, 0.001)
	assert.False(t, records[0].DurationDerived)

	assert.Equal(t, "Missing duration", records[1].DisplayName)
	assert.InDelta(t, 45, records[1].DurationMin, 0.001)
	assert.True(t, records[1].DurationDerived)
}

func TestDrilldownShowNewestFirst(t *testing.T) {
	t.Parallel()

	svc, routeRepo := newDrilldownFixture(t, nil)

	oldest := historicalRoute("Oldest", 6, 10, 30)
	newest := historicalRoute("Newest", 0, 10, 30)
	middle := historicalRoute("Middle", 3, 10, 30)

	routeRepo.EXPECT().FetchHistory(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Route{oldest, newest, middle}, nil).Once()

	records, err := svc.Show(context.Background(), usecase.KindDeliveries, 7)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Newest", records[0].DisplayName)
	assert.Equal(t, "Middle", records[1].DisplayName)
	assert.Equal(t, "Oldest", records[2].DisplayName)
}

func TestDrilldownShowWindow(t *testing.T) {
	t.Parallel()

	svc, routeRepo := newDrilldownFixture(t, nil)

	routeRepo.EXPECT().FetchHistory(mock.Anything, drilldownNow.AddDate(0, 0, -7), drilldownNow).
		Return(nil, nil).Once()

	records, err := svc.Show(context.Background(), usecase.KindFuel, 7)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDrilldownShowRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	svc, _ := newDrilldownFixture(t, nil)

	_, err := svc.Show(context.Background(), usecase.DrilldownKind("bogus"), 7)
	require.ErrorIs(t, err, usecase.ErrUnknownDrilldownKind)
}

func TestDrilldownShowFetchFailure(t *testing.T) {
	t.Parallel()

	svc, routeRepo := newDrilldownFixture(t, nil)

	routeRepo.EXPECT().FetchHistory(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	_, err := svc.Show(context.Background(), usecase.KindRoute, 7)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrHistoryFetchFailed.ErrorCode(), appErr.ErrorCode())
}

func TestDrilldownExportFlattensRecords(t *testing.T) {
	t.Parallel()

	exporter := mocksSvc.NewMockRecordExporter(t)
	svc, routeRepo := newDrilldownFixture(t, exporter)

	route := historicalRoute("Gauteng run", 1, 42.5, 110)
	routeRepo.EXPECT().FetchHistory(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Route{route}, nil).Once()

	exporter.EXPECT().Export(mock.Anything, "August recap", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, headers []string, rows [][]string) error {
			require.Len(t, rows, 1)
			assert.Len(t, rows[0], len(headers))
			assert.Equal(t, "Gauteng run", rows[0][1])
			assert.Equal(t, "42.5", rows[0][2])
			assert.Equal(t, "completed", rows[0][6])

			return nil
		}).Once()

	require.NoError(t, svc.Export(context.Background(), usecase.KindRoute, 7, "August recap"))
}

func TestDrilldownExportWithoutTarget(t *testing.T) {
	t.Parallel()

	svc, routeRepo := newDrilldownFixture(t, nil)

	routeRepo.EXPECT().FetchHistory(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()

	err := svc.Export(context.Background(), usecase.KindRoute, 7, "nowhere to go")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrExportFailed.ErrorCode(), appErr.ErrorCode())
}
