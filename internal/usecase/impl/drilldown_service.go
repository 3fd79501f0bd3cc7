package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"fleetops/config"
	"fleetops/internal/domain/entity"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/repository"
	"fleetops/internal/domain/service"
	"fleetops/internal/usecase"
)

const (
	defaultDrilldownSpeedKmh  = 40.0
	defaultDrilldownStopEvery = 20.0
	defaultDrilldownStopMin   = 15.0
	defaultDrilldownFloorMin  = 15.0
)

type drilldownService struct {
	routeRepo repository.RouteRepository
	exporter  service.RecordExporter

	averageSpeedKmh float64
	stopEveryKm     float64
	stopMinutes     float64
	minDurationMin  float64

	now    func() time.Time
	logger *slog.Logger
}

// NewDrilldownService creates the read-only history view builder. The
// exporter may be nil when no export target is configured.
func NewDrilldownService(
	routeRepo repository.RouteRepository,
	exporter service.RecordExporter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DrilldownUsecase {
	svc := &drilldownService{
		routeRepo:       routeRepo,
		exporter:        exporter,
		averageSpeedKmh: defaultDrilldownSpeedKmh,
		stopEveryKm:     defaultDrilldownStopEvery,
		stopMinutes:     defaultDrilldownStopMin,
		minDurationMin:  defaultDrilldownFloorMin,
		now:             time.Now,
		logger:          logger,
	}

	if cfg.Drilldown != nil {
		if cfg.Drilldown.AverageSpeedKmh > 0 {
			svc.averageSpeedKmh = cfg.Drilldown.AverageSpeedKmh
		}
		if cfg.Drilldown.StopEveryKm > 0 {
			svc.stopEveryKm = cfg.Drilldown.StopEveryKm
		}
		if cfg.Drilldown.StopMinutes > 0 {
			svc.stopMinutes = cfg.Drilldown.StopMinutes
		}
		if cfg.Drilldown.MinDurationMin > 0 {
			svc.minDurationMin = cfg.Drilldown.MinDurationMin
		}
	}

	return svc
}

// Show fetches the routes of the last sinceDays days, newest first. Every
// record is rebuilt from the stored routes on each call; nothing here is
// cached or written back.
func (s *drilldownService) Show(ctx context.Context, kind usecase.DrilldownKind, sinceDays int) ([]usecase.DetailRecord, error) {
	if _, err := usecase.ParseDrilldownKind(string(kind)); err != nil {
		return nil, err
	}
	if sinceDays < 0 {
		sinceDays = 0
	}

	now := s.now()
	from := now.AddDate(0, 0, -sinceDays)

	routes, err := s.routeRepo.FetchHistory(ctx, from, now)
	if err != nil {
		s.logger.Error("failed to fetch route history",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrHistoryFetchFailed.WithDetails(err.Error())
	}

	records := make([]usecase.DetailRecord, 0, len(routes))
	for _, route := range routes {
		records = append(records, s.buildRecord(route))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

// Export flattens the records of Show into rows and hands them to the
// export collaborator under the given title.
func (s *drilldownService) Export(ctx context.Context, kind usecase.DrilldownKind, sinceDays int, title string) error {
	records, err := s.Show(ctx, kind, sinceDays)
	if err != nil {
		return err
	}

	if s.exporter == nil {
		return domainerrors.ErrExportFailed.WithDetails("no export target is configured")
	}
	if title == "" {
		title = fmt.Sprintf("%s drilldown %s", kind, s.now().Format("2006-01-02"))
	}

	headers := []string{"Date", "Route", "Distance (km)", "Duration (min)", "Cost (R)", "Cylinders", "Status"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.FormattedDate,
			rec.DisplayName,
			fmt.Sprintf("%.1f", rec.DistanceKm),
			fmt.Sprintf("%.0f", rec.DurationMin),
			fmt.Sprintf("%.2f", rec.CostRand),
			fmt.Sprintf("%d", rec.Cylinders),
			string(rec.Status),
		})
	}

	if err := s.exporter.Export(ctx, title, headers, rows); err != nil {
		s.logger.Error("failed to export drilldown records",
			slog.String("title", title),
			slog.Any("error", err),
		)

		return domainerrors.ErrExportFailed.WithDetails(err.Error())
	}

	s.logger.Info("drilldown records exported",
		slog.String("title", title),
		slog.Int("rows", len(rows)),
	)

	return nil
}

func (s *drilldownService) buildRecord(route *entity.Route) usecase.DetailRecord {
	rec := usecase.DetailRecord{
		ID:            route.ID,
		DisplayName:   route.Name,
		FormattedDate: route.RouteDate.Format("02 Jan 2006"),
		Date:          route.RouteDate,
		DistanceKm:    route.DistanceKm,
		DurationMin:   route.DurationMin,
		CostRand:      route.CostRand,
		Cylinders:     route.Cylinders,
		Status:        route.Status,
	}
	if rec.DisplayName == "" {
		rec.DisplayName = "Route " + rec.FormattedDate
	}
	if rec.DurationMin <= 0 && rec.DistanceKm > 0 {
		rec.DurationMin = s.deriveDuration(rec.DistanceKm)
		rec.DurationDerived = true
	}

	return rec
}

// deriveDuration estimates a display duration for routes saved without one:
// driving time at the configured average speed plus a fixed allowance per
// estimated stop, floored at a sane minimum.
func (s *drilldownService) deriveDuration(distanceKm float64) float64 {
	drivingMin := distanceKm / s.averageSpeedKmh * 60
	estStops := math.Max(1, math.Ceil(distanceKm/s.stopEveryKm))
	total := drivingMin + estStops*s.stopMinutes
	if total < s.minDurationMin {
		return s.minDurationMin
	}

	return total
}
