package main

import (
	"context"
	"log/slog"
	"os"

	"fleetops/config"
	"fleetops/internal/delivery"
	"fleetops/internal/delivery/http"
	"fleetops/internal/delivery/http/middleware"
	"fleetops/internal/delivery/http/router/handler"
	"fleetops/internal/infra/auth"
	"fleetops/internal/infra/export"
	logs "fleetops/internal/infra/log"
	"fleetops/internal/infra/optimizer"
	"fleetops/internal/infra/persistence/postgres"
	"fleetops/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
			postgres.NewRouteRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			optimizer.NewNearestNeighborOptimizer,
			export.NewSheetsExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegionService,
			impl.NewCatalogService,
			impl.NewPlannerService,
			impl.NewDrilldownService,
			impl.NewOperatorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRegionHandler,
			handler.NewLocationHandler,
			handler.NewPlannerHandler,
			handler.NewDrilldownHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
