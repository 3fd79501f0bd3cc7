// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleetops/internal/delivery/http/middleware"
	"fleetops/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	RegionHandler    *handler.RegionHandler
	LocationHandler  *handler.LocationHandler
	PlannerHandler   *handler.PlannerHandler
	DrilldownHandler *handler.DrilldownHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	regionHandler    *handler.RegionHandler
	locationHandler  *handler.LocationHandler
	plannerHandler   *handler.PlannerHandler
	drilldownHandler *handler.DrilldownHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		regionHandler:    params.RegionHandler,
		locationHandler:  params.LocationHandler,
		plannerHandler:   params.PlannerHandler,
		drilldownHandler: params.DrilldownHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires an authenticated operator.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	regionGroup := api.Group("/regions")
	{
		regionGroup.GET("", r.regionHandler.List)
		regionGroup.POST("/select", r.regionHandler.Select)
		regionGroup.POST("/prompt/open", r.regionHandler.OpenPrompt)
		regionGroup.POST("/prompt/close", r.regionHandler.ClosePrompt)
	}

	locationGroup := api.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.List)
		locationGroup.POST("", r.locationHandler.Add)
		locationGroup.POST("/refresh", r.locationHandler.Refresh)
		locationGroup.GET("/:id", r.locationHandler.Get)
		locationGroup.PUT("/:id", r.locationHandler.Update)
		locationGroup.DELETE("/:id", r.locationHandler.Remove)
	}

	plannerGroup := api.Group("/planner")
	{
		plannerGroup.GET("/draft", r.plannerHandler.Draft)
		plannerGroup.GET("/frame", r.plannerHandler.Frame)
		plannerGroup.POST("/stops", r.plannerHandler.AddStop)
		plannerGroup.DELETE("/stops/:id", r.plannerHandler.RemoveStop)
		plannerGroup.POST("/stops/:id/move", r.plannerHandler.MoveStop)
		plannerGroup.PUT("/start", r.plannerHandler.SetStart)
		plannerGroup.PUT("/end", r.plannerHandler.SetEnd)
		plannerGroup.POST("/optimize", r.plannerHandler.Optimize)
		plannerGroup.POST("/confirm-load", r.plannerHandler.ConfirmLoad)
		plannerGroup.POST("/save", r.plannerHandler.Save)
		plannerGroup.POST("/new", r.plannerHandler.NewRoute)
	}

	drilldownGroup := api.Group("/drilldowns")
	{
		drilldownGroup.GET("/:kind", r.drilldownHandler.Show)
		drilldownGroup.POST("/:kind/export", r.drilldownHandler.Export)
	}
}
