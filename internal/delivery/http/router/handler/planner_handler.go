package handler

import (
	"context"
	"net/http"
	"time"

	"fleetops/internal/delivery/http/response"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlannerHandler holds dependencies for route-building workflow handlers.
type PlannerHandler struct {
	uc usecase.PlannerUsecase
}

// NewPlannerHandler is the constructor for PlannerHandler, injected by Fx.
func NewPlannerHandler(uc usecase.PlannerUsecase) *PlannerHandler {
	return &PlannerHandler{uc: uc}
}

// Draft returns the current draft snapshot.
func (h *PlannerHandler) Draft(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Snapshot(), "")
}

type addStopRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
}

// AddStop appends a catalog location to the draft.
func (h *PlannerHandler) AddStop(c echo.Context) error {
	var input addStopRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stop input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	snap, err := h.uc.AddStop(c.Request().Context(), input.LocationID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Stop added")
}

// RemoveStop removes a stop from the draft.
func (h *PlannerHandler) RemoveStop(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	snap, err := h.uc.RemoveStop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Stop removed")
}

type moveStopRequest struct {
	Position int `json:"position"`
}

// MoveStop reorders a stop to the given position.
func (h *PlannerHandler) MoveStop(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	var input moveStopRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}

	snap, err := h.uc.MoveStop(c.Request().Context(), id, input.Position)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Stop moved")
}

type endpointRequest struct {
	LocationID uuid.UUID `json:"location_id" validate:"required"`
}

// SetStart designates the route's starting location.
func (h *PlannerHandler) SetStart(c echo.Context) error {
	return h.setEndpoint(c, h.uc.SetStart, "Start set")
}

// SetEnd designates the route's final location.
func (h *PlannerHandler) SetEnd(c echo.Context) error {
	return h.setEndpoint(c, h.uc.SetEnd, "End set")
}

func (h *PlannerHandler) setEndpoint(
	c echo.Context,
	assign func(ctx context.Context, id uuid.UUID) (*usecase.DraftSnapshot, error),
	message string,
) error {
	var input endpointRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid endpoint input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	snap, err := assign(c.Request().Context(), input.LocationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, message)
}

// Optimize runs the optimization collaborator against the draft.
func (h *PlannerHandler) Optimize(c echo.Context) error {
	snap, err := h.uc.Optimize(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Route optimized")
}

// ConfirmLoad freezes the draft for loading.
func (h *PlannerHandler) ConfirmLoad(c echo.Context) error {
	snap, err := h.uc.ConfirmLoad()
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "Load confirmed")
}

type saveRouteRequest struct {
	Name      string    `json:"name"`
	RouteDate time.Time `json:"route_date"`
}

// Save persists the confirmed draft as a route record.
func (h *PlannerHandler) Save(c echo.Context) error {
	var input saveRouteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save input")
	}

	route, err := h.uc.Save(c.Request().Context(), input.Name, input.RouteDate)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, route, "Route saved")
}

// NewRoute discards the draft and starts over.
func (h *PlannerHandler) NewRoute(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.NewRoute(), "Draft discarded")
}

// Frame returns the derived map center, zoom and bounds.
func (h *PlannerHandler) Frame(c echo.Context) error {
	frame, err := h.uc.MapFrame(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, frame, "")
}
