package handler

import (
	"net/http"

	"fleetops/internal/delivery/http/response"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for location-catalog handlers.
type LocationHandler struct {
	uc usecase.CatalogUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.CatalogUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List returns the locations visible in the active region. An optional
// search query narrows the result by name or address.
func (h *LocationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	term := c.QueryParam("search")
	locations, err := h.uc.Search(ctx, term)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// Get resolves a single location by id.
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	location, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "")
}

// Add creates a new catalog location.
func (h *LocationHandler) Add(c echo.Context) error {
	var input *usecase.AddLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.uc.Add(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location added")
}

// Update merges a partial patch into an existing location.
func (h *LocationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	var input *usecase.UpdateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location patch")
	}

	location, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated")
}

// Remove deletes a location permanently. Locations referenced by the
// active draft are refused with a conflict.
func (h *LocationHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location id")
	}

	if err := h.uc.Remove(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location removed")
}

// Refresh reloads the catalog from persistence.
func (h *LocationHandler) Refresh(c echo.Context) error {
	if err := h.uc.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Catalog refreshed")
}
