package handler

import (
	"net/http"

	"fleetops/internal/delivery/http/response"
	"fleetops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegionHandler holds dependencies for region-selector handlers.
type RegionHandler struct {
	uc usecase.RegionUsecase
}

// NewRegionHandler is the constructor for RegionHandler, injected by Fx.
func NewRegionHandler(uc usecase.RegionUsecase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

// List returns the closed set of selectable regions together with the
// active selection and the prompt state.
func (h *RegionHandler) List(c echo.Context) error {
	data := map[string]any{
		"regions":     h.uc.Regions(),
		"selection":   h.uc.Selection(),
		"prompt_open": h.uc.PromptOpen(),
	}

	return response.Success(c, http.StatusOK, data, "")
}

type selectRegionRequest struct {
	Country string `json:"country" validate:"required"`
	Region  string `json:"region" validate:"required"`
}

// Select sets the active region.
func (h *RegionHandler) Select(c echo.Context) error {
	var input selectRegionRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region selection input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	region, err := h.uc.Select(input.Country, input.Region)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, region, "Region selected")
}

// OpenPrompt marks the region prompt as visible.
func (h *RegionHandler) OpenPrompt(c echo.Context) error {
	h.uc.OpenPrompt()

	return response.Success(c, http.StatusOK, map[string]bool{"prompt_open": true}, "")
}

// ClosePrompt hides the region prompt without changing the selection.
func (h *RegionHandler) ClosePrompt(c echo.Context) error {
	h.uc.ClosePrompt()

	return response.Success(c, http.StatusOK, map[string]bool{"prompt_open": false}, "")
}
