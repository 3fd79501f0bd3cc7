package handler

import (
	"net/http"
	"strconv"

	"fleetops/internal/delivery/http/response"
	"fleetops/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultDrilldownWindowDays is used when the request does not name one.
const defaultDrilldownWindowDays = 30

// DrilldownHandler holds dependencies for history drilldown handlers.
type DrilldownHandler struct {
	uc usecase.DrilldownUsecase
}

// NewDrilldownHandler is the constructor for DrilldownHandler, injected by Fx.
func NewDrilldownHandler(uc usecase.DrilldownUsecase) *DrilldownHandler {
	return &DrilldownHandler{uc: uc}
}

// Show returns the detail records for one drilldown kind.
func (h *DrilldownHandler) Show(c echo.Context) error {
	kind, err := usecase.ParseDrilldownKind(c.Param("kind"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown drilldown kind")
	}

	sinceDays := defaultDrilldownWindowDays
	if raw := c.QueryParam("since_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "since_days must be a non-negative integer")
		}
		sinceDays = parsed
	}

	records, err := h.uc.Show(c.Request().Context(), kind, sinceDays)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

type exportRequest struct {
	Title     string `json:"title"`
	SinceDays int    `json:"since_days" validate:"gte=0"`
}

// Export flattens the drilldown records into the configured export target.
func (h *DrilldownHandler) Export(c echo.Context) error {
	kind, err := usecase.ParseDrilldownKind(c.Param("kind"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown drilldown kind")
	}

	var input exportRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid export input")
	}
	if input.SinceDays == 0 {
		input.SinceDays = defaultDrilldownWindowDays
	}

	if err := h.uc.Export(c.Request().Context(), kind, input.SinceDays, input.Title); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Records exported")
}
