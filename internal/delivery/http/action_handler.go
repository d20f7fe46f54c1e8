package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepulse/tradepulse/internal/delivery/http/dto"
	"github.com/tradepulse/tradepulse/internal/domain"
)

// Commander is the slice of operator commands the HTTP surface exposes
type Commander interface {
	ToggleStatus(ctx context.Context) (domain.SessionStatus, error)
	CommitSettings(ctx context.Context, edit domain.SettingsEdit) error
}

// ActionHandler forwards operator commands to the command service.
// Unlike polling, command failures are surfaced to the caller.
type ActionHandler struct {
	commander Commander
}

// NewActionHandler creates a new ActionHandler
func NewActionHandler(commander Commander) *ActionHandler {
	return &ActionHandler{commander: commander}
}

// Toggle flips the session between active and paused
// POST /api/actions/toggle
func (h *ActionHandler) Toggle(c echo.Context) error {
	status, err := h.commander.ToggleStatus(c.Request().Context())
	if err != nil {
		return BadGatewayResponse(c, "Failed to toggle session status", err)
	}

	return SuccessResponse(c, dto.ToggleResponse{Status: string(status)})
}

// SaveSettings validates and commits a settings change
// POST /api/actions/settings
func (h *ActionHandler) SaveSettings(c echo.Context) error {
	var form dto.SettingsForm
	if err := c.Bind(&form); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	edit := domain.SettingsEdit{
		Capital:        form.Capital,
		RiskProfile:    form.RiskProfile,
		PeriodQuantity: form.PeriodQuantity,
		PeriodUnit:     form.PeriodUnit,
		ExpectedReturn: form.ExpectedReturn,
	}

	err := h.commander.CommitSettings(c.Request().Context(), edit)
	if err == nil {
		return SuccessMessageResponse(c, "Settings updated", nil)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse(c, http.StatusBadRequest, "Invalid settings", map[string]string{
			"field":  verr.Field,
			"reason": verr.Reason,
		})
	}

	var terr *domain.TransportError
	if errors.As(err, &terr) {
		return BadGatewayResponse(c, "Failed to save settings", err)
	}

	return InternalServerErrorResponse(c, "Failed to save settings", err)
}
