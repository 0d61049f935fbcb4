package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homehub/pkg/api/types"
	"github.com/urmzd/homehub/pkg/device"
	"github.com/urmzd/homehub/pkg/device/schema"
)

// ControlHandler handles device and hub control endpoints
type ControlHandler struct {
	controller device.Controller
	validator  *schema.Validator
}

// NewControlHandler creates a new control handler
func NewControlHandler(controller device.Controller, validator *schema.Validator) *ControlHandler {
	return &ControlHandler{controller: controller, validator: validator}
}

// ExecuteAction handles POST /devices/:id/actions
// @Summary      Execute a device action
// @Description  Runs an action (turn_on, volume_up, brightness_down, ...) against a device, validated against the device's action schema. Adjustments are silently ignored unless the hub counts the device as on exactly once.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Device ID or name"
// @Param        request  body      types.ActionRequest  true  "Action to execute"
// @Success      200      {object}  types.StateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Failure      503      {object}  types.ErrorResponse  "Controller closed"
// @Router       /devices/{id}/actions [post]
func (h *ControlHandler) ExecuteAction(c *gin.Context) {
	ctx := c.Request.Context()

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	d, err := h.controller.GetDevice(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	cmd, err := h.validator.ValidateCommand(d, req)
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.controller.Execute(ctx, d.ID, cmd.Action, cmd.Repeat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Device:    d.Name,
		Action:    string(cmd.Action),
		State:     state,
		Timestamp: time.Now(),
	})
}

// GetHub handles GET /hub
// @Summary      Get hub status
// @Description  Returns the hub's per-device on-counts and device snapshots
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.HubResponse
// @Failure      503  {object}  types.ErrorResponse  "Controller closed"
// @Router       /hub [get]
func (h *ControlHandler) GetHub(c *gin.Context) {
	status, err := h.controller.HubStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.HubResponse{
		Hub:       status,
		Timestamp: time.Now(),
	})
}

// TurnOffAll handles POST /hub/turn-off-all
// @Summary      Turn off all devices
// @Description  Turns off every device whose on-count is exactly 1; others are left untouched
// @Tags         hub
// @Produce      json
// @Success      200  {object}  types.HubResponse
// @Failure      503  {object}  types.ErrorResponse  "Controller closed"
// @Router       /hub/turn-off-all [post]
func (h *ControlHandler) TurnOffAll(c *gin.Context) {
	status, err := h.controller.TurnOffAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.HubResponse{
		Hub:       status,
		Timestamp: time.Now(),
	})
}
