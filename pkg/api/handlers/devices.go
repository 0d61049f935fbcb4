package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/homehub/pkg/api/types"
	"github.com/urmzd/homehub/pkg/device"
)

// DevicesHandler handles device read endpoints
type DevicesHandler struct {
	controller device.Controller
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(controller device.Controller) *DevicesHandler {
	return &DevicesHandler{controller: controller}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns the hub's television and light with their current state
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Failure      503  {object}  types.ErrorResponse  "Controller closed"
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	ctx := c.Request.Context()

	devices, err := h.controller.ListDevices(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]types.DeviceWithState, 0, len(devices))
	for _, d := range devices {
		dws := types.DeviceWithState{Device: d}
		if state, err := h.controller.GetDeviceState(ctx, d.ID); err == nil {
			dws.State = state
		}
		result = append(result, dws)
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns details for a specific device by ID or name
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.controller.GetDevice(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	result := types.DeviceWithState{Device: *d}
	if state, err := h.controller.GetDeviceState(ctx, d.ID); err == nil {
		result.State = state
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: result,
	})
}

// GetState handles GET /devices/:id/state
// @Summary      Get device state
// @Description  Returns the current state of a device, including its gating counter
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.StateResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/state [get]
func (h *DevicesHandler) GetState(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.controller.GetDevice(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.controller.GetDeviceState(ctx, d.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Device:    d.Name,
		State:     state,
		Timestamp: time.Now(),
	})
}

// Describe handles GET /devices/:id/describe
// @Summary      Describe a device
// @Description  Returns the device's name, category and type as display text
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID or name"
// @Success      200  {object}  types.DescribeResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/describe [get]
func (h *DevicesHandler) Describe(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.controller.GetDevice(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	text, err := h.controller.Describe(ctx, d.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DescribeResponse{
		Device:      d.Name,
		Description: text,
	})
}
