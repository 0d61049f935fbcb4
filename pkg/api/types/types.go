package types

import (
	"time"

	"github.com/urmzd/homehub/pkg/device"
)

// --- Request DTOs ---

// ActionRequest is the request body for POST /devices/:id/actions
type ActionRequest struct {
	Action string `json:"action" example:"volume_up"`
	Repeat int    `json:"repeat,omitempty" example:"1"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status     string    `json:"status"`
	Controller string    `json:"controller"`
	Devices    int       `json:"devices"`
	Timestamp  time.Time `json:"timestamp"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceWithState `json:"devices"`
	Count   int               `json:"count"`
}

// DeviceWithState combines device info with current state
type DeviceWithState struct {
	device.Device
	State map[string]any `json:"state,omitempty"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceWithState `json:"device"`
}

// StateResponse is returned from GET /devices/:id/state and POST /devices/:id/actions
type StateResponse struct {
	Device    string         `json:"device"`
	Action    string         `json:"action,omitempty"`
	State     map[string]any `json:"state"`
	Timestamp time.Time      `json:"timestamp"`
}

// DescribeResponse is returned from GET /devices/:id/describe
type DescribeResponse struct {
	Device      string `json:"device"`
	Description string `json:"description"`
}

// HubResponse is returned from GET /hub and POST /hub/turn-off-all
type HubResponse struct {
	Hub       device.HubStatus `json:"hub"`
	Timestamp time.Time        `json:"timestamp"`
}
