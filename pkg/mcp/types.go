package mcp

import (
	"encoding/json"

	"github.com/urmzd/homehub/pkg/device"
)

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status     string `json:"status" jsonschema:"description=Overall health status (healthy or unhealthy)"`
	Controller string `json:"controller" jsonschema:"description=Hub controller status"`
	Timestamp  string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Devices owned by the hub"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	ID           string          `json:"id" jsonschema:"description=Unique device identifier"`
	Name         string          `json:"name" jsonschema:"description=Device name"`
	Category     string          `json:"category" jsonschema:"description=Device category"`
	Type         string          `json:"type" jsonschema:"description=Device type (Smart TV or Smart Light)"`
	Actions      []string        `json:"actions" jsonschema:"description=Actions accepted by execute_action"`
	ActionSchema json.RawMessage `json:"action_schema,omitempty" jsonschema:"description=JSON Schema for action commands"`
	State        map[string]any  `json:"state,omitempty" jsonschema:"description=Current device state"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device DeviceInfo `json:"device" jsonschema:"description=Device information"`
}

// DeviceStateOutput is the output for get_device_state, execute_action, turn_on and turn_off
type DeviceStateOutput struct {
	DeviceID string         `json:"device_id" jsonschema:"description=Device identifier"`
	Action   string         `json:"action,omitempty" jsonschema:"description=Action that was executed"`
	State    map[string]any `json:"state" jsonschema:"description=Device state"`
}

// HubStatusOutput is the output for get_hub_status and turn_off_all_devices
type HubStatusOutput struct {
	Hub device.HubStatus `json:"hub" jsonschema:"description=Hub counters and device snapshots"`
}

// DeviceToInfo converts a device.Device to DeviceInfo
func DeviceToInfo(d *device.Device) DeviceInfo {
	actions := device.ActionsFor(d.Kind)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return DeviceInfo{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		Type:         d.Type,
		Actions:      names,
		ActionSchema: d.ActionSchema,
	}
}
