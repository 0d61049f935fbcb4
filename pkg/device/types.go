package device

import (
	"encoding/json"
	"time"
)

// Device describes a device owned by the hub, independent of its runtime state.
type Device struct {
	ID           string          `json:"id"`            // Stable identifier assigned at bootstrap
	Name         string          `json:"name"`          // User-facing name, immutable
	Category     string          `json:"category"`      // Free-form grouping (Entertainment, Outdoor, ...)
	Kind         string          `json:"kind"`          // Variant key (television, light)
	Type         string          `json:"type"`          // Variant label (Smart TV, Smart Light)
	Protocol     string          `json:"protocol"`      // Always "simulated"
	ActionSchema json.RawMessage `json:"action_schema"` // JSON Schema for accepted action commands
}

// DeviceState represents the current state of a device as a dynamic map.
type DeviceState map[string]any

// StateEvent is published every time an action is executed against a device.
type StateEvent struct {
	Type      string      `json:"type"`             // Event type (action name, or turn_off_all)
	Device    *Device     `json:"device,omitempty"` // Device the action targeted
	State     DeviceState `json:"state,omitempty"`  // State after the action
	Timestamp time.Time   `json:"timestamp"`        // When the action completed
}

// Status is the power status of a device.
type Status string

const (
	StatusOnline Status = "online"
	StatusOn     Status = "on"
	StatusOff    Status = "off"
)

// ProtocolSimulated marks devices that only exist in process.
const ProtocolSimulated = "simulated"

// Device kinds
const (
	KindTelevision = "television"
	KindLight      = "light"
)

// Device type labels
const (
	TypeTelevision = "Smart TV"
	TypeLight      = "Smart Light"
)

// Action names a command that can be executed against a device.
type Action string

const (
	ActionTurnOn         Action = "turn_on"
	ActionTurnOff        Action = "turn_off"
	ActionVolumeUp       Action = "volume_up"
	ActionVolumeDown     Action = "volume_down"
	ActionChannelUp      Action = "channel_up"
	ActionChannelDown    Action = "channel_down"
	ActionBrightnessUp   Action = "brightness_up"
	ActionBrightnessDown Action = "brightness_down"
)

// MaxRepeat bounds how many times a single command may repeat its action.
const MaxRepeat = 100

// ActionsFor returns the actions a device kind accepts, or nil for an unknown kind.
func ActionsFor(kind string) []Action {
	switch kind {
	case KindTelevision:
		return []Action{ActionTurnOn, ActionTurnOff, ActionVolumeUp, ActionVolumeDown, ActionChannelUp, ActionChannelDown}
	case KindLight:
		return []Action{ActionTurnOn, ActionTurnOff, ActionBrightnessUp, ActionBrightnessDown}
	default:
		return nil
	}
}

// ActionSchema builds the JSON Schema for commands accepted by a device kind.
func ActionSchema(kind string) json.RawMessage {
	actions := ActionsFor(kind)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}

	doc := map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"action"},
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": names,
			},
			"repeat": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": MaxRepeat,
			},
		},
		"additionalProperties": false,
	}

	b, _ := json.Marshal(doc)
	return b
}
