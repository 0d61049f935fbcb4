package device

import "context"

// Controller defines the interface for driving the hub's devices.
// Transports (REST, MCP) work against this interface only.
type Controller interface {
	// ListDevices returns every device the hub owns
	ListDevices(ctx context.Context) ([]Device, error)

	// GetDevice returns a single device by ID or name
	GetDevice(ctx context.Context, id string) (*Device, error)

	// GetDeviceState retrieves the current state of a device
	GetDeviceState(ctx context.Context, id string) (DeviceState, error)

	// Describe returns the human-readable description of a device
	Describe(ctx context.Context, id string) (string, error)

	// Execute runs action against a device repeat times and returns the resulting state
	Execute(ctx context.Context, id string, action Action, repeat int) (DeviceState, error)

	// TurnOffAll powers off every device whose on-count is exactly 1
	TurnOffAll(ctx context.Context) (HubStatus, error)

	// HubStatus returns the hub's counters and a snapshot of each device
	HubStatus(ctx context.Context) (HubStatus, error)

	// IsConnected returns true until the controller is closed
	IsConnected() bool

	// Close releases the controller; later calls fail with ErrNotConnected
	Close()
}

// EventSubscriber defines the interface for subscribing to device state events
type EventSubscriber interface {
	// Subscribe returns a channel that receives state events
	Subscribe() chan StateEvent

	// Unsubscribe removes a subscription
	Unsubscribe(ch chan StateEvent)
}

// HubStatus is a snapshot of the hub's gating counters and owned devices.
type HubStatus struct {
	TVOnCount    int             `json:"tv_on_count"`
	LightOnCount int             `json:"light_on_count"`
	Devices      []DeviceSummary `json:"devices"`
}

// DeviceSummary pairs a device with its state at snapshot time.
type DeviceSummary struct {
	Device Device      `json:"device"`
	State  DeviceState `json:"state"`
}
