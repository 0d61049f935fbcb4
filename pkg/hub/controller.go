package hub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homehub/pkg/device"
)

// Member identifies one of the hub's devices.
type Member struct {
	ID       string
	Kind     string
	Name     string
	Category string
}

// Controller implements device.Controller and device.EventSubscriber around a
// single Hub. It is the hub's only owner: every call takes the same lock, so
// counters and bounded properties see one caller at a time.
type Controller struct {
	mu        sync.Mutex
	hub       *Hub
	tv        device.Device
	light     device.Device
	connected bool

	subscribers   []chan device.StateEvent
	subscribersMu sync.Mutex
}

// NewController builds the television and light described by tv and light and
// hands them to a new Hub.
func NewController(tv, light Member) (*Controller, error) {
	if tv.Kind != device.KindTelevision {
		return nil, fmt.Errorf("%w: member %q has kind %q, want %q", device.ErrValidation, tv.ID, tv.Kind, device.KindTelevision)
	}
	if light.Kind != device.KindLight {
		return nil, fmt.Errorf("%w: member %q has kind %q, want %q", device.ErrValidation, light.ID, light.Kind, device.KindLight)
	}
	if tv.ID == "" || light.ID == "" {
		return nil, fmt.Errorf("%w: member ID must not be empty", device.ErrValidation)
	}
	if tv.ID == light.ID || tv.Name == light.Name {
		return nil, fmt.Errorf("%w: television and light must have distinct IDs and names", device.ErrValidation)
	}

	h := New(
		device.NewTelevision(tv.Name, tv.Category),
		device.NewLight(light.Name, light.Category),
	)

	log.Info().
		Str("tv", tv.Name).
		Str("light", light.Name).
		Msg("Hub controller initialized")

	return &Controller{
		hub:       h,
		tv:        memberToDevice(tv, device.TypeTelevision),
		light:     memberToDevice(light, device.TypeLight),
		connected: true,
	}, nil
}

func memberToDevice(m Member, deviceType string) device.Device {
	return device.Device{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Kind:         m.Kind,
		Type:         deviceType,
		Protocol:     device.ProtocolSimulated,
		ActionSchema: device.ActionSchema(m.Kind),
	}
}

// --- device.Controller interface ---

func (c *Controller) ListDevices(_ context.Context) ([]device.Device, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, device.ErrNotConnected
	}
	return []device.Device{c.tv, c.light}, nil
}

func (c *Controller) GetDevice(_ context.Context, id string) (*device.Device, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, device.ErrNotConnected
	}
	d, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	dev := *d
	return &dev, nil
}

func (c *Controller) GetDeviceState(_ context.Context, id string) (device.DeviceState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, device.ErrNotConnected
	}
	d, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.stateOf(d.Kind), nil
}

func (c *Controller) Describe(_ context.Context, id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return "", device.ErrNotConnected
	}
	d, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	if d.Kind == device.KindTelevision {
		return c.hub.DescribeTV(), nil
	}
	return c.hub.DescribeLight(), nil
}

func (c *Controller) Execute(_ context.Context, id string, action device.Action, repeat int) (device.DeviceState, error) {
	if repeat < 1 || repeat > device.MaxRepeat {
		return nil, fmt.Errorf("%w: repeat must be between 1 and %d, got %d", device.ErrValidation, device.MaxRepeat, repeat)
	}

	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil, device.ErrNotConnected
	}
	d, err := c.lookup(id)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	op := c.operation(d.Kind, action)
	if op == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s cannot %s", device.ErrUnsupported, d.Type, action)
	}
	for i := 0; i < repeat; i++ {
		op()
	}
	state := c.stateOf(d.Kind)
	dev := *d
	c.mu.Unlock()

	log.Debug().
		Str("device", dev.Name).
		Str("action", string(action)).
		Int("repeat", repeat).
		Msg("Action executed")

	c.publishEvent(device.StateEvent{
		Type:      string(action),
		Device:    &dev,
		State:     state,
		Timestamp: time.Now(),
	})

	return state, nil
}

func (c *Controller) TurnOffAll(_ context.Context) (device.HubStatus, error) {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return device.HubStatus{}, device.ErrNotConnected
	}
	c.hub.TurnOffAllDevices()
	status := c.snapshot()
	c.mu.Unlock()

	c.publishEvent(device.StateEvent{
		Type:      EventTurnOffAll,
		Timestamp: time.Now(),
	})

	return status, nil
}

func (c *Controller) HubStatus(_ context.Context) (device.HubStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return device.HubStatus{}, device.ErrNotConnected
	}
	return c.snapshot(), nil
}

func (c *Controller) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Controller) Close() {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()

	c.subscribersMu.Lock()
	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
	c.subscribersMu.Unlock()

	log.Info().Msg("Hub controller closed")
}

// --- device.EventSubscriber interface ---

func (c *Controller) Subscribe() chan device.StateEvent {
	ch := make(chan device.StateEvent, 16)
	c.subscribersMu.Lock()
	c.subscribers = append(c.subscribers, ch)
	c.subscribersMu.Unlock()
	return ch
}

func (c *Controller) Unsubscribe(ch chan device.StateEvent) {
	c.subscribersMu.Lock()
	defer c.subscribersMu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// EventTurnOffAll is the event type published after TurnOffAll.
const EventTurnOffAll = "turn_off_all"

// --- Helpers ---

// lookup finds a device by ID, then by name. Caller holds c.mu.
func (c *Controller) lookup(id string) (*device.Device, error) {
	for _, d := range []*device.Device{&c.tv, &c.light} {
		if d.ID == id {
			return d, nil
		}
	}
	for _, d := range []*device.Device{&c.tv, &c.light} {
		if d.Name == id {
			return d, nil
		}
	}
	return nil, device.ErrNotFound
}

// operation maps an action to the hub call for a device kind, or nil if the
// kind does not support it.
func (c *Controller) operation(kind string, action device.Action) func() {
	switch kind {
	case device.KindTelevision:
		switch action {
		case device.ActionTurnOn:
			return c.hub.TurnOnTV
		case device.ActionTurnOff:
			return c.hub.TurnOffTV
		case device.ActionVolumeUp:
			return c.hub.IncreaseTVVolume
		case device.ActionVolumeDown:
			return c.hub.DecreaseTVVolume
		case device.ActionChannelUp:
			return c.hub.ChangeTVChannelToNext
		case device.ActionChannelDown:
			return c.hub.ChangeTVChannelToPrevious
		}
	case device.KindLight:
		switch action {
		case device.ActionTurnOn:
			return c.hub.TurnOnLight
		case device.ActionTurnOff:
			return c.hub.TurnOffLight
		case device.ActionBrightnessUp:
			return c.hub.IncreaseLightBrightness
		case device.ActionBrightnessDown:
			return c.hub.DecreaseLightBrightness
		}
	}
	return nil
}

// stateOf returns the device state with its gating counter. Caller holds c.mu.
func (c *Controller) stateOf(kind string) device.DeviceState {
	if kind == device.KindTelevision {
		state := c.hub.TVState()
		state["on_count"] = c.hub.TVOnCount()
		return state
	}
	state := c.hub.LightState()
	state["on_count"] = c.hub.LightOnCount()
	return state
}

// snapshot builds a HubStatus. Caller holds c.mu.
func (c *Controller) snapshot() device.HubStatus {
	return device.HubStatus{
		TVOnCount:    c.hub.TVOnCount(),
		LightOnCount: c.hub.LightOnCount(),
		Devices: []device.DeviceSummary{
			{Device: c.tv, State: c.stateOf(device.KindTelevision)},
			{Device: c.light, State: c.stateOf(device.KindLight)},
		},
	}
}

// publishEvent sends a state event to all subscribers without blocking.
func (c *Controller) publishEvent(evt device.StateEvent) {
	c.subscribersMu.Lock()
	defer c.subscribersMu.Unlock()

	for _, ch := range c.subscribers {
		select {
		case ch <- evt:
		default:
		}
	}
}

var (
	_ device.Controller      = (*Controller)(nil)
	_ device.EventSubscriber = (*Controller)(nil)
)
