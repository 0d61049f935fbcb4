// Package hub coordinates a television and a light, counting how many times
// each has been turned on and gating adjustments on that count.
package hub

import (
	"github.com/rs/zerolog/log"
	"github.com/urmzd/homehub/pkg/device"
)

// Hub owns one Television and one Light.
//
// The on-counts are unclamped: turning a device off more often than on drives
// its count negative, and turning it on twice drives it to 2. Adjustments run
// only while the count is exactly 1, so both of those states disable them.
//
// A Hub is not safe for concurrent use; see Controller.
type Hub struct {
	tv    *device.Television
	light *device.Light

	tvOnCount    int
	lightOnCount int
}

// New creates a Hub that takes ownership of tv and light. Callers must not
// use either device directly afterwards.
func New(tv *device.Television, light *device.Light) *Hub {
	return &Hub{tv: tv, light: light}
}

// TVOnCount returns the television's gating counter.
func (h *Hub) TVOnCount() int { return h.tvOnCount }

// LightOnCount returns the light's gating counter.
func (h *Hub) LightOnCount() int { return h.lightOnCount }

func (h *Hub) TurnOnTV() {
	h.tvOnCount++
	h.tv.TurnOn()
}

func (h *Hub) TurnOffTV() {
	h.tvOnCount--
	h.tv.TurnOff()
}

func (h *Hub) IncreaseTVVolume() {
	if !h.tvGate("increase volume") {
		return
	}
	h.tv.IncreaseVolume()
}

func (h *Hub) DecreaseTVVolume() {
	if !h.tvGate("decrease volume") {
		return
	}
	h.tv.DecreaseVolume()
}

func (h *Hub) ChangeTVChannelToNext() {
	if !h.tvGate("next channel") {
		return
	}
	h.tv.NextChannel()
}

func (h *Hub) ChangeTVChannelToPrevious() {
	if !h.tvGate("previous channel") {
		return
	}
	h.tv.PreviousChannel()
}

func (h *Hub) TurnOnLight() {
	h.lightOnCount++
	h.light.TurnOn()
}

func (h *Hub) TurnOffLight() {
	h.lightOnCount--
	h.light.TurnOff()
}

func (h *Hub) IncreaseLightBrightness() {
	if !h.lightGate("increase brightness") {
		return
	}
	h.light.IncreaseBrightness()
}

func (h *Hub) DecreaseLightBrightness() {
	if !h.lightGate("decrease brightness") {
		return
	}
	h.light.DecreaseBrightness()
}

// TurnOffAllDevices turns off each device whose count is exactly 1.
// Devices at any other count are left alone.
func (h *Hub) TurnOffAllDevices() {
	if h.tvOnCount == 1 {
		h.TurnOffTV()
	}
	if h.lightOnCount == 1 {
		h.TurnOffLight()
	}
}

func (h *Hub) DescribeTV() string    { return h.tv.Describe() }
func (h *Hub) DescribeLight() string { return h.light.Describe() }

func (h *Hub) TVState() device.DeviceState    { return h.tv.State() }
func (h *Hub) LightState() device.DeviceState { return h.light.State() }

func (h *Hub) tvGate(op string) bool {
	if h.tvOnCount != 1 {
		log.Debug().Str("op", op).Int("on_count", h.tvOnCount).Msg("Television operation gated")
		return false
	}
	return true
}

func (h *Hub) lightGate(op string) bool {
	if h.lightOnCount != 1 {
		log.Debug().Str("op", op).Int("on_count", h.lightOnCount).Msg("Light operation gated")
		return false
	}
	return true
}
