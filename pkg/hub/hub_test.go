package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urmzd/homehub/pkg/device"
)

func newTestHub() *Hub {
	return New(
		device.NewTelevision("Android TV", "Entertainment"),
		device.NewLight("Google Light", "Outdoor"),
	)
}

func TestHub_VolumeGatedUntilTurnedOn(t *testing.T) {
	h := newTestHub()

	h.IncreaseTVVolume()
	h.IncreaseTVVolume()
	assert.Equal(t, 2, h.TVState()["volume"], "gated while count is 0")

	h.TurnOnTV()
	assert.Equal(t, 1, h.TVOnCount())

	h.IncreaseTVVolume()
	h.IncreaseTVVolume()
	assert.Equal(t, 4, h.TVState()["volume"])
}

func TestHub_GatingByCount(t *testing.T) {
	tests := []struct {
		name    string
		ons     int
		offs    int
		count   int
		applies bool
		// brightness step seen when applied; 0 after a power-down since
		// the light then sits at 0 and 1 is out of range
		lightDelta int
	}{
		{name: "never turned on", count: 0},
		{name: "on once", ons: 1, count: 1, applies: true, lightDelta: 1},
		{name: "on twice", ons: 2, count: 2},
		{name: "on then off", ons: 1, offs: 1, count: 0},
		{name: "off without on", offs: 1, count: -1},
		{name: "on twice off once", ons: 2, offs: 1, count: 1, applies: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHub()
			for i := 0; i < tt.ons; i++ {
				h.TurnOnTV()
				h.TurnOnLight()
			}
			for i := 0; i < tt.offs; i++ {
				h.TurnOffTV()
				h.TurnOffLight()
			}
			assert.Equal(t, tt.count, h.TVOnCount())
			assert.Equal(t, tt.count, h.LightOnCount())

			tvBefore := h.TVState()
			lightBefore := h.LightState()

			h.IncreaseTVVolume()
			h.ChangeTVChannelToNext()
			h.IncreaseLightBrightness()

			if tt.applies {
				assert.Equal(t, tvBefore["volume"].(int)+1, h.TVState()["volume"])
				assert.Equal(t, tvBefore["channel"].(int)+1, h.TVState()["channel"])
				assert.Equal(t, lightBefore["brightness"].(int)+tt.lightDelta, h.LightState()["brightness"])
			} else {
				assert.Equal(t, tvBefore, h.TVState())
				assert.Equal(t, lightBefore, h.LightState())
			}
		})
	}
}

func TestHub_DecreaseOperationsGated(t *testing.T) {
	h := newTestHub()

	h.DecreaseTVVolume()
	h.ChangeTVChannelToPrevious()
	h.DecreaseLightBrightness()
	assert.Equal(t, 2, h.TVState()["volume"])
	assert.Equal(t, 1, h.TVState()["channel"])
	assert.Equal(t, 10, h.LightState()["brightness"])

	h.TurnOnTV()
	h.TurnOnLight()
	h.DecreaseTVVolume()
	h.ChangeTVChannelToPrevious()
	h.DecreaseLightBrightness()
	assert.Equal(t, 1, h.TVState()["volume"])
	assert.Equal(t, 0, h.TVState()["channel"])
	assert.Equal(t, 9, h.LightState()["brightness"])
}

func TestHub_LightBrightnessFloor(t *testing.T) {
	h := newTestHub()
	h.TurnOnLight()

	for i := 0; i < 9; i++ {
		h.DecreaseLightBrightness()
	}
	assert.Equal(t, 2, h.LightState()["brightness"])

	h.DecreaseLightBrightness()
	assert.Equal(t, 2, h.LightState()["brightness"])
}

func TestHub_TurnOffAllOnlyLightOn(t *testing.T) {
	h := newTestHub()
	h.TurnOnLight()

	h.TurnOffAllDevices()

	assert.Equal(t, "off", h.LightState()["status"])
	assert.Equal(t, 0, h.LightState()["brightness"])
	assert.Equal(t, 0, h.LightOnCount())

	assert.Equal(t, "online", h.TVState()["status"], "television untouched")
	assert.Equal(t, 0, h.TVOnCount())
}

func TestHub_TurnOffAllSkipsOtherCounts(t *testing.T) {
	h := newTestHub()
	h.TurnOnTV()
	h.TurnOnTV()
	h.TurnOffLight()

	h.TurnOffAllDevices()

	assert.Equal(t, 2, h.TVOnCount())
	assert.Equal(t, "on", h.TVState()["status"])
	assert.Equal(t, -1, h.LightOnCount())
	assert.Equal(t, "off", h.LightState()["status"])
}

func TestHub_TurnOffAllBothOn(t *testing.T) {
	h := newTestHub()
	h.TurnOnTV()
	h.TurnOnLight()

	h.TurnOffAllDevices()

	assert.Equal(t, 0, h.TVOnCount())
	assert.Equal(t, 0, h.LightOnCount())
	assert.Equal(t, "off", h.TVState()["status"])
	assert.Equal(t, "off", h.LightState()["status"])

	// A second call has nothing at count 1 left to turn off
	h.TurnOffAllDevices()
	assert.Equal(t, 0, h.TVOnCount())
	assert.Equal(t, 0, h.LightOnCount())
}

func TestHub_Describe(t *testing.T) {
	h := newTestHub()
	assert.Contains(t, h.DescribeTV(), "Name: Android TV")
	assert.Contains(t, h.DescribeTV(), "Device: Smart TV")
	assert.Contains(t, h.DescribeLight(), "Category: Outdoor")
	assert.Contains(t, h.DescribeLight(), "Device: Smart Light")
}
