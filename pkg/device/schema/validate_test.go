package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homehub/pkg/device"
)

func lightDevice() *device.Device {
	return &device.Device{
		ID:           "light-1",
		Name:         "Google Light",
		Kind:         device.KindLight,
		Type:         device.TypeLight,
		ActionSchema: device.ActionSchema(device.KindLight),
	}
}

func TestValidateCommand_Valid(t *testing.T) {
	v := NewValidator()

	cmd, err := v.ValidateCommand(lightDevice(), map[string]any{
		"action": "brightness_down",
		"repeat": float64(9),
	})
	require.NoError(t, err)
	assert.Equal(t, device.ActionBrightnessDown, cmd.Action)
	assert.Equal(t, 9, cmd.Repeat)
}

func TestValidateCommand_DefaultRepeat(t *testing.T) {
	v := NewValidator()

	cmd, err := v.ValidateCommand(lightDevice(), map[string]any{"action": "turn_on"})
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Repeat)
}

func TestValidateCommand_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "action of other kind", payload: map[string]any{"action": "volume_up"}},
		{name: "unknown action", payload: map[string]any{"action": "explode"}},
		{name: "missing action", payload: map[string]any{"repeat": float64(1)}},
		{name: "action wrong type", payload: map[string]any{"action": float64(1)}},
		{name: "repeat zero", payload: map[string]any{"action": "turn_on", "repeat": float64(0)}},
		{name: "repeat too large", payload: map[string]any{"action": "turn_on", "repeat": float64(device.MaxRepeat + 1)}},
		{name: "repeat fractional", payload: map[string]any{"action": "turn_on", "repeat": 1.5}},
		{name: "unknown property", payload: map[string]any{"action": "turn_on", "level": float64(3)}},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateCommand(lightDevice(), tt.payload)
			assert.ErrorIs(t, err, device.ErrValidation)
		})
	}
}

func TestValidate_TelevisionSchema(t *testing.T) {
	v := NewValidator()
	schema := device.ActionSchema(device.KindTelevision)

	assert.NoError(t, v.Validate(schema, map[string]any{"action": "channel_up"}))
	assert.Error(t, v.Validate(schema, map[string]any{"action": "brightness_up"}))
}

func TestValidate_EmptySchema(t *testing.T) {
	v := NewValidator()

	// Empty schema means no validation
	err := v.Validate(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	assert.NoError(t, err)
}

func TestValidate_NilSchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil, map[string]any{
		"anything": "goes",
	})
	assert.NoError(t, err)
}

func TestValidate_CachesSchema(t *testing.T) {
	v := NewValidator()
	d := lightDevice()

	_, err := v.ValidateCommand(d, map[string]any{"action": "turn_on"})
	require.NoError(t, err)

	_, err = v.ValidateCommand(d, map[string]any{"action": "turn_off"})
	require.NoError(t, err)

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	assert.Equal(t, 1, cacheSize)
}
