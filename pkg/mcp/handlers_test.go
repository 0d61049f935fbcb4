package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homehub/pkg/device"
	"github.com/urmzd/homehub/pkg/device/schema"
	"github.com/urmzd/homehub/pkg/hub"
)

func newTestServer(t *testing.T) (*Server, *hub.Controller) {
	t.Helper()
	ctrl, err := hub.NewController(
		hub.Member{ID: "tv-1", Kind: device.KindTelevision, Name: "Android TV", Category: "Entertainment"},
		hub.Member{ID: "light-1", Kind: device.KindLight, Name: "Google Light", Category: "Outdoor"},
	)
	require.NoError(t, err)
	return NewServer(ctrl, schema.NewValidator(), "test"), ctrl
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func decodeResult[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &v))
	return v
}

func TestHandleGetHealth(t *testing.T) {
	s, ctrl := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleGetHealth(ctx, callRequest("get_health", nil))
	require.NoError(t, err)
	assert.Equal(t, "healthy", decodeResult[GetHealthOutput](t, res).Status)

	ctrl.Close()
	res, err = s.handleGetHealth(ctx, callRequest("get_health", nil))
	require.NoError(t, err)
	assert.Equal(t, "unhealthy", decodeResult[GetHealthOutput](t, res).Status)
}

func TestHandleListDevices(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleListDevices(context.Background(), callRequest("list_devices", nil))
	require.NoError(t, err)
	out := decodeResult[ListDevicesOutput](t, res)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "Smart TV", out.Devices[0].Type)
	assert.Contains(t, out.Devices[0].Actions, "channel_up")
	assert.Contains(t, out.Devices[1].Actions, "brightness_up")
}

func TestHandleExecuteAction_LightScenario(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleTurnOn(ctx, callRequest("turn_on", map[string]any{"id": "Google Light"}))
	require.NoError(t, err)
	assert.Equal(t, float64(10), decodeResult[DeviceStateOutput](t, res).State["brightness"])

	res, err = s.handleExecuteAction(ctx, callRequest("execute_action", map[string]any{
		"id":     "light-1",
		"action": "brightness_down",
		"repeat": float64(9),
	}))
	require.NoError(t, err)
	out := decodeResult[DeviceStateOutput](t, res)
	assert.Equal(t, "brightness_down", out.Action)
	assert.Equal(t, float64(2), out.State["brightness"])

	res, err = s.handleTurnOffAll(ctx, callRequest("turn_off_all_devices", nil))
	require.NoError(t, err)
	hubOut := decodeResult[HubStatusOutput](t, res)
	assert.Equal(t, 0, hubOut.Hub.LightOnCount)
	assert.Equal(t, "off", hubOut.Hub.Devices[1].State["status"])
	assert.Equal(t, "online", hubOut.Hub.Devices[0].State["status"])
}

func TestHandleExecuteAction_Errors(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "missing id", args: map[string]any{"action": "turn_on"}},
		{name: "unknown device", args: map[string]any{"id": "fridge", "action": "turn_on"}},
		{name: "unsupported action", args: map[string]any{"id": "tv-1", "action": "brightness_up"}},
		{name: "bad repeat", args: map[string]any{"id": "tv-1", "action": "turn_on", "repeat": float64(500)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleExecuteAction(ctx, callRequest("execute_action", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestHandleGetHubStatus(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleTurnOn(ctx, callRequest("turn_on", map[string]any{"id": "tv-1"}))
	require.NoError(t, err)
	_, err = s.handleTurnOn(ctx, callRequest("turn_on", map[string]any{"id": "tv-1"}))
	require.NoError(t, err)

	res, err := s.handleGetHubStatus(ctx, callRequest("get_hub_status", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, decodeResult[HubStatusOutput](t, res).Hub.TVOnCount)

	res, err = s.handleGetDeviceState(ctx, callRequest("get_device_state", map[string]any{"id": "tv-1"}))
	require.NoError(t, err)
	assert.Equal(t, float64(2), decodeResult[DeviceStateOutput](t, res).State["on_count"])
}

func TestHandleDescribeDevice(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleDescribeDevice(ctx, callRequest("describe_device", map[string]any{"id": "light-1"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "Device Info:\nName: Google Light\nCategory: Outdoor\nDevice: Smart Light", resultText(t, res))

	res, err = s.handleDescribeDevice(ctx, callRequest("describe_device", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
