package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/homehub/pkg/device"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := GetHealthOutput{
		Status:     "healthy",
		Controller: "connected",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if !s.controller.IsConnected() {
		out.Status = "unhealthy"
		out.Controller = "disconnected"
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.controller.ListDevices(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list devices: %s", err)), nil
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for i := range devices {
		info := DeviceToInfo(&devices[i])
		if state, err := s.controller.GetDeviceState(ctx, devices[i].ID); err == nil {
			info.State = state
		}
		infos = append(infos, info)
	}

	return mcp.NewToolResultText(formatJSON(ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	})), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.controller.GetDevice(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	info := DeviceToInfo(d)
	if state, err := s.controller.GetDeviceState(ctx, d.ID); err == nil {
		info.State = state
	}

	return mcp.NewToolResultText(formatJSON(GetDeviceOutput{Device: info})), nil
}

func (s *Server) handleGetDeviceState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := s.controller.GetDeviceState(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get device state: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(DeviceStateOutput{
		DeviceID: id,
		State:    state,
	})), nil
}

func (s *Server) handleDescribeDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := s.controller.Describe(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to describe device: %s", err)), nil
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleExecuteAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload := map[string]any{}
	for k, v := range request.GetArguments() {
		if k != "id" {
			payload[k] = v
		}
	}

	return s.execute(ctx, id, payload)
}

func (s *Server) handleTurnOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.execute(ctx, id, map[string]any{"action": string(device.ActionTurnOn)})
}

func (s *Server) handleTurnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.execute(ctx, id, map[string]any{"action": string(device.ActionTurnOff)})
}

func (s *Server) handleGetHubStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.controller.HubStatus(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get hub status: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(HubStatusOutput{Hub: status})), nil
}

func (s *Server) handleTurnOffAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.controller.TurnOffAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to turn off devices: %s", err)), nil
	}
	return mcp.NewToolResultText(formatJSON(HubStatusOutput{Hub: status})), nil
}

// --- helpers ---

// execute validates payload against the device's action schema and runs it.
func (s *Server) execute(ctx context.Context, id string, payload map[string]any) (*mcp.CallToolResult, error) {
	d, err := s.controller.GetDevice(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	cmd, err := s.validator.ValidateCommand(d, payload)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := s.controller.Execute(ctx, d.ID, cmd.Action, cmd.Repeat)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to execute %s: %s", cmd.Action, err)), nil
	}

	return mcp.NewToolResultText(formatJSON(DeviceStateOutput{
		DeviceID: d.ID,
		Action:   string(cmd.Action),
		State:    state,
	})), nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
