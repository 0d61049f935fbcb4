package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health status of the hub controller"),
		),
		s.handleGetHealth,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List the hub's television and light with their current state"),
		),
		s.handleListDevices,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get detailed information about a device by ID or name"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
		),
		s.handleGetDevice,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_device_state",
			mcp.WithDescription("Get the current state of a device (status, volume, channel, brightness, on_count)"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
		),
		s.handleGetDeviceState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("describe_device",
			mcp.WithDescription("Describe a device: its name, category and type"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
		),
		s.handleDescribeDevice,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("execute_action",
			mcp.WithDescription("Run an action against a device. Television: turn_on, turn_off, volume_up, volume_down, channel_up, channel_down. Light: turn_on, turn_off, brightness_up, brightness_down. Adjustments only take effect while the hub counts the device as on exactly once."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action name"),
			),
			mcp.WithNumber("repeat",
				mcp.Description("How many times to run the action (default 1, max 100)"),
			),
		),
		s.handleExecuteAction,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_on",
			mcp.WithDescription("Turn on a device"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
		),
		s.handleTurnOn,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_off",
			mcp.WithDescription("Turn off a device"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID or name"),
			),
		),
		s.handleTurnOff,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_hub_status",
			mcp.WithDescription("Get the hub's per-device on-counts and a snapshot of every device"),
		),
		s.handleGetHubStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("turn_off_all_devices",
			mcp.WithDescription("Turn off every device the hub counts as on exactly once"),
		),
		s.handleTurnOffAll,
	)
}
