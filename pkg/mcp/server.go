package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/homehub/pkg/device"
	"github.com/urmzd/homehub/pkg/device/schema"
)

// Server exposes the hub controller as MCP tools
type Server struct {
	mcpServer  *server.MCPServer
	controller device.Controller
	validator  *schema.Validator
}

// NewServer creates a new MCP server for hub control
func NewServer(controller device.Controller, validator *schema.Validator, version string) *Server {
	s := &Server{
		controller: controller,
		validator:  validator,
	}

	s.mcpServer = server.NewMCPServer(
		"homehub",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
