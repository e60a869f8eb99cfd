package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/brayanj4y/code-assist/internal/project"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents inspect and edit the live
// editor session.
type Server struct {
	store *project.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over the given project store.
func NewServer(store *project.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"codeassist",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(getSourceTool, s.handleGetSource)
	s.mcp.AddTool(setSourceTool, s.handleSetSource)
	s.mcp.AddTool(renderPreviewTool, s.handleRenderPreview)
	s.mcp.AddTool(saveProjectTool, s.handleSaveProject)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
