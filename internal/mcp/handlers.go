package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/brayanj4y/code-assist/internal/preview"
	"github.com/brayanj4y/code-assist/internal/project"
)

// handleListProjects returns the saved-project catalog.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing projects failed: %v", err)), nil
	}
	if len(projects) == 0 {
		return mcp.NewToolResultText("No saved projects yet."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d saved project(s):\n", len(projects)))
	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("- %s (last modified %s)\n", p.Name, p.LastModified.Format("2006-01-02 15:04:05")))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSource reads one buffer of the live session.
func (s *Server) handleGetSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: file"), nil
	}
	id := project.FileID(file)
	if !project.ValidFile(id) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown file %q, expected html, css, or js", file)), nil
	}

	return mcp.NewToolResultText(s.store.Session().Sources.Get(id)), nil
}

// handleSetSource replaces one buffer of the live session.
func (s *Server) handleSetSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: file"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}
	id := project.FileID(file)
	if !project.ValidFile(id) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown file %q, expected html, css, or js", file)), nil
	}

	s.store.UpdateBuffer(id, content)
	return mcp.NewToolResultText(fmt.Sprintf("Updated %s buffer (%d bytes).", file, len(content))), nil
}

// handleRenderPreview returns the combined preview document for the
// current session.
func (s *Server) handleRenderPreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := preview.Synthesize(s.store.Session().Sources)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("preview synthesis failed: %v", err)), nil
	}
	return mcp.NewToolResultText(doc), nil
}

// handleSaveProject saves the current session under the given name.
func (s *Server) handleSaveProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	p, err := s.store.SaveProject(ctx, name)
	if err != nil {
		if errors.Is(err, project.ErrEmptyName) {
			return mcp.NewToolResultError("please enter a valid project name"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Saved %q at %s.", p.Name, p.LastModified.Format("2006-01-02 15:04:05"))), nil
}
