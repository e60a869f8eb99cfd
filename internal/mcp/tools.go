package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List all saved projects with their last-modified timestamps."),
)

// getSourceTool defines the get_source MCP tool.
var getSourceTool = mcp.NewTool("get_source",
	mcp.WithDescription("Read one of the three source buffers of the live editor session."),
	mcp.WithString("file",
		mcp.Required(),
		mcp.Description("Which buffer to read"),
		mcp.Enum("html", "css", "js"),
	),
)

// setSourceTool defines the set_source MCP tool.
var setSourceTool = mcp.NewTool("set_source",
	mcp.WithDescription("Replace the contents of one source buffer of the live editor session."),
	mcp.WithString("file",
		mcp.Required(),
		mcp.Description("Which buffer to write"),
		mcp.Enum("html", "css", "js"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("New buffer contents"),
	),
)

// renderPreviewTool defines the render_preview MCP tool.
var renderPreviewTool = mcp.NewTool("render_preview",
	mcp.WithDescription("Synthesize the combined preview document for the current session and return it as HTML."),
)

// saveProjectTool defines the save_project MCP tool.
var saveProjectTool = mcp.NewTool("save_project",
	mcp.WithDescription("Save the current session into the project catalog under the given name, overwriting any existing project with that name."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Project name"),
	),
)
