package list

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterListTools registers all list management tools with the MCP server
func RegisterListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// get_board_lists tool
	getBoardListsTool := mcp.NewTool("get_board_lists",
		mcp.WithDescription("Get all lists on a board, ordered by position"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("The ID of the board"),
		),
	)
	s.AddTool(getBoardListsTool, tools.WrapWithInstrumentation("get_board_lists", handleGetBoardLists, sc))

	// create_list tool
	createListTool := mcp.NewTool("create_list",
		mcp.WithDescription("Create a new list on a board"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("The ID of the board"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the list"),
		),
		mcp.WithString("position",
			mcp.Description("Position of the list: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(createListTool, tools.WrapWithInstrumentation("create_list", handleCreateList, sc))

	// archive_list tool
	archiveListTool := mcp.NewTool("archive_list",
		mcp.WithDescription("Archive a list. Archiving an already-archived list succeeds."),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("The ID of the list to archive"),
		),
	)
	s.AddTool(archiveListTool, tools.WrapWithInstrumentation("archive_list", handleArchiveList, sc))

	return nil
}
