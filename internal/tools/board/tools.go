package board

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterBoardTools registers all board management tools with the MCP server
func RegisterBoardTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// list_boards tool
	listBoardsTool := mcp.NewTool("list_boards",
		mcp.WithDescription("List all boards for the authenticated user"),
	)
	s.AddTool(listBoardsTool, tools.WrapWithInstrumentation("list_boards", handleListBoards, sc))

	// get_board tool
	getBoardTool := mcp.NewTool("get_board",
		mcp.WithDescription("Get detailed information about a specific board"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("The ID of the board"),
		),
	)
	s.AddTool(getBoardTool, tools.WrapWithInstrumentation("get_board", handleGetBoard, sc))

	// create_board tool
	createBoardTool := mcp.NewTool("create_board",
		mcp.WithDescription("Create a new board"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the board"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the board (optional)"),
		),
	)
	s.AddTool(createBoardTool, tools.WrapWithInstrumentation("create_board", handleCreateBoard, sc))

	return nil
}
