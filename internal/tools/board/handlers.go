package board

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// handleListBoards handles listing all boards for the authenticated user
func handleListBoards(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	boards, err := sc.TrelloClient().ListBoards(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list boards: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(boards, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal boards: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetBoard handles fetching a single board
func handleGetBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, _ := args["board_id"].(string)
	if boardID == "" {
		return mcp.NewToolResultError("board_id parameter is required"), nil
	}

	board, err := sc.TrelloClient().GetBoard(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get board: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal board: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleCreateBoard handles creating a new board
func handleCreateBoard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	description, _ := args["description"].(string)

	board, err := sc.TrelloClient().CreateBoard(ctx, name, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create board: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal board: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
