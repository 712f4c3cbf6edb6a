package list

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// handleGetBoardLists handles fetching the lists on a board
func handleGetBoardLists(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, _ := args["board_id"].(string)
	if boardID == "" {
		return mcp.NewToolResultError("board_id parameter is required"), nil
	}

	lists, err := sc.TrelloClient().GetBoardLists(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get board lists: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal lists: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleCreateList handles creating a new list on a board
func handleCreateList(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	boardID, _ := args["board_id"].(string)
	if boardID == "" {
		return mcp.NewToolResultError("board_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	position, _ := args["position"].(string)

	list, err := sc.TrelloClient().CreateList(ctx, boardID, name, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create list: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal list: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleArchiveList handles archiving a list
func handleArchiveList(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "archive"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	listID, _ := args["list_id"].(string)
	if listID == "" {
		return mcp.NewToolResultError("list_id parameter is required"), nil
	}

	list, err := sc.TrelloClient().ArchiveList(ctx, listID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to archive list: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal list: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
