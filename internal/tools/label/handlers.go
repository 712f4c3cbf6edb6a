package label

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// jsonResult marshals a value for tool output.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetBoardLabels handles fetching the labels defined on a board
func handleGetBoardLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	boardID, _ := args["board_id"].(string)
	if boardID == "" {
		return mcp.NewToolResultError("board_id parameter is required"), nil
	}

	labels, err := sc.TrelloClient().GetBoardLabels(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get board labels: %v", err)), nil
	}

	return jsonResult(labels)
}

// handleCreateLabel handles creating a label on a board
func handleCreateLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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
	color, _ := args["color"].(string)

	label, err := sc.TrelloClient().CreateLabel(ctx, boardID, name, color)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create label: %v", err)), nil
	}

	return jsonResult(label)
}

// handleGetLabel handles fetching a single label
func handleGetLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelID, _ := args["label_id"].(string)
	if labelID == "" {
		return mcp.NewToolResultError("label_id parameter is required"), nil
	}

	label, err := sc.TrelloClient().GetLabel(ctx, labelID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get label: %v", err)), nil
	}

	return jsonResult(label)
}

// handleUpdateLabel handles renaming or recoloring a label
func handleUpdateLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	labelID, _ := args["label_id"].(string)
	if labelID == "" {
		return mcp.NewToolResultError("label_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	color, _ := args["color"].(string)

	label, err := sc.TrelloClient().UpdateLabel(ctx, labelID, name, color)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update label: %v", err)), nil
	}

	return jsonResult(label)
}

// handleDeleteLabel handles deleting a label
func handleDeleteLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "delete"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	labelID, _ := args["label_id"].(string)
	if labelID == "" {
		return mcp.NewToolResultError("label_id parameter is required"), nil
	}

	if err := sc.TrelloClient().DeleteLabel(ctx, labelID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete label: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label %s deleted", labelID)), nil
}

// handleGetCardLabels handles fetching the labels assigned to a card
func handleGetCardLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	labels, err := sc.TrelloClient().GetCardLabels(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get card labels: %v", err)), nil
	}

	return jsonResult(labels)
}

// handleAddLabelToCard handles assigning a label to a card
func handleAddLabelToCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	labelID, _ := args["label_id"].(string)
	if labelID == "" {
		return mcp.NewToolResultError("label_id parameter is required"), nil
	}

	if err := sc.TrelloClient().AddLabelToCard(ctx, cardID, labelID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add label to card: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label %s added to card %s", labelID, cardID)), nil
}

// handleRemoveLabelFromCard handles unassigning a label from a card
func handleRemoveLabelFromCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	labelID, _ := args["label_id"].(string)
	if labelID == "" {
		return mcp.NewToolResultError("label_id parameter is required"), nil
	}

	if err := sc.TrelloClient().RemoveLabelFromCard(ctx, cardID, labelID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to remove label from card: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label %s removed from card %s", labelID, cardID)), nil
}

// handleSetCardLabels handles replacing the full label set of a card
func handleSetCardLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	labelIDsStr, ok := args["label_ids"].(string)
	if !ok {
		return mcp.NewToolResultError("label_ids parameter is required"), nil
	}

	var labelIDs []string
	for _, id := range strings.Split(labelIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			labelIDs = append(labelIDs, id)
		}
	}

	card, err := sc.TrelloClient().SetCardLabels(ctx, cardID, labelIDs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set card labels: %v", err)), nil
	}

	return jsonResult(card)
}
