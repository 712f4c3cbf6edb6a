package checklist

import (
	"context"
	"encoding/json"
	"fmt"

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

// handleGetCardChecklists handles fetching all checklists on a card
func handleGetCardChecklists(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	checklists, err := sc.TrelloClient().GetCardChecklists(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get card checklists: %v", err)), nil
	}

	return jsonResult(checklists)
}

// handleCreateChecklist handles creating a checklist on a card
func handleCreateChecklist(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	position, _ := args["position"].(string)

	checklist, err := sc.TrelloClient().CreateChecklist(ctx, cardID, name, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create checklist: %v", err)), nil
	}

	return jsonResult(checklist)
}

// handleGetChecklist handles fetching a single checklist
func handleGetChecklist(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}

	checklist, err := sc.TrelloClient().GetChecklist(ctx, checklistID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get checklist: %v", err)), nil
	}

	return jsonResult(checklist)
}

// handleUpdateChecklist handles renaming or repositioning a checklist
func handleUpdateChecklist(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	position, _ := args["position"].(string)

	checklist, err := sc.TrelloClient().UpdateChecklist(ctx, checklistID, name, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update checklist: %v", err)), nil
	}

	return jsonResult(checklist)
}

// handleDeleteChecklist handles deleting a checklist
func handleDeleteChecklist(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "delete"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}

	if err := sc.TrelloClient().DeleteChecklist(ctx, checklistID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete checklist: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Checklist %s deleted", checklistID)), nil
}

// handleGetChecklistItems handles fetching the items of a checklist
func handleGetChecklistItems(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}

	items, err := sc.TrelloClient().GetChecklistItems(ctx, checklistID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get checklist items: %v", err)), nil
	}

	return jsonResult(items)
}

// handleAddChecklistItem handles appending an item to a checklist
func handleAddChecklistItem(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	checked, _ := args["checked"].(bool)
	position, _ := args["position"].(string)

	item, err := sc.TrelloClient().AddChecklistItem(ctx, checklistID, name, checked, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add checklist item: %v", err)), nil
	}

	return jsonResult(item)
}

// handleUpdateChecklistItem handles updating a checklist item through its card
func handleUpdateChecklistItem(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	itemID, _ := args["item_id"].(string)
	if itemID == "" {
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	state, _ := args["state"].(string)
	position, _ := args["position"].(string)

	item, err := sc.TrelloClient().UpdateChecklistItem(ctx, cardID, itemID, name, state, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update checklist item: %v", err)), nil
	}

	return jsonResult(item)
}

// handleDeleteChecklistItem handles removing an item from a checklist
func handleDeleteChecklistItem(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "delete"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	checklistID, _ := args["checklist_id"].(string)
	if checklistID == "" {
		return mcp.NewToolResultError("checklist_id parameter is required"), nil
	}
	itemID, _ := args["item_id"].(string)
	if itemID == "" {
		return mcp.NewToolResultError("item_id parameter is required"), nil
	}

	if err := sc.TrelloClient().DeleteChecklistItem(ctx, checklistID, itemID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete checklist item: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Checklist item %s deleted", itemID)), nil
}
