package card

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// cardResult marshals a card result for tool output.
func cardResult(card interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal card: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListCards handles listing the cards in a list
func handleListCards(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	listID, _ := args["list_id"].(string)
	if listID == "" {
		return mcp.NewToolResultError("list_id parameter is required"), nil
	}

	cards, err := sc.TrelloClient().ListCards(ctx, listID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list cards: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal cards: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetCard handles fetching a single card
func handleGetCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	card, err := sc.TrelloClient().GetCard(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get card: %v", err)), nil
	}

	return cardResult(card)
}

// handleCreateCard handles creating a new card
func handleCreateCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	listID, _ := args["list_id"].(string)
	if listID == "" {
		return mcp.NewToolResultError("list_id parameter is required"), nil
	}
	name, _ := args["name"].(string)
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	description, _ := args["description"].(string)
	position, _ := args["position"].(string)
	dueDate, _ := args["due_date"].(string)

	card, err := sc.TrelloClient().CreateCard(ctx, listID, name, description, position, dueDate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create card: %v", err)), nil
	}

	return cardResult(card)
}

// handleUpdateCard handles partial card updates
func handleUpdateCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	var upd trello.CardUpdate
	upd.Name, _ = args["name"].(string)
	upd.Desc, _ = args["description"].(string)
	upd.IDList, _ = args["list_id"].(string)
	upd.Pos, _ = args["position"].(string)
	if dueDate, ok := args["due_date"].(string); ok && dueDate != "" {
		upd.Due = &dueDate
	}
	if dueComplete, ok := args["due_complete"].(bool); ok {
		upd.DueComplete = &dueComplete
	}

	card, err := sc.TrelloClient().UpdateCard(ctx, cardID, upd)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update card: %v", err)), nil
	}

	return cardResult(card)
}

// handleDeleteCard handles permanent card deletion
func handleDeleteCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "delete"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	if err := sc.TrelloClient().DeleteCard(ctx, cardID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete card: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Card %s deleted", cardID)), nil
}

// handleMoveCard handles moving a card between lists
func handleMoveCard(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "move"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	listID, _ := args["list_id"].(string)
	if listID == "" {
		return mcp.NewToolResultError("list_id parameter is required"), nil
	}
	position, _ := args["position"].(string)

	card, err := sc.TrelloClient().MoveCard(ctx, cardID, listID, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to move card: %v", err)), nil
	}

	return cardResult(card)
}

// handleSetCardDueDate handles setting or replacing a card's due date
func handleSetCardDueDate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	dueDate, _ := args["due_date"].(string)
	if dueDate == "" {
		return mcp.NewToolResultError("due_date parameter is required"), nil
	}

	card, err := sc.TrelloClient().SetCardDueDate(ctx, cardID, dueDate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set card due date: %v", err)), nil
	}

	return cardResult(card)
}

// handleMarkDueDateComplete handles toggling a card's due date completion
func handleMarkDueDateComplete(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	complete := true
	if val, ok := args["complete"].(bool); ok {
		complete = val
	}

	card, err := sc.TrelloClient().MarkDueDateComplete(ctx, cardID, complete)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to mark due date complete: %v", err)), nil
	}

	return cardResult(card)
}

// handleClearCardDueDate handles removing a card's due date
func handleClearCardDueDate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "update"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	card, err := sc.TrelloClient().ClearCardDueDate(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear card due date: %v", err)), nil
	}

	return cardResult(card)
}
