package attachment

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

// handleGetCardAttachments handles fetching the attachments on a card
func handleGetCardAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}

	attachments, err := sc.TrelloClient().GetCardAttachments(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get card attachments: %v", err)), nil
	}

	return jsonResult(attachments)
}

// handleGetAttachment handles fetching a single attachment
func handleGetAttachment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	attachmentID, _ := args["attachment_id"].(string)
	if attachmentID == "" {
		return mcp.NewToolResultError("attachment_id parameter is required"), nil
	}

	attachment, err := sc.TrelloClient().GetAttachment(ctx, cardID, attachmentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get attachment: %v", err)), nil
	}

	return jsonResult(attachment)
}

// handleAddAttachmentURL handles attaching a URL to a card
func handleAddAttachmentURL(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "create"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	attachmentURL, _ := args["url"].(string)
	if attachmentURL == "" {
		return mcp.NewToolResultError("url parameter is required"), nil
	}
	name, _ := args["name"].(string)

	attachment, err := sc.TrelloClient().AddAttachmentURL(ctx, cardID, attachmentURL, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add attachment: %v", err)), nil
	}

	return jsonResult(attachment)
}

// handleDeleteAttachment handles deleting an attachment from a card
func handleDeleteAttachment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if result := tools.CheckMutatingOperation(sc, "delete"); result != nil {
		return result, nil
	}

	args := request.GetArguments()

	cardID, _ := args["card_id"].(string)
	if cardID == "" {
		return mcp.NewToolResultError("card_id parameter is required"), nil
	}
	attachmentID, _ := args["attachment_id"].(string)
	if attachmentID == "" {
		return mcp.NewToolResultError("attachment_id parameter is required"), nil
	}

	if err := sc.TrelloClient().DeleteAttachment(ctx, cardID, attachmentID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete attachment: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Attachment %s deleted from card %s", attachmentID, cardID)), nil
}
