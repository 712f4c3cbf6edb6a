package attachment

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterAttachmentTools registers all attachment tools with the MCP server
func RegisterAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// get_card_attachments tool
	getCardAttachmentsTool := mcp.NewTool("get_card_attachments",
		mcp.WithDescription("Get all attachments on a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
	)
	s.AddTool(getCardAttachmentsTool, tools.WrapWithInstrumentation("get_card_attachments", handleGetCardAttachments, sc))

	// get_attachment tool
	getAttachmentTool := mcp.NewTool("get_attachment",
		mcp.WithDescription("Get details of a single attachment on a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("The ID of the attachment"),
		),
	)
	s.AddTool(getAttachmentTool, tools.WrapWithInstrumentation("get_attachment", handleGetAttachment, sc))

	// add_attachment_url tool
	addAttachmentURLTool := mcp.NewTool("add_attachment_url",
		mcp.WithDescription("Attach a URL to a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL to attach"),
		),
		mcp.WithString("name",
			mcp.Description("Display name for the attachment (optional)"),
		),
	)
	s.AddTool(addAttachmentURLTool, tools.WrapWithInstrumentation("add_attachment_url", handleAddAttachmentURL, sc))

	// delete_attachment tool
	deleteAttachmentTool := mcp.NewTool("delete_attachment",
		mcp.WithDescription("Delete an attachment from a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("The ID of the attachment to delete"),
		),
	)
	s.AddTool(deleteAttachmentTool, tools.WrapWithInstrumentation("delete_attachment", handleDeleteAttachment, sc))

	return nil
}
