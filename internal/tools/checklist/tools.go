package checklist

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterChecklistTools registers all checklist management tools with the MCP server
func RegisterChecklistTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// get_card_checklists tool
	getCardChecklistsTool := mcp.NewTool("get_card_checklists",
		mcp.WithDescription("Get all checklists on a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
	)
	s.AddTool(getCardChecklistsTool, tools.WrapWithInstrumentation("get_card_checklists", handleGetCardChecklists, sc))

	// create_checklist tool
	createChecklistTool := mcp.NewTool("create_checklist",
		mcp.WithDescription("Create a new checklist on a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the checklist"),
		),
		mcp.WithString("position",
			mcp.Description("Position of the checklist: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(createChecklistTool, tools.WrapWithInstrumentation("create_checklist", handleCreateChecklist, sc))

	// get_checklist tool
	getChecklistTool := mcp.NewTool("get_checklist",
		mcp.WithDescription("Get a checklist with its items"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist"),
		),
	)
	s.AddTool(getChecklistTool, tools.WrapWithInstrumentation("get_checklist", handleGetChecklist, sc))

	// update_checklist tool
	updateChecklistTool := mcp.NewTool("update_checklist",
		mcp.WithDescription("Rename or reposition a checklist"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist"),
		),
		mcp.WithString("name",
			mcp.Description("New name of the checklist (optional)"),
		),
		mcp.WithString("position",
			mcp.Description("New position: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(updateChecklistTool, tools.WrapWithInstrumentation("update_checklist", handleUpdateChecklist, sc))

	// delete_checklist tool
	deleteChecklistTool := mcp.NewTool("delete_checklist",
		mcp.WithDescription("Delete a checklist and all its items"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist to delete"),
		),
	)
	s.AddTool(deleteChecklistTool, tools.WrapWithInstrumentation("delete_checklist", handleDeleteChecklist, sc))

	// get_checklist_items tool
	getChecklistItemsTool := mcp.NewTool("get_checklist_items",
		mcp.WithDescription("Get the items of a checklist"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist"),
		),
	)
	s.AddTool(getChecklistItemsTool, tools.WrapWithInstrumentation("get_checklist_items", handleGetChecklistItems, sc))

	// add_checklist_item tool
	addChecklistItemTool := mcp.NewTool("add_checklist_item",
		mcp.WithDescription("Add an item to a checklist"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the item"),
		),
		mcp.WithBoolean("checked",
			mcp.Description("Whether the item starts checked (optional, default: false)"),
		),
		mcp.WithString("position",
			mcp.Description("Position of the item: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(addChecklistItemTool, tools.WrapWithInstrumentation("add_checklist_item", handleAddChecklistItem, sc))

	// update_checklist_item tool
	updateChecklistItemTool := mcp.NewTool("update_checklist_item",
		mcp.WithDescription("Update a checklist item. The card ID is required because items are addressed through their card."),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card the checklist belongs to"),
		),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist item"),
		),
		mcp.WithString("name",
			mcp.Description("New name of the item (optional)"),
		),
		mcp.WithString("state",
			mcp.Description("Item state: 'complete' or 'incomplete' (optional)"),
		),
		mcp.WithString("position",
			mcp.Description("New position: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(updateChecklistItemTool, tools.WrapWithInstrumentation("update_checklist_item", handleUpdateChecklistItem, sc))

	// delete_checklist_item tool
	deleteChecklistItemTool := mcp.NewTool("delete_checklist_item",
		mcp.WithDescription("Remove an item from a checklist"),
		mcp.WithString("checklist_id",
			mcp.Required(),
			mcp.Description("The ID of the checklist"),
		),
		mcp.WithString("item_id",
			mcp.Required(),
			mcp.Description("The ID of the item to remove"),
		),
	)
	s.AddTool(deleteChecklistItemTool, tools.WrapWithInstrumentation("delete_checklist_item", handleDeleteChecklistItem, sc))

	return nil
}
