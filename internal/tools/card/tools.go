package card

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterCardTools registers all card management tools with the MCP server
func RegisterCardTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// list_cards tool
	listCardsTool := mcp.NewTool("list_cards",
		mcp.WithDescription("List all cards in a list, ordered by position"),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("The ID of the list"),
		),
	)
	s.AddTool(listCardsTool, tools.WrapWithInstrumentation("list_cards", handleListCards, sc))

	// get_card tool
	getCardTool := mcp.NewTool("get_card",
		mcp.WithDescription("Get detailed information about a specific card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
	)
	s.AddTool(getCardTool, tools.WrapWithInstrumentation("get_card", handleGetCard, sc))

	// create_card tool
	createCardTool := mcp.NewTool("create_card",
		mcp.WithDescription("Create a new card in a list"),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("The ID of the list"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the card"),
		),
		mcp.WithString("description",
			mcp.Description("Description of the card (optional)"),
		),
		mcp.WithString("position",
			mcp.Description("Position of the card: 'top', 'bottom', or a positive number (optional)"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in ISO 8601 format (optional)"),
		),
	)
	s.AddTool(createCardTool, tools.WrapWithInstrumentation("create_card", handleCreateCard, sc))

	// update_card tool
	updateCardTool := mcp.NewTool("update_card",
		mcp.WithDescription("Update a card. Only provided fields are changed; at least one field is required."),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("name",
			mcp.Description("New name of the card (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("New description of the card (optional)"),
		),
		mcp.WithString("list_id",
			mcp.Description("Move the card to this list (optional)"),
		),
		mcp.WithString("position",
			mcp.Description("New position: 'top', 'bottom', or a positive number (optional)"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in ISO 8601 format, or 'null' to clear it (optional)"),
		),
		mcp.WithBoolean("due_complete",
			mcp.Description("Whether the due date is complete (optional)"),
		),
	)
	s.AddTool(updateCardTool, tools.WrapWithInstrumentation("update_card", handleUpdateCard, sc))

	// delete_card tool
	deleteCardTool := mcp.NewTool("delete_card",
		mcp.WithDescription("Permanently delete a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card to delete"),
		),
	)
	s.AddTool(deleteCardTool, tools.WrapWithInstrumentation("delete_card", handleDeleteCard, sc))

	// move_card tool
	moveCardTool := mcp.NewTool("move_card",
		mcp.WithDescription("Move a card to a different list"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("The ID of the destination list"),
		),
		mcp.WithString("position",
			mcp.Description("Position in the destination list: 'top', 'bottom', or a positive number (optional)"),
		),
	)
	s.AddTool(moveCardTool, tools.WrapWithInstrumentation("move_card", handleMoveCard, sc))

	// set_card_due_date tool
	setDueDateTool := mcp.NewTool("set_card_due_date",
		mcp.WithDescription("Set or replace the due date on a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("due_date",
			mcp.Required(),
			mcp.Description("Due date in ISO 8601 format"),
		),
	)
	s.AddTool(setDueDateTool, tools.WrapWithInstrumentation("set_card_due_date", handleSetCardDueDate, sc))

	// mark_due_date_complete tool
	markDueCompleteTool := mcp.NewTool("mark_due_date_complete",
		mcp.WithDescription("Mark a card's due date as complete or incomplete"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithBoolean("complete",
			mcp.Description("Whether the due date is complete (default: true)"),
		),
	)
	s.AddTool(markDueCompleteTool, tools.WrapWithInstrumentation("mark_due_date_complete", handleMarkDueDateComplete, sc))

	// clear_card_due_date tool
	clearDueDateTool := mcp.NewTool("clear_card_due_date",
		mcp.WithDescription("Remove the due date from a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
	)
	s.AddTool(clearDueDateTool, tools.WrapWithInstrumentation("clear_card_due_date", handleClearCardDueDate, sc))

	return nil
}
