package label

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools"
)

// RegisterLabelTools registers all label management tools with the MCP server
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// get_board_labels tool
	getBoardLabelsTool := mcp.NewTool("get_board_labels",
		mcp.WithDescription("Get the labels defined on a board"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("The ID of the board"),
		),
	)
	s.AddTool(getBoardLabelsTool, tools.WrapWithInstrumentation("get_board_labels", handleGetBoardLabels, sc))

	// create_label tool
	createLabelTool := mcp.NewTool("create_label",
		mcp.WithDescription("Create a new label on a board"),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("The ID of the board"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the label"),
		),
		mcp.WithString("color",
			mcp.Description("Label color: green, yellow, orange, red, purple, blue, sky, lime, pink, or black (optional)"),
		),
	)
	s.AddTool(createLabelTool, tools.WrapWithInstrumentation("create_label", handleCreateLabel, sc))

	// get_label tool
	getLabelTool := mcp.NewTool("get_label",
		mcp.WithDescription("Get a single label"),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("The ID of the label"),
		),
	)
	s.AddTool(getLabelTool, tools.WrapWithInstrumentation("get_label", handleGetLabel, sc))

	// update_label tool
	updateLabelTool := mcp.NewTool("update_label",
		mcp.WithDescription("Rename or recolor a label"),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("The ID of the label"),
		),
		mcp.WithString("name",
			mcp.Description("New name of the label (optional)"),
		),
		mcp.WithString("color",
			mcp.Description("New color: green, yellow, orange, red, purple, blue, sky, lime, pink, or black (optional)"),
		),
	)
	s.AddTool(updateLabelTool, tools.WrapWithInstrumentation("update_label", handleUpdateLabel, sc))

	// delete_label tool
	deleteLabelTool := mcp.NewTool("delete_label",
		mcp.WithDescription("Delete a label from its board and all cards"),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("The ID of the label to delete"),
		),
	)
	s.AddTool(deleteLabelTool, tools.WrapWithInstrumentation("delete_label", handleDeleteLabel, sc))

	// get_card_labels tool
	getCardLabelsTool := mcp.NewTool("get_card_labels",
		mcp.WithDescription("Get the labels assigned to a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
	)
	s.AddTool(getCardLabelsTool, tools.WrapWithInstrumentation("get_card_labels", handleGetCardLabels, sc))

	// add_label_to_card tool
	addLabelToCardTool := mcp.NewTool("add_label_to_card",
		mcp.WithDescription("Assign an existing label to a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("The ID of the label"),
		),
	)
	s.AddTool(addLabelToCardTool, tools.WrapWithInstrumentation("add_label_to_card", handleAddLabelToCard, sc))

	// remove_label_from_card tool
	removeLabelFromCardTool := mcp.NewTool("remove_label_from_card",
		mcp.WithDescription("Unassign a label from a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("The ID of the label"),
		),
	)
	s.AddTool(removeLabelFromCardTool, tools.WrapWithInstrumentation("remove_label_from_card", handleRemoveLabelFromCard, sc))

	// set_card_labels tool
	setCardLabelsTool := mcp.NewTool("set_card_labels",
		mcp.WithDescription("Replace the full label set of a card"),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("The ID of the card"),
		),
		mcp.WithString("label_ids",
			mcp.Required(),
			mcp.Description("Comma-separated label IDs. An empty string removes all labels."),
		),
	)
	s.AddTool(setCardLabelsTool, tools.WrapWithInstrumentation("set_card_labels", handleSetCardLabels, sc))

	return nil
}
