package trello

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Colors Trello accepts for labels. An empty color means no color.
var labelColors = map[string]bool{
	"green": true, "yellow": true, "orange": true, "red": true,
	"purple": true, "blue": true, "sky": true, "lime": true,
	"pink": true, "black": true,
}

// GetBoardLabels returns the labels defined on a board.
func (c *httpClient) GetBoardLabels(ctx context.Context, boardID string) ([]Label, error) {
	if boardID == "" {
		return nil, newValidationError("get_board_labels", "board_id")
	}

	var labels []Label
	if err := c.do(ctx, "get_board_labels", http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/labels", boardID, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a label on a board. color must be one of Trello's
// named colors or empty.
func (c *httpClient) CreateLabel(ctx context.Context, boardID, name, color string) (*Label, error) {
	if boardID == "" {
		return nil, newValidationError("create_label", "board_id")
	}
	if name == "" {
		return nil, newValidationError("create_label", "name")
	}
	if err := validateLabelColor("create_label", boardID, color); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("idBoard", boardID)
	query.Set("name", name)
	query.Set("color", color)

	var label Label
	if err := c.do(ctx, "create_label", http.MethodPost, "/labels", boardID, query, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// GetLabel returns a single label by identifier.
func (c *httpClient) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	if labelID == "" {
		return nil, newValidationError("get_label", "label_id")
	}

	var label Label
	if err := c.do(ctx, "get_label", http.MethodGet, "/labels/"+url.PathEscape(labelID), labelID, nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel renames or recolors a label. Empty fields are left
// untouched; an entirely empty update is a validation error.
func (c *httpClient) UpdateLabel(ctx context.Context, labelID, name, color string) (*Label, error) {
	if labelID == "" {
		return nil, newValidationError("update_label", "label_id")
	}
	if name == "" && color == "" {
		return nil, &APIError{
			Op:    "update_label",
			ID:    labelID,
			Kind:  ErrValidation,
			Cause: errNoUpdateFields,
		}
	}
	if err := validateLabelColor("update_label", labelID, color); err != nil {
		return nil, err
	}

	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if color != "" {
		query.Set("color", color)
	}

	var label Label
	if err := c.do(ctx, "update_label", http.MethodPut, "/labels/"+url.PathEscape(labelID), labelID, query, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel removes a label from its board and every card carrying it.
func (c *httpClient) DeleteLabel(ctx context.Context, labelID string) error {
	if labelID == "" {
		return newValidationError("delete_label", "label_id")
	}
	return c.do(ctx, "delete_label", http.MethodDelete, "/labels/"+url.PathEscape(labelID), labelID, nil, nil)
}

// GetCardLabels returns the labels assigned to a card.
func (c *httpClient) GetCardLabels(ctx context.Context, cardID string) ([]Label, error) {
	if cardID == "" {
		return nil, newValidationError("get_card_labels", "card_id")
	}

	var labels []Label
	if err := c.do(ctx, "get_card_labels", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/labels", cardID, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// AddLabelToCard assigns an existing label to a card.
func (c *httpClient) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	if cardID == "" {
		return newValidationError("add_label_to_card", "card_id")
	}
	if labelID == "" {
		return newValidationError("add_label_to_card", "label_id")
	}

	query := url.Values{}
	query.Set("value", labelID)
	return c.do(ctx, "add_label_to_card", http.MethodPost, "/cards/"+url.PathEscape(cardID)+"/idLabels", cardID, query, nil)
}

// RemoveLabelFromCard unassigns a label from a card.
func (c *httpClient) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	if cardID == "" {
		return newValidationError("remove_label_from_card", "card_id")
	}
	if labelID == "" {
		return newValidationError("remove_label_from_card", "label_id")
	}
	path := "/cards/" + url.PathEscape(cardID) + "/idLabels/" + url.PathEscape(labelID)
	return c.do(ctx, "remove_label_from_card", http.MethodDelete, path, cardID, nil, nil)
}

// SetCardLabels replaces the full label set of a card. An empty slice
// clears all labels.
func (c *httpClient) SetCardLabels(ctx context.Context, cardID string, labelIDs []string) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("set_card_labels", "card_id")
	}

	query := url.Values{}
	query.Set("idLabels", strings.Join(labelIDs, ","))

	var card Card
	if err := c.do(ctx, "set_card_labels", http.MethodPut, "/cards/"+url.PathEscape(cardID), cardID, query, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func validateLabelColor(op, id, color string) error {
	if color == "" || labelColors[color] {
		return nil
	}
	return &APIError{
		Op:    op,
		ID:    id,
		Kind:  ErrValidation,
		Cause: errInvalidLabelColor(color),
	}
}
