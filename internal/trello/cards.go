package trello

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListCards returns the open cards in a list, ordered by position
// ascending.
func (c *httpClient) ListCards(ctx context.Context, listID string) ([]Card, error) {
	if listID == "" {
		return nil, newValidationError("list_cards", "list_id")
	}

	var cards []Card
	if err := c.do(ctx, "list_cards", http.MethodGet, "/lists/"+url.PathEscape(listID)+"/cards", listID, nil, &cards); err != nil {
		return nil, err
	}
	sortCardsByPos(cards)
	return cards, nil
}

// GetCard returns a single card by identifier.
func (c *httpClient) GetCard(ctx context.Context, cardID string) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("get_card", "card_id")
	}

	var card Card
	if err := c.do(ctx, "get_card", http.MethodGet, "/cards/"+url.PathEscape(cardID), cardID, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates a card in a list. desc, pos, and due are optional;
// due is an ISO 8601 timestamp.
func (c *httpClient) CreateCard(ctx context.Context, listID, name, desc, pos, due string) (*Card, error) {
	if listID == "" {
		return nil, newValidationError("create_card", "list_id")
	}
	if name == "" {
		return nil, newValidationError("create_card", "name")
	}

	query := url.Values{}
	query.Set("idList", listID)
	query.Set("name", name)
	if desc != "" {
		query.Set("desc", desc)
	}
	if pos != "" {
		query.Set("pos", pos)
	}
	if due != "" {
		query.Set("due", due)
	}

	var card Card
	if err := c.do(ctx, "create_card", http.MethodPost, "/cards", listID, query, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies a partial update to a card. An empty update is a
// validation error rather than a silent no-op round-trip.
func (c *httpClient) UpdateCard(ctx context.Context, cardID string, upd CardUpdate) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("update_card", "card_id")
	}
	if upd.IsZero() {
		return nil, &APIError{
			Op:    "update_card",
			ID:    cardID,
			Kind:  ErrValidation,
			Cause: errNoUpdateFields,
		}
	}

	query := url.Values{}
	if upd.Name != "" {
		query.Set("name", upd.Name)
	}
	if upd.Desc != "" {
		query.Set("desc", upd.Desc)
	}
	if upd.IDList != "" {
		query.Set("idList", upd.IDList)
	}
	if upd.Pos != "" {
		query.Set("pos", upd.Pos)
	}
	if upd.Due != nil {
		query.Set("due", *upd.Due)
	}
	if upd.DueComplete != nil {
		query.Set("dueComplete", strconv.FormatBool(*upd.DueComplete))
	}

	var card Card
	if err := c.do(ctx, "update_card", http.MethodPut, "/cards/"+url.PathEscape(cardID), cardID, query, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard removes a card permanently. Deletion is not archival;
// there is no undo.
func (c *httpClient) DeleteCard(ctx context.Context, cardID string) error {
	if cardID == "" {
		return newValidationError("delete_card", "card_id")
	}
	return c.do(ctx, "delete_card", http.MethodDelete, "/cards/"+url.PathEscape(cardID), cardID, nil, nil)
}

// MoveCard moves a card to another list, optionally at a specific
// position within it.
func (c *httpClient) MoveCard(ctx context.Context, cardID, listID, pos string) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("move_card", "card_id")
	}
	if listID == "" {
		return nil, newValidationError("move_card", "list_id")
	}
	return c.UpdateCard(ctx, cardID, CardUpdate{IDList: listID, Pos: pos})
}

// SetCardDueDate sets or replaces the due date on a card. due is an
// ISO 8601 timestamp.
func (c *httpClient) SetCardDueDate(ctx context.Context, cardID, due string) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("set_card_due_date", "card_id")
	}
	if due == "" {
		return nil, newValidationError("set_card_due_date", "due")
	}
	return c.UpdateCard(ctx, cardID, CardUpdate{Due: &due})
}

// MarkDueDateComplete toggles the due-complete flag on a card.
func (c *httpClient) MarkDueDateComplete(ctx context.Context, cardID string, complete bool) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("mark_due_date_complete", "card_id")
	}
	return c.UpdateCard(ctx, cardID, CardUpdate{DueComplete: &complete})
}

// ClearCardDueDate removes the due date from a card. Trello clears a
// due date when the parameter is the literal string "null".
func (c *httpClient) ClearCardDueDate(ctx context.Context, cardID string) (*Card, error) {
	if cardID == "" {
		return nil, newValidationError("clear_card_due_date", "card_id")
	}
	due := "null"
	return c.UpdateCard(ctx, cardID, CardUpdate{Due: &due})
}
