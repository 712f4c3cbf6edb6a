package trello

import (
	"context"
	"net/http"
	"net/url"
)

// GetCardChecklists returns all checklists on a card, items included.
func (c *httpClient) GetCardChecklists(ctx context.Context, cardID string) ([]Checklist, error) {
	if cardID == "" {
		return nil, newValidationError("get_card_checklists", "card_id")
	}

	var checklists []Checklist
	if err := c.do(ctx, "get_card_checklists", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/checklists", cardID, nil, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}

// CreateChecklist creates an empty checklist on a card.
func (c *httpClient) CreateChecklist(ctx context.Context, cardID, name, pos string) (*Checklist, error) {
	if cardID == "" {
		return nil, newValidationError("create_checklist", "card_id")
	}
	if name == "" {
		return nil, newValidationError("create_checklist", "name")
	}

	query := url.Values{}
	query.Set("idCard", cardID)
	query.Set("name", name)
	if pos != "" {
		query.Set("pos", pos)
	}

	var checklist Checklist
	if err := c.do(ctx, "create_checklist", http.MethodPost, "/checklists", cardID, query, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// GetChecklist returns a checklist with its items.
func (c *httpClient) GetChecklist(ctx context.Context, checklistID string) (*Checklist, error) {
	if checklistID == "" {
		return nil, newValidationError("get_checklist", "checklist_id")
	}

	var checklist Checklist
	if err := c.do(ctx, "get_checklist", http.MethodGet, "/checklists/"+url.PathEscape(checklistID), checklistID, nil, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// UpdateChecklist renames or repositions a checklist. Empty fields are
// left untouched; an entirely empty update is a validation error.
func (c *httpClient) UpdateChecklist(ctx context.Context, checklistID, name, pos string) (*Checklist, error) {
	if checklistID == "" {
		return nil, newValidationError("update_checklist", "checklist_id")
	}
	if name == "" && pos == "" {
		return nil, &APIError{
			Op:    "update_checklist",
			ID:    checklistID,
			Kind:  ErrValidation,
			Cause: errNoUpdateFields,
		}
	}

	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if pos != "" {
		query.Set("pos", pos)
	}

	var checklist Checklist
	if err := c.do(ctx, "update_checklist", http.MethodPut, "/checklists/"+url.PathEscape(checklistID), checklistID, query, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// DeleteChecklist removes a checklist and all of its items.
func (c *httpClient) DeleteChecklist(ctx context.Context, checklistID string) error {
	if checklistID == "" {
		return newValidationError("delete_checklist", "checklist_id")
	}
	return c.do(ctx, "delete_checklist", http.MethodDelete, "/checklists/"+url.PathEscape(checklistID), checklistID, nil, nil)
}

// GetChecklistItems returns the items of a checklist.
func (c *httpClient) GetChecklistItems(ctx context.Context, checklistID string) ([]CheckItem, error) {
	if checklistID == "" {
		return nil, newValidationError("get_checklist_items", "checklist_id")
	}

	var items []CheckItem
	if err := c.do(ctx, "get_checklist_items", http.MethodGet, "/checklists/"+url.PathEscape(checklistID)+"/checkItems", checklistID, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddChecklistItem appends an item to a checklist, optionally already
// checked.
func (c *httpClient) AddChecklistItem(ctx context.Context, checklistID, name string, checked bool, pos string) (*CheckItem, error) {
	if checklistID == "" {
		return nil, newValidationError("add_checklist_item", "checklist_id")
	}
	if name == "" {
		return nil, newValidationError("add_checklist_item", "name")
	}

	query := url.Values{}
	query.Set("name", name)
	if checked {
		query.Set("checked", "true")
	}
	if pos != "" {
		query.Set("pos", pos)
	}

	var item CheckItem
	if err := c.do(ctx, "add_checklist_item", http.MethodPost, "/checklists/"+url.PathEscape(checklistID)+"/checkItems", checklistID, query, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateChecklistItem updates a check item. Trello only exposes item
// updates through the owning card, which is why cardID is required.
// state must be "complete", "incomplete", or empty.
func (c *httpClient) UpdateChecklistItem(ctx context.Context, cardID, itemID, name, state, pos string) (*CheckItem, error) {
	if cardID == "" {
		return nil, newValidationError("update_checklist_item", "card_id")
	}
	if itemID == "" {
		return nil, newValidationError("update_checklist_item", "item_id")
	}
	if state != "" && state != CheckItemComplete && state != CheckItemIncomplete {
		return nil, &APIError{
			Op:    "update_checklist_item",
			ID:    itemID,
			Kind:  ErrValidation,
			Cause: errInvalidItemState(state),
		}
	}
	if name == "" && state == "" && pos == "" {
		return nil, &APIError{
			Op:    "update_checklist_item",
			ID:    itemID,
			Kind:  ErrValidation,
			Cause: errNoUpdateFields,
		}
	}

	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if state != "" {
		query.Set("state", state)
	}
	if pos != "" {
		query.Set("pos", pos)
	}

	var item CheckItem
	path := "/cards/" + url.PathEscape(cardID) + "/checkItem/" + url.PathEscape(itemID)
	if err := c.do(ctx, "update_checklist_item", http.MethodPut, path, itemID, query, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteChecklistItem removes an item from a checklist.
func (c *httpClient) DeleteChecklistItem(ctx context.Context, checklistID, itemID string) error {
	if checklistID == "" {
		return newValidationError("delete_checklist_item", "checklist_id")
	}
	if itemID == "" {
		return newValidationError("delete_checklist_item", "item_id")
	}
	path := "/checklists/" + url.PathEscape(checklistID) + "/checkItems/" + url.PathEscape(itemID)
	return c.do(ctx, "delete_checklist_item", http.MethodDelete, path, itemID, nil, nil)
}
