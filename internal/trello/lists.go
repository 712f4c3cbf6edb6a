package trello

import (
	"context"
	"net/http"
	"net/url"
)

// GetBoardLists returns the open lists on a board, ordered by position
// ascending.
func (c *httpClient) GetBoardLists(ctx context.Context, boardID string) ([]List, error) {
	if boardID == "" {
		return nil, newValidationError("get_board_lists", "board_id")
	}

	var lists []List
	if err := c.do(ctx, "get_board_lists", http.MethodGet, "/boards/"+url.PathEscape(boardID)+"/lists", boardID, nil, &lists); err != nil {
		return nil, err
	}
	sortListsByPos(lists)
	return lists, nil
}

// GetList returns a single list by identifier.
func (c *httpClient) GetList(ctx context.Context, listID string) (*List, error) {
	if listID == "" {
		return nil, newValidationError("get_list", "list_id")
	}

	var list List
	if err := c.do(ctx, "get_list", http.MethodGet, "/lists/"+url.PathEscape(listID), listID, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateList creates a list on a board. pos may be "top", "bottom", a
// positive number, or empty to take Trello's default placement.
func (c *httpClient) CreateList(ctx context.Context, boardID, name, pos string) (*List, error) {
	if boardID == "" {
		return nil, newValidationError("create_list", "board_id")
	}
	if name == "" {
		return nil, newValidationError("create_list", "name")
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("idBoard", boardID)
	if pos != "" {
		query.Set("pos", pos)
	}

	var list List
	if err := c.do(ctx, "create_list", http.MethodPost, "/lists", boardID, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ArchiveList archives a list by setting its closed flag. Trello treats
// archiving an already-archived list as a no-op, so the call is
// idempotent.
func (c *httpClient) ArchiveList(ctx context.Context, listID string) (*List, error) {
	if listID == "" {
		return nil, newValidationError("archive_list", "list_id")
	}

	query := url.Values{}
	query.Set("value", "true")

	var list List
	if err := c.do(ctx, "archive_list", http.MethodPut, "/lists/"+url.PathEscape(listID)+"/closed", listID, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
