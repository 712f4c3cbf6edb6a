package trello

import (
	"context"
	"net/http"
	"net/url"
)

// ListBoards returns all boards the authenticated member belongs to,
// open and closed alike.
func (c *httpClient) ListBoards(ctx context.Context) ([]Board, error) {
	query := url.Values{}
	query.Set("fields", "id,name,desc,closed,url,shortUrl")

	var boards []Board
	if err := c.do(ctx, "list_boards", http.MethodGet, "/members/me/boards", "", query, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard returns a single board by identifier.
func (c *httpClient) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	if boardID == "" {
		return nil, newValidationError("get_board", "board_id")
	}

	var board Board
	if err := c.do(ctx, "get_board", http.MethodGet, "/boards/"+url.PathEscape(boardID), boardID, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// CreateBoard creates a board with the given name and optional
// description. Default lists are suppressed so new boards start empty.
func (c *httpClient) CreateBoard(ctx context.Context, name, desc string) (*Board, error) {
	if name == "" {
		return nil, newValidationError("create_board", "name")
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("defaultLists", "false")
	if desc != "" {
		query.Set("desc", desc)
	}

	var board Board
	if err := c.do(ctx, "create_board", http.MethodPost, "/boards", "", query, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
