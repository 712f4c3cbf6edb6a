package resources

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// mockClient overrides the read operations the resources aggregate.
type mockClient struct {
	trello.Client
	getBoardFn          func(ctx context.Context, boardID string) (*trello.Board, error)
	getBoardListsFn     func(ctx context.Context, boardID string) ([]trello.List, error)
	getListFn           func(ctx context.Context, listID string) (*trello.List, error)
	listCardsFn         func(ctx context.Context, listID string) ([]trello.Card, error)
	getCardFn           func(ctx context.Context, cardID string) (*trello.Card, error)
	getCardChecklistsFn func(ctx context.Context, cardID string) ([]trello.Checklist, error)
	getCardLabelsFn     func(ctx context.Context, cardID string) ([]trello.Label, error)
}

func (m *mockClient) GetBoard(ctx context.Context, boardID string) (*trello.Board, error) {
	return m.getBoardFn(ctx, boardID)
}

func (m *mockClient) GetBoardLists(ctx context.Context, boardID string) ([]trello.List, error) {
	return m.getBoardListsFn(ctx, boardID)
}

func (m *mockClient) GetList(ctx context.Context, listID string) (*trello.List, error) {
	return m.getListFn(ctx, listID)
}

func (m *mockClient) ListCards(ctx context.Context, listID string) ([]trello.Card, error) {
	return m.listCardsFn(ctx, listID)
}

func (m *mockClient) GetCard(ctx context.Context, cardID string) (*trello.Card, error) {
	return m.getCardFn(ctx, cardID)
}

func (m *mockClient) GetCardChecklists(ctx context.Context, cardID string) ([]trello.Checklist, error) {
	return m.getCardChecklistsFn(ctx, cardID)
}

func (m *mockClient) GetCardLabels(ctx context.Context, cardID string) ([]trello.Label, error) {
	return m.getCardLabelsFn(ctx, cardID)
}

func newTestContext(t *testing.T, client trello.Client) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), server.WithTrelloClient(client))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func newReadRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func resourceJSON(t *testing.T, contents []mcp.ResourceContents) string {
	t.Helper()

	require.Len(t, contents, 1)
	textContents, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", textContents.MIMEType)
	return textContents.Text
}

func TestHandleBoardResource(t *testing.T) {
	client := &mockClient{
		getBoardFn: func(ctx context.Context, boardID string) (*trello.Board, error) {
			assert.Equal(t, "b1", boardID)
			return &trello.Board{ID: "b1", Name: "Work"}, nil
		},
		getBoardListsFn: func(ctx context.Context, boardID string) ([]trello.List, error) {
			return []trello.List{
				{ID: "l1", Name: "To Do", Pos: 1},
				{ID: "l2", Name: "Done", Pos: 2},
			}, nil
		},
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			if listID == "l1" {
				return []trello.Card{{ID: "c1", Name: "Task", IDList: listID}}, nil
			}
			return nil, nil
		},
	}
	sc := newTestContext(t, client)

	contents, err := handleBoardResource(context.Background(), newReadRequest("trello://board/b1"), sc)
	require.NoError(t, err)

	var snapshot BoardSnapshot
	require.NoError(t, json.Unmarshal([]byte(resourceJSON(t, contents)), &snapshot))
	assert.Equal(t, "Work", snapshot.Board.Name)
	require.Len(t, snapshot.Lists, 2)
	assert.Equal(t, "To Do", snapshot.Lists[0].List.Name)
	require.Len(t, snapshot.Lists[0].Cards, 1)
	assert.Equal(t, "Task", snapshot.Lists[0].Cards[0].Name)
	assert.Empty(t, snapshot.Lists[1].Cards)
}

func TestHandleBoardResource_FailsFast(t *testing.T) {
	wantErr := &trello.APIError{Op: "list_cards", ID: "l1", Status: 404, Kind: trello.ErrNotFound}
	client := &mockClient{
		getBoardFn: func(ctx context.Context, boardID string) (*trello.Board, error) {
			return &trello.Board{ID: boardID}, nil
		},
		getBoardListsFn: func(ctx context.Context, boardID string) ([]trello.List, error) {
			return []trello.List{{ID: "l1"}, {ID: "l2"}}, nil
		},
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			if listID == "l1" {
				return nil, wantErr
			}
			return nil, nil
		},
	}
	sc := newTestContext(t, client)

	_, err := handleBoardResource(context.Background(), newReadRequest("trello://board/b1"), sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, trello.ErrNotFound)
}

func TestHandleListResource(t *testing.T) {
	client := &mockClient{
		getListFn: func(ctx context.Context, listID string) (*trello.List, error) {
			assert.Equal(t, "l1", listID)
			return &trello.List{ID: listID, Name: "To Do"}, nil
		},
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			assert.Equal(t, "l1", listID)
			return []trello.Card{{ID: "c1", Name: "Task"}}, nil
		},
	}
	sc := newTestContext(t, client)

	contents, err := handleListResource(context.Background(), newReadRequest("trello://list/l1"), sc)
	require.NoError(t, err)

	var snapshot ListSnapshot
	require.NoError(t, json.Unmarshal([]byte(resourceJSON(t, contents)), &snapshot))
	assert.Equal(t, "l1", snapshot.List.ID)
	assert.Equal(t, "To Do", snapshot.List.Name)
	require.Len(t, snapshot.Cards, 1)
}

func TestHandleListResource_FailsFast(t *testing.T) {
	wantErr := &trello.APIError{Op: "get_list", ID: "l1", Status: 404, Kind: trello.ErrNotFound}
	client := &mockClient{
		getListFn: func(ctx context.Context, listID string) (*trello.List, error) {
			return nil, wantErr
		},
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			return nil, nil
		},
	}
	sc := newTestContext(t, client)

	_, err := handleListResource(context.Background(), newReadRequest("trello://list/l1"), sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, trello.ErrNotFound)
}

func TestHandleCardResource(t *testing.T) {
	client := &mockClient{
		getCardFn: func(ctx context.Context, cardID string) (*trello.Card, error) {
			return &trello.Card{ID: cardID, Name: "Task"}, nil
		},
		getCardChecklistsFn: func(ctx context.Context, cardID string) ([]trello.Checklist, error) {
			return []trello.Checklist{{ID: "ch1", Name: "Steps"}}, nil
		},
		getCardLabelsFn: func(ctx context.Context, cardID string) ([]trello.Label, error) {
			return []trello.Label{{ID: "lb1", Color: "red"}}, nil
		},
	}
	sc := newTestContext(t, client)

	contents, err := handleCardResource(context.Background(), newReadRequest("trello://card/c1"), sc)
	require.NoError(t, err)

	var snapshot CardSnapshot
	require.NoError(t, json.Unmarshal([]byte(resourceJSON(t, contents)), &snapshot))
	assert.Equal(t, "Task", snapshot.Card.Name)
	require.Len(t, snapshot.Checklists, 1)
	require.Len(t, snapshot.Labels, 1)
}

func TestHandleCardResource_FailsFast(t *testing.T) {
	client := &mockClient{
		getCardFn: func(ctx context.Context, cardID string) (*trello.Card, error) {
			return &trello.Card{ID: cardID}, nil
		},
		getCardChecklistsFn: func(ctx context.Context, cardID string) ([]trello.Checklist, error) {
			return nil, errors.New("checklists unavailable")
		},
		getCardLabelsFn: func(ctx context.Context, cardID string) ([]trello.Label, error) {
			return nil, nil
		},
	}
	sc := newTestContext(t, client)

	_, err := handleCardResource(context.Background(), newReadRequest("trello://card/c1"), sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checklists unavailable")
}

func TestWrapResourceHandler_CountsReads(t *testing.T) {
	client := &mockClient{
		getListFn: func(ctx context.Context, listID string) (*trello.List, error) {
			return &trello.List{ID: listID}, nil
		},
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			return nil, nil
		},
	}
	sc := newTestContext(t, client)

	wrapped := wrapResourceHandler("list", handleListResource, sc)
	_, err := wrapped(context.Background(), newReadRequest("trello://list/l1"))
	require.NoError(t, err)

	_, _, reads, _ := sc.Metrics().GetMetrics()
	assert.Equal(t, int64(1), reads)
}
