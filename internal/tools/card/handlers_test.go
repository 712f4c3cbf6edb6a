package card

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// mockClient overrides the card operations used by the handlers.
type mockClient struct {
	trello.Client
	listCardsFn           func(ctx context.Context, listID string) ([]trello.Card, error)
	getCardFn             func(ctx context.Context, cardID string) (*trello.Card, error)
	createCardFn          func(ctx context.Context, listID, name, desc, pos, due string) (*trello.Card, error)
	updateCardFn          func(ctx context.Context, cardID string, upd trello.CardUpdate) (*trello.Card, error)
	deleteCardFn          func(ctx context.Context, cardID string) error
	moveCardFn            func(ctx context.Context, cardID, listID, pos string) (*trello.Card, error)
	setCardDueDateFn      func(ctx context.Context, cardID, due string) (*trello.Card, error)
	markDueDateCompleteFn func(ctx context.Context, cardID string, complete bool) (*trello.Card, error)
	clearCardDueDateFn    func(ctx context.Context, cardID string) (*trello.Card, error)
}

func (m *mockClient) ListCards(ctx context.Context, listID string) ([]trello.Card, error) {
	return m.listCardsFn(ctx, listID)
}

func (m *mockClient) GetCard(ctx context.Context, cardID string) (*trello.Card, error) {
	return m.getCardFn(ctx, cardID)
}

func (m *mockClient) CreateCard(ctx context.Context, listID, name, desc, pos, due string) (*trello.Card, error) {
	return m.createCardFn(ctx, listID, name, desc, pos, due)
}

func (m *mockClient) UpdateCard(ctx context.Context, cardID string, upd trello.CardUpdate) (*trello.Card, error) {
	return m.updateCardFn(ctx, cardID, upd)
}

func (m *mockClient) DeleteCard(ctx context.Context, cardID string) error {
	return m.deleteCardFn(ctx, cardID)
}

func (m *mockClient) MoveCard(ctx context.Context, cardID, listID, pos string) (*trello.Card, error) {
	return m.moveCardFn(ctx, cardID, listID, pos)
}

func (m *mockClient) SetCardDueDate(ctx context.Context, cardID, due string) (*trello.Card, error) {
	return m.setCardDueDateFn(ctx, cardID, due)
}

func (m *mockClient) MarkDueDateComplete(ctx context.Context, cardID string, complete bool) (*trello.Card, error) {
	return m.markDueDateCompleteFn(ctx, cardID, complete)
}

func (m *mockClient) ClearCardDueDate(ctx context.Context, cardID string) (*trello.Card, error) {
	return m.clearCardDueDateFn(ctx, cardID)
}

func newTestContext(t *testing.T, client trello.Client, readOnly bool) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(),
		server.WithTrelloClient(client),
		server.WithReadOnlyMode(readOnly),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestHandleListCards(t *testing.T) {
	client := &mockClient{
		listCardsFn: func(ctx context.Context, listID string) ([]trello.Card, error) {
			assert.Equal(t, "l1", listID)
			return []trello.Card{
				{ID: "c1", Name: "Write report", Pos: 1},
				{ID: "c2", Name: "Review PR", Pos: 2},
			}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleListCards(context.Background(), newRequest(map[string]interface{}{
		"list_id": "l1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var cards []trello.Card
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "Write report", cards[0].Name)
}

func TestHandleGetCard_MissingID(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, false)

	result, err := handleGetCard(context.Background(), newRequest(nil), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "card_id parameter is required")
}

func TestHandleCreateCard(t *testing.T) {
	client := &mockClient{
		createCardFn: func(ctx context.Context, listID, name, desc, pos, due string) (*trello.Card, error) {
			assert.Equal(t, "l1", listID)
			assert.Equal(t, "New task", name)
			assert.Equal(t, "details", desc)
			assert.Equal(t, "bottom", pos)
			assert.Equal(t, "2026-09-15T12:00:00Z", due)
			return &trello.Card{ID: "c3", Name: name, IDList: listID}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleCreateCard(context.Background(), newRequest(map[string]interface{}{
		"list_id":     "l1",
		"name":        "New task",
		"description": "details",
		"position":    "bottom",
		"due_date":    "2026-09-15T12:00:00Z",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "c3")
}

func TestHandleUpdateCard_PartialFields(t *testing.T) {
	client := &mockClient{
		updateCardFn: func(ctx context.Context, cardID string, upd trello.CardUpdate) (*trello.Card, error) {
			assert.Equal(t, "c1", cardID)
			assert.Equal(t, "Renamed", upd.Name)
			assert.Empty(t, upd.Desc)
			assert.Nil(t, upd.Due)
			require.NotNil(t, upd.DueComplete)
			assert.True(t, *upd.DueComplete)
			return &trello.Card{ID: "c1", Name: upd.Name}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleUpdateCard(context.Background(), newRequest(map[string]interface{}{
		"card_id":      "c1",
		"name":         "Renamed",
		"due_complete": true,
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Renamed")
}

func TestHandleUpdateCard_ReadOnlyMode(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, true)

	result, err := handleUpdateCard(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
		"name":    "Renamed",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "read-only mode")
}

func TestHandleDeleteCard(t *testing.T) {
	deleted := ""
	client := &mockClient{
		deleteCardFn: func(ctx context.Context, cardID string) error {
			deleted = cardID
			return nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleDeleteCard(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "c1", deleted)
	assert.Contains(t, resultText(t, result), "deleted")
}

func TestHandleMoveCard(t *testing.T) {
	client := &mockClient{
		moveCardFn: func(ctx context.Context, cardID, listID, pos string) (*trello.Card, error) {
			assert.Equal(t, "c1", cardID)
			assert.Equal(t, "l2", listID)
			assert.Equal(t, "top", pos)
			return &trello.Card{ID: cardID, IDList: listID}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleMoveCard(context.Background(), newRequest(map[string]interface{}{
		"card_id":  "c1",
		"list_id":  "l2",
		"position": "top",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var card trello.Card
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &card))
	assert.Equal(t, "l2", card.IDList)
}

func TestHandleMoveCard_MissingListID(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, false)

	result, err := handleMoveCard(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "list_id parameter is required")
}

func TestHandleSetCardDueDate_MissingDueDate(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, false)

	result, err := handleSetCardDueDate(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "due_date parameter is required")
}

func TestHandleMarkDueDateComplete_DefaultsToTrue(t *testing.T) {
	client := &mockClient{
		markDueDateCompleteFn: func(ctx context.Context, cardID string, complete bool) (*trello.Card, error) {
			assert.True(t, complete)
			return &trello.Card{ID: cardID, DueComplete: complete}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleMarkDueDateComplete(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleClearCardDueDate(t *testing.T) {
	client := &mockClient{
		clearCardDueDateFn: func(ctx context.Context, cardID string) (*trello.Card, error) {
			assert.Equal(t, "c1", cardID)
			return &trello.Card{ID: cardID}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleClearCardDueDate(context.Background(), newRequest(map[string]interface{}{
		"card_id": "c1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var card trello.Card
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &card))
	assert.Nil(t, card.Due)
}
