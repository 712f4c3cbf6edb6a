package label

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

// mockClient overrides the label operations used by the handlers.
type mockClient struct {
	trello.Client
	getBoardLabelsFn      func(ctx context.Context, boardID string) ([]trello.Label, error)
	createLabelFn         func(ctx context.Context, boardID, name, color string) (*trello.Label, error)
	getLabelFn            func(ctx context.Context, labelID string) (*trello.Label, error)
	updateLabelFn         func(ctx context.Context, labelID, name, color string) (*trello.Label, error)
	deleteLabelFn         func(ctx context.Context, labelID string) error
	getCardLabelsFn       func(ctx context.Context, cardID string) ([]trello.Label, error)
	addLabelToCardFn      func(ctx context.Context, cardID, labelID string) error
	removeLabelFromCardFn func(ctx context.Context, cardID, labelID string) error
	setCardLabelsFn       func(ctx context.Context, cardID string, labelIDs []string) (*trello.Card, error)
}

func (m *mockClient) GetBoardLabels(ctx context.Context, boardID string) ([]trello.Label, error) {
	return m.getBoardLabelsFn(ctx, boardID)
}

func (m *mockClient) CreateLabel(ctx context.Context, boardID, name, color string) (*trello.Label, error) {
	return m.createLabelFn(ctx, boardID, name, color)
}

func (m *mockClient) GetLabel(ctx context.Context, labelID string) (*trello.Label, error) {
	return m.getLabelFn(ctx, labelID)
}

func (m *mockClient) UpdateLabel(ctx context.Context, labelID, name, color string) (*trello.Label, error) {
	return m.updateLabelFn(ctx, labelID, name, color)
}

func (m *mockClient) DeleteLabel(ctx context.Context, labelID string) error {
	return m.deleteLabelFn(ctx, labelID)
}

func (m *mockClient) GetCardLabels(ctx context.Context, cardID string) ([]trello.Label, error) {
	return m.getCardLabelsFn(ctx, cardID)
}

func (m *mockClient) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	return m.addLabelToCardFn(ctx, cardID, labelID)
}

func (m *mockClient) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	return m.removeLabelFromCardFn(ctx, cardID, labelID)
}

func (m *mockClient) SetCardLabels(ctx context.Context, cardID string, labelIDs []string) (*trello.Card, error) {
	return m.setCardLabelsFn(ctx, cardID, labelIDs)
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

func TestHandleGetBoardLabels(t *testing.T) {
	client := &mockClient{
		getBoardLabelsFn: func(ctx context.Context, boardID string) ([]trello.Label, error) {
			assert.Equal(t, "b1", boardID)
			return []trello.Label{{ID: "lb1", Name: "Bug", Color: "red"}}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleGetBoardLabels(context.Background(), newRequest(map[string]interface{}{
		"board_id": "b1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var labels []trello.Label
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &labels))
	require.Len(t, labels, 1)
	assert.Equal(t, "red", labels[0].Color)
}

func TestHandleCreateLabel(t *testing.T) {
	client := &mockClient{
		createLabelFn: func(ctx context.Context, boardID, name, color string) (*trello.Label, error) {
			assert.Equal(t, "b1", boardID)
			assert.Equal(t, "Feature", name)
			assert.Equal(t, "green", color)
			return &trello.Label{ID: "lb2", Name: name, Color: color, IDBoard: boardID}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleCreateLabel(context.Background(), newRequest(map[string]interface{}{
		"board_id": "b1",
		"name":     "Feature",
		"color":    "green",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "lb2")
}

func TestHandleCreateLabel_ReadOnlyMode(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, true)

	result, err := handleCreateLabel(context.Background(), newRequest(map[string]interface{}{
		"board_id": "b1",
		"name":     "Feature",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "read-only mode")
}

func TestHandleUpdateLabel(t *testing.T) {
	client := &mockClient{
		updateLabelFn: func(ctx context.Context, labelID, name, color string) (*trello.Label, error) {
			assert.Equal(t, "lb1", labelID)
			assert.Equal(t, "blue", color)
			return &trello.Label{ID: labelID, Color: color}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleUpdateLabel(context.Background(), newRequest(map[string]interface{}{
		"label_id": "lb1",
		"color":    "blue",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleDeleteLabel_MissingID(t *testing.T) {
	sc := newTestContext(t, &mockClient{}, false)

	result, err := handleDeleteLabel(context.Background(), newRequest(nil), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "label_id parameter is required")
}

func TestHandleAddLabelToCard(t *testing.T) {
	client := &mockClient{
		addLabelToCardFn: func(ctx context.Context, cardID, labelID string) error {
			assert.Equal(t, "c1", cardID)
			assert.Equal(t, "lb1", labelID)
			return nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleAddLabelToCard(context.Background(), newRequest(map[string]interface{}{
		"card_id":  "c1",
		"label_id": "lb1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "added")
}

func TestHandleRemoveLabelFromCard(t *testing.T) {
	client := &mockClient{
		removeLabelFromCardFn: func(ctx context.Context, cardID, labelID string) error {
			assert.Equal(t, "c1", cardID)
			assert.Equal(t, "lb1", labelID)
			return nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleRemoveLabelFromCard(context.Background(), newRequest(map[string]interface{}{
		"card_id":  "c1",
		"label_id": "lb1",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "removed")
}

func TestHandleSetCardLabels(t *testing.T) {
	client := &mockClient{
		setCardLabelsFn: func(ctx context.Context, cardID string, labelIDs []string) (*trello.Card, error) {
			assert.Equal(t, "c1", cardID)
			assert.Equal(t, []string{"lb1", "lb2"}, labelIDs)
			return &trello.Card{ID: cardID, IDLabels: labelIDs}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleSetCardLabels(context.Background(), newRequest(map[string]interface{}{
		"card_id":   "c1",
		"label_ids": "lb1, lb2",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var card trello.Card
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &card))
	assert.Equal(t, []string{"lb1", "lb2"}, card.IDLabels)
}

func TestHandleSetCardLabels_EmptyClearsAll(t *testing.T) {
	client := &mockClient{
		setCardLabelsFn: func(ctx context.Context, cardID string, labelIDs []string) (*trello.Card, error) {
			assert.Empty(t, labelIDs)
			return &trello.Card{ID: cardID}, nil
		},
	}
	sc := newTestContext(t, client, false)

	result, err := handleSetCardLabels(context.Background(), newRequest(map[string]interface{}{
		"card_id":   "c1",
		"label_ids": "",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}
