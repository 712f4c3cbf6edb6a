package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-trello/internal/server"
)

func TestCheckMutatingOperation_Allowed(t *testing.T) {
	sc := newTestServerContext(t)

	result := CheckMutatingOperation(sc, "create")
	assert.Nil(t, result)
}

func TestCheckMutatingOperation_BlockedInReadOnlyMode(t *testing.T) {
	sc := newTestServerContext(t, server.WithReadOnlyMode(true))

	result := CheckMutatingOperation(sc, "delete")
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, textContent.Text, "Delete operations are not allowed in read-only mode")
}
