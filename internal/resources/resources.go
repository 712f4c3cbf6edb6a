// Package resources implements the read-only MCP resources exposing
// composite Trello views. Each resource aggregates several client calls
// into one JSON document and fails fast if any underlying call fails.
package resources

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/mcp-trello/internal/instrumentation"
	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// Resource URI templates. The trailing segment is the Trello object ID.
const (
	BoardResourceTemplate = "trello://board/{board_id}"
	ListResourceTemplate  = "trello://list/{list_id}"
	CardResourceTemplate  = "trello://card/{card_id}"
)

// BoardSnapshot is the composite document served by trello://board/{board_id}.
// It contains the board itself plus every list with its cards.
type BoardSnapshot struct {
	Board trello.Board `json:"board"`
	Lists []ListCards  `json:"lists"`
}

// ListCards pairs a list with its cards in position order.
type ListCards struct {
	List  trello.List   `json:"list"`
	Cards []trello.Card `json:"cards"`
}

// ListSnapshot is the composite document served by trello://list/{list_id}.
type ListSnapshot struct {
	List  trello.List   `json:"list"`
	Cards []trello.Card `json:"cards"`
}

// CardSnapshot is the composite document served by trello://card/{card_id}.
// It contains the card plus its checklists and labels.
type CardSnapshot struct {
	Card       trello.Card        `json:"card"`
	Checklists []trello.Checklist `json:"checklists"`
	Labels     []trello.Label     `json:"labels"`
}

// resourceHandler is the signature for resource read handlers that take ServerContext.
type resourceHandler func(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error)

// RegisterResources registers the board, list, and card resource
// templates with the MCP server.
func RegisterResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	boardTemplate := mcp.NewResourceTemplate(
		BoardResourceTemplate,
		"Trello board",
		mcp.WithTemplateDescription("A board with all its lists and the cards in each list"),
		mcp.WithTemplateMIMEType("application/json"),
	)
	s.AddResourceTemplate(boardTemplate, wrapResourceHandler("board", handleBoardResource, sc))

	listTemplate := mcp.NewResourceTemplate(
		ListResourceTemplate,
		"Trello list",
		mcp.WithTemplateDescription("A list with its cards, ordered by position"),
		mcp.WithTemplateMIMEType("application/json"),
	)
	s.AddResourceTemplate(listTemplate, wrapResourceHandler("list", handleListResource, sc))

	cardTemplate := mcp.NewResourceTemplate(
		CardResourceTemplate,
		"Trello card",
		mcp.WithTemplateDescription("A card with its checklists and labels"),
		mcp.WithTemplateMIMEType("application/json"),
	)
	s.AddResourceTemplate(cardTemplate, wrapResourceHandler("card", handleCardResource, sc))

	return nil
}

// wrapResourceHandler wraps a resource handler with tracing and metrics.
func wrapResourceHandler(family string, handler resourceHandler, sc *server.ServerContext) func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ctx, span := instrumentation.StartResourceSpan(ctx, family)
		defer span.End()

		sc.Metrics().IncrementResourceReads()

		contents, err := handler(ctx, request, sc)

		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
			instrumentation.SetSpanError(span, err)
		} else {
			instrumentation.SetSpanSuccess(span)
		}

		if provider := sc.InstrumentationProvider(); provider != nil {
			provider.Metrics().RecordResourceRead(ctx, family, status)
		}

		return contents, err
	}
}

// objectID extracts the trailing object ID from a resource URI like
// trello://board/abc123.
func objectID(uri, prefix string) string {
	return strings.TrimPrefix(uri, prefix)
}

// jsonContents wraps a marshaled document as resource contents.
func jsonContents(uri string, v interface{}) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleBoardResource builds the full board snapshot. The board and its
// lists are fetched concurrently, then the cards of every list are
// fetched in a second concurrent wave. Any failure aborts the whole
// read.
func handleBoardResource(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	boardID := objectID(request.Params.URI, "trello://board/")
	client := sc.TrelloClient()

	var (
		board *trello.Board
		lists []trello.List
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		board, err = client.GetBoard(gctx, boardID)
		return err
	})
	g.Go(func() error {
		var err error
		lists, err = client.GetBoardLists(gctx, boardID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := BoardSnapshot{
		Board: *board,
		Lists: make([]ListCards, len(lists)),
	}

	g, gctx = errgroup.WithContext(ctx)
	for i, list := range lists {
		snapshot.Lists[i].List = list

		g.Go(func() error {
			cards, err := client.ListCards(gctx, list.ID)
			if err != nil {
				return err
			}
			snapshot.Lists[i].Cards = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jsonContents(request.Params.URI, snapshot)
}

// handleListResource builds the list snapshot. The list and its cards
// are fetched concurrently and any failure aborts the read.
func handleListResource(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	listID := objectID(request.Params.URI, "trello://list/")
	client := sc.TrelloClient()

	var (
		list  *trello.List
		cards []trello.Card
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = client.GetList(gctx, listID)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = client.ListCards(gctx, listID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jsonContents(request.Params.URI, ListSnapshot{
		List:  *list,
		Cards: cards,
	})
}

// handleCardResource builds the card snapshot. The card, its checklists,
// and its labels are fetched concurrently and any failure aborts the
// read.
func handleCardResource(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	cardID := objectID(request.Params.URI, "trello://card/")
	client := sc.TrelloClient()

	var (
		card       *trello.Card
		checklists []trello.Checklist
		labels     []trello.Label
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		card, err = client.GetCard(gctx, cardID)
		return err
	})
	g.Go(func() error {
		var err error
		checklists, err = client.GetCardChecklists(gctx, cardID)
		return err
	})
	g.Go(func() error {
		var err error
		labels, err = client.GetCardLabels(gctx, cardID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jsonContents(request.Params.URI, CardSnapshot{
		Card:       *card,
		Checklists: checklists,
		Labels:     labels,
	})
}
