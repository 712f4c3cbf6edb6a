package trello

import (
	"context"
	"os"
	"time"
)

// Default connection settings for the Trello API.
const (
	// DefaultBaseURL is the Trello REST API root.
	DefaultBaseURL = "https://api.trello.com/1"

	// DefaultTimeout bounds each request when the caller supplies no
	// HTTP client of its own.
	DefaultTimeout = 30 * time.Second
)

// Environment variables holding the process-wide credential pair.
const (
	EnvAPIKey   = "TRELLO_API_KEY"
	EnvAPIToken = "TRELLO_API_TOKEN"
)

// Client defines the interface for Trello operations. It is composed of
// one manager interface per entity family so tests and tools can depend
// on the slice they need.
type Client interface {
	BoardManager
	ListManager
	CardManager
	ChecklistManager
	LabelManager
	AttachmentManager
}

// BoardManager handles board operations.
type BoardManager interface {
	// ListBoards returns all boards for the authenticated member, in
	// Trello's default order.
	ListBoards(ctx context.Context) ([]Board, error)

	// GetBoard returns full detail for a single board.
	GetBoard(ctx context.Context, boardID string) (*Board, error)

	// CreateBoard creates a board with the given name and optional
	// description, returning it with its newly assigned identifier.
	CreateBoard(ctx context.Context, name, desc string) (*Board, error)
}

// ListManager handles list operations.
type ListManager interface {
	// GetBoardLists returns the lists on a board ordered by position
	// ascending.
	GetBoardLists(ctx context.Context, boardID string) ([]List, error)

	// GetList returns a single list by identifier.
	GetList(ctx context.Context, listID string) (*List, error)

	// CreateList creates a list on a board. Position may be "top",
	// "bottom", a positive number, or empty for the Trello default.
	CreateList(ctx context.Context, boardID, name, pos string) (*List, error)

	// ArchiveList sets the closed flag on a list. Archiving an
	// already-archived list succeeds silently.
	ArchiveList(ctx context.Context, listID string) (*List, error)
}

// CardManager handles card operations.
type CardManager interface {
	// ListCards returns the cards in a list ordered by position
	// ascending.
	ListCards(ctx context.Context, listID string) ([]Card, error)

	// GetCard returns full detail for a single card.
	GetCard(ctx context.Context, cardID string) (*Card, error)

	// CreateCard creates a card in a list. Description, position, and
	// due date are optional.
	CreateCard(ctx context.Context, listID, name, desc, pos, due string) (*Card, error)

	// UpdateCard applies a partial update; fields absent from upd are
	// left untouched remotely.
	UpdateCard(ctx context.Context, cardID string, upd CardUpdate) (*Card, error)

	// DeleteCard removes a card permanently.
	DeleteCard(ctx context.Context, cardID string) error

	// MoveCard reparents a card to another list, optionally at a
	// specific position.
	MoveCard(ctx context.Context, cardID, listID, pos string) (*Card, error)

	// SetCardDueDate sets or replaces a card's due date (ISO 8601).
	SetCardDueDate(ctx context.Context, cardID, due string) (*Card, error)

	// MarkDueDateComplete marks a card's due date complete or
	// incomplete.
	MarkDueDateComplete(ctx context.Context, cardID string, complete bool) (*Card, error)

	// ClearCardDueDate removes the due date from a card.
	ClearCardDueDate(ctx context.Context, cardID string) (*Card, error)
}

// ChecklistManager handles checklist and check item operations.
type ChecklistManager interface {
	// GetCardChecklists returns all checklists on a card.
	GetCardChecklists(ctx context.Context, cardID string) ([]Checklist, error)

	// CreateChecklist creates a checklist on a card.
	CreateChecklist(ctx context.Context, cardID, name, pos string) (*Checklist, error)

	// GetChecklist returns a checklist with its items.
	GetChecklist(ctx context.Context, checklistID string) (*Checklist, error)

	// UpdateChecklist renames or repositions a checklist; empty fields
	// are left untouched.
	UpdateChecklist(ctx context.Context, checklistID, name, pos string) (*Checklist, error)

	// DeleteChecklist removes a checklist and its items.
	DeleteChecklist(ctx context.Context, checklistID string) error

	// GetChecklistItems returns the items of a checklist.
	GetChecklistItems(ctx context.Context, checklistID string) ([]CheckItem, error)

	// AddChecklistItem appends an item to a checklist.
	AddChecklistItem(ctx context.Context, checklistID, name string, checked bool, pos string) (*CheckItem, error)

	// UpdateChecklistItem updates an item; the card identifier is
	// required because Trello addresses items through the card.
	UpdateChecklistItem(ctx context.Context, cardID, itemID, name, state, pos string) (*CheckItem, error)

	// DeleteChecklistItem removes an item from a checklist.
	DeleteChecklistItem(ctx context.Context, checklistID, itemID string) error
}

// LabelManager handles label operations.
type LabelManager interface {
	// GetBoardLabels returns the labels defined on a board.
	GetBoardLabels(ctx context.Context, boardID string) ([]Label, error)

	// CreateLabel creates a label on a board with an optional color.
	CreateLabel(ctx context.Context, boardID, name, color string) (*Label, error)

	// GetLabel returns a single label.
	GetLabel(ctx context.Context, labelID string) (*Label, error)

	// UpdateLabel renames or recolors a label; empty fields are left
	// untouched.
	UpdateLabel(ctx context.Context, labelID, name, color string) (*Label, error)

	// DeleteLabel removes a label from its board and all cards.
	DeleteLabel(ctx context.Context, labelID string) error

	// GetCardLabels returns the labels assigned to a card.
	GetCardLabels(ctx context.Context, cardID string) ([]Label, error)

	// AddLabelToCard assigns an existing label to a card.
	AddLabelToCard(ctx context.Context, cardID, labelID string) error

	// RemoveLabelFromCard unassigns a label from a card.
	RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error

	// SetCardLabels replaces the full label set of a card.
	SetCardLabels(ctx context.Context, cardID string, labelIDs []string) (*Card, error)
}

// AttachmentManager handles card attachment operations. Only URL and
// metadata operations are covered; Trello-hosted file content is not
// transferred.
type AttachmentManager interface {
	// GetCardAttachments returns the attachments on a card.
	GetCardAttachments(ctx context.Context, cardID string) ([]Attachment, error)

	// GetAttachment returns a single attachment on a card.
	GetAttachment(ctx context.Context, cardID, attachmentID string) (*Attachment, error)

	// AddAttachmentURL attaches a URL to a card with an optional
	// display name.
	AddAttachmentURL(ctx context.Context, cardID, attachmentURL, name string) (*Attachment, error)

	// DeleteAttachment removes an attachment from a card.
	DeleteAttachment(ctx context.Context, cardID, attachmentID string) error
}

// Logger defines the logging interface the client uses. It matches the
// server package's logger so the same implementation can back both.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// ClientConfig holds the configuration for creating a Trello client.
type ClientConfig struct {
	// Key is the Trello API key. Falls back to TRELLO_API_KEY.
	Key string

	// Token is the Trello API token. Falls back to TRELLO_API_TOKEN.
	Token string

	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger receives per-request debug logging. Optional.
	Logger Logger
}

// NewClient creates a Trello client from the given configuration.
// Credentials are resolved once here: explicit config values win over
// the environment, and a missing key or token fails immediately with
// ErrConfig so misconfiguration surfaces at startup rather than as an
// auth failure on the first call.
func NewClient(config *ClientConfig) (Client, error) {
	if config == nil {
		config = &ClientConfig{}
	}

	key := config.Key
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	token := config.Token
	if token == "" {
		token = os.Getenv(EnvAPIToken)
	}

	if key == "" || token == "" {
		return nil, &APIError{
			Op:    "new_client",
			Kind:  ErrConfig,
			Cause: errMissingCredentials(key, token),
		}
	}

	return newHTTPClient(key, token, config), nil
}
