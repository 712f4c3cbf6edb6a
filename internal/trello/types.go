package trello

import "time"

// Board is a top-level Trello container for lists and cards.
type Board struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Desc     string `json:"desc,omitempty"`
	Closed   bool   `json:"closed"`
	URL      string `json:"url,omitempty"`
	ShortURL string `json:"shortUrl,omitempty"`
}

// List is an ordered column within a board.
type List struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IDBoard string  `json:"idBoard"`
	Pos     float64 `json:"pos"`
	Closed  bool    `json:"closed"`
}

// Card is an individual item belonging to exactly one list at a time.
// Fields Trello returns that the exposed operations do not touch
// (labels, due dates) are passed through unmodified.
type Card struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Desc        string     `json:"desc,omitempty"`
	IDList      string     `json:"idList"`
	IDBoard     string     `json:"idBoard,omitempty"`
	Pos         float64    `json:"pos"`
	Closed      bool       `json:"closed"`
	Due         *time.Time `json:"due,omitempty"`
	DueComplete bool       `json:"dueComplete"`
	IDLabels    []string   `json:"idLabels,omitempty"`
	Labels      []Label    `json:"labels,omitempty"`
	URL         string     `json:"url,omitempty"`
	ShortURL    string     `json:"shortUrl,omitempty"`
}

// Checklist is a named group of check items attached to a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDCard     string      `json:"idCard"`
	IDBoard    string      `json:"idBoard,omitempty"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems,omitempty"`
}

// CheckItem state values as Trello reports them.
const (
	CheckItemComplete   = "complete"
	CheckItemIncomplete = "incomplete"
)

// CheckItem is a single entry within a checklist.
type CheckItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	IDChecklist string  `json:"idChecklist"`
	Pos         float64 `json:"pos"`
}

// Attachment is a link or uploaded file attached to a card. IsUpload
// distinguishes Trello-hosted files from plain URL attachments.
type Attachment struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	URL      string     `json:"url,omitempty"`
	MimeType string     `json:"mimeType,omitempty"`
	Bytes    int64      `json:"bytes,omitempty"`
	IsUpload bool       `json:"isUpload"`
	FileName string     `json:"fileName,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// Label is a colored tag scoped to a board and assignable to cards.
type Label struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	IDBoard string `json:"idBoard"`
}

// CardUpdate describes a partial update of a card. Zero-valued fields
// are not sent, so anything left unset stays untouched on the remote
// side. Due and DueComplete are pointers because clearing a due date
// and leaving it alone are different requests.
type CardUpdate struct {
	Name        string
	Desc        string
	IDList      string
	Pos         string
	Due         *string
	DueComplete *bool
}

// IsZero reports whether the update carries no fields at all.
func (u CardUpdate) IsZero() bool {
	return u.Name == "" && u.Desc == "" && u.IDList == "" && u.Pos == "" &&
		u.Due == nil && u.DueComplete == nil
}
