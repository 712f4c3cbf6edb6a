package trello

import (
	"context"
	"net/http"
	"net/url"
)

// GetCardAttachments returns the attachments on a card.
func (c *httpClient) GetCardAttachments(ctx context.Context, cardID string) ([]Attachment, error) {
	if cardID == "" {
		return nil, newValidationError("get_card_attachments", "card_id")
	}

	var attachments []Attachment
	if err := c.do(ctx, "get_card_attachments", http.MethodGet, "/cards/"+url.PathEscape(cardID)+"/attachments", cardID, nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// GetAttachment returns a single attachment on a card.
func (c *httpClient) GetAttachment(ctx context.Context, cardID, attachmentID string) (*Attachment, error) {
	if cardID == "" {
		return nil, newValidationError("get_attachment", "card_id")
	}
	if attachmentID == "" {
		return nil, newValidationError("get_attachment", "attachment_id")
	}

	var attachment Attachment
	path := "/cards/" + url.PathEscape(cardID) + "/attachments/" + url.PathEscape(attachmentID)
	if err := c.do(ctx, "get_attachment", http.MethodGet, path, attachmentID, nil, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// AddAttachmentURL attaches a URL to a card. name is optional; when
// empty Trello derives one from the URL.
func (c *httpClient) AddAttachmentURL(ctx context.Context, cardID, attachmentURL, name string) (*Attachment, error) {
	if cardID == "" {
		return nil, newValidationError("add_attachment_url", "card_id")
	}
	if attachmentURL == "" {
		return nil, newValidationError("add_attachment_url", "url")
	}

	query := url.Values{}
	query.Set("url", attachmentURL)
	if name != "" {
		query.Set("name", name)
	}

	var attachment Attachment
	if err := c.do(ctx, "add_attachment_url", http.MethodPost, "/cards/"+url.PathEscape(cardID)+"/attachments", cardID, query, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteAttachment removes an attachment from a card.
func (c *httpClient) DeleteAttachment(ctx context.Context, cardID, attachmentID string) error {
	if cardID == "" {
		return newValidationError("delete_attachment", "card_id")
	}
	if attachmentID == "" {
		return newValidationError("delete_attachment", "attachment_id")
	}
	path := "/cards/" + url.PathEscape(cardID) + "/attachments/" + url.PathEscape(attachmentID)
	return c.do(ctx, "delete_attachment", http.MethodDelete, path, attachmentID, nil, nil)
}
