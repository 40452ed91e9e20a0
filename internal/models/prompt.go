package models

import "time"

// Prompt is a titled text entry optionally grouped under a Collection.
// Description and CollectionID are pointers so that absent values
// serialize as JSON null, matching the API contract.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPrompt assembles a prompt with a fresh id and identical
// created/updated timestamps. Identity and time are assigned here, at
// construction, never by the record itself.
func NewPrompt(title, content string, description, collectionID *string) Prompt {
	now := Now()
	return Prompt{
		ID:           GenerateID(),
		Title:        title,
		Content:      content,
		Description:  description,
		CollectionID: collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
