package models

import "time"

// Collection is a named grouping of prompts.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCollection assembles a collection with a fresh id and creation
// timestamp.
func NewCollection(name string, description *string) Collection {
	return Collection{
		ID:          GenerateID(),
		Name:        name,
		Description: description,
		CreatedAt:   Now(),
	}
}
