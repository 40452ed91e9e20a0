package prompt

import "promptlab-backend/internal/models"

type CreatePromptRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	Content      string  `json:"content" binding:"required,min=1"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// UpdatePromptRequest is the PUT body. Replacement is wholesale, so
// title and content stay required even though the endpoint is an
// update.
type UpdatePromptRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	Content      string  `json:"content" binding:"required,min=1"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// PatchPromptRequest is the PATCH body. Every field is a pointer so
// omitted and null values are distinguishable from provided ones;
// both are treated as "keep the existing value".
type PatchPromptRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content      *string `json:"content" binding:"omitempty,min=1"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

type PromptListResponse struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}
