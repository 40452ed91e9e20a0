package collection

import "promptlab-backend/internal/models"

type CreateCollectionRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type CollectionListResponse struct {
	Collections []models.Collection `json:"collections"`
	Total       int                 `json:"total"`
}
