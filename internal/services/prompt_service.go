package services

import (
	"strings"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/query"
	"promptlab-backend/internal/store"
)

// PromptInput carries the mutable prompt fields for create and full
// (PUT) updates.
type PromptInput struct {
	Title        string
	Content      string
	Description  *string
	CollectionID *string
}

// PromptPatch carries partial (PATCH) updates. Nil fields keep the
// existing value; there is no way to clear a field to null through a
// patch.
type PromptPatch struct {
	Title        *string
	Content      *string
	Description  *string
	CollectionID *string
}

// PromptService owns the business rules around prompts, most
// importantly the referential-integrity check against collections.
type PromptService struct {
	store *store.Store
}

func NewPromptService(s *store.Store) *PromptService {
	return &PromptService{store: s}
}

// Create stores a new prompt. A non-empty collection reference must
// resolve to an existing collection.
func (s *PromptService) Create(in PromptInput) (models.Prompt, error) {
	if err := s.checkCollectionRef(in.CollectionID); err != nil {
		return models.Prompt{}, err
	}

	prompt := models.NewPrompt(in.Title, in.Content, in.Description, in.CollectionID)
	return s.store.CreatePrompt(prompt), nil
}

// Get returns the prompt with the given id. Blank ids are treated as
// not found, never as a validation failure.
func (s *PromptService) Get(id string) (models.Prompt, error) {
	if strings.TrimSpace(id) == "" {
		return models.Prompt{}, ErrPromptNotFound
	}

	prompt, ok := s.store.GetPrompt(id)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	return prompt, nil
}

// List returns prompts filtered by collection and search term, in that
// order, sorted by updated_at descending. Empty filter values are
// ignored.
func (s *PromptService) List(collectionID, search string) []models.Prompt {
	prompts := s.store.ListPrompts()

	if collectionID != "" {
		prompts = query.FilterByCollection(prompts, collectionID)
	}
	if search != "" {
		prompts = query.Search(prompts, search)
	}

	return query.SortByDate(prompts, true)
}

// Update replaces every mutable field of an existing prompt. The id
// and creation time are preserved and updated_at is refreshed.
func (s *PromptService) Update(id string, in PromptInput) (models.Prompt, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Prompt{}, err
	}

	if err := s.checkCollectionRef(in.CollectionID); err != nil {
		return models.Prompt{}, err
	}

	updated := models.Prompt{
		ID:           existing.ID,
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    models.Now(),
	}

	stored, ok := s.store.UpdatePrompt(id, updated)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	return stored, nil
}

// Patch merges the provided fields into an existing prompt. Fields
// left nil retain their current values.
func (s *PromptService) Patch(id string, in PromptPatch) (models.Prompt, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Prompt{}, err
	}

	if err := s.checkCollectionRef(in.CollectionID); err != nil {
		return models.Prompt{}, err
	}

	updated := existing
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Content != nil {
		updated.Content = *in.Content
	}
	if in.Description != nil {
		updated.Description = in.Description
	}
	if in.CollectionID != nil {
		updated.CollectionID = in.CollectionID
	}
	updated.UpdatedAt = models.Now()

	stored, ok := s.store.UpdatePrompt(id, updated)
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}
	return stored, nil
}

// Delete removes a prompt by id.
func (s *PromptService) Delete(id string) error {
	if !s.store.DeletePrompt(id) {
		return ErrPromptNotFound
	}
	return nil
}

func (s *PromptService) checkCollectionRef(collectionID *string) error {
	if collectionID == nil || *collectionID == "" {
		return nil
	}
	if _, ok := s.store.GetCollection(*collectionID); !ok {
		return ErrCollectionNotFound
	}
	return nil
}
