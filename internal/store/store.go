// Package store holds all prompts and collections in process memory.
// It is a dumb keyed container: referential integrity between the two
// entity types is enforced by the service layer, not here.
package store

import (
	"sync"

	"promptlab-backend/internal/models"
)

// Store keeps prompts and collections in maps keyed by id. A single
// coarse lock guards both maps so concurrent HTTP handlers observe
// sequentially consistent state. Listing preserves insertion order.
type Store struct {
	mu              sync.RWMutex
	prompts         map[string]models.Prompt
	promptOrder     []string
	collections     map[string]models.Collection
	collectionOrder []string
}

func New() *Store {
	return &Store{
		prompts:     make(map[string]models.Prompt),
		collections: make(map[string]models.Collection),
	}
}

// CreatePrompt inserts a prompt keyed by its id. An existing entry
// with the same id is silently overwritten.
func (s *Store) CreatePrompt(p models.Prompt) models.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.prompts[p.ID]; !exists {
		s.promptOrder = append(s.promptOrder, p.ID)
	}
	s.prompts[p.ID] = p
	return p
}

// GetPrompt returns the prompt with the given id, if present.
func (s *Store) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	return p, ok
}

// ListPrompts returns all prompts in insertion order.
func (s *Store) ListPrompts() []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompts := make([]models.Prompt, 0, len(s.promptOrder))
	for _, id := range s.promptOrder {
		prompts = append(prompts, s.prompts[id])
	}
	return prompts
}

// UpdatePrompt replaces the prompt at id. It reports false and stores
// nothing if no prompt with that id exists.
func (s *Store) UpdatePrompt(id string, p models.Prompt) (models.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return models.Prompt{}, false
	}
	s.prompts[id] = p
	return p, true
}

// DeletePrompt removes the prompt with the given id and reports
// whether a removal occurred.
func (s *Store) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return false
	}
	delete(s.prompts, id)
	s.promptOrder = removeID(s.promptOrder, id)
	return true
}

// ListPromptsByCollection returns the prompts whose collection_id
// equals the given id, in insertion order.
func (s *Store) ListPromptsByCollection(collectionID string) []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var prompts []models.Prompt
	for _, id := range s.promptOrder {
		p := s.prompts[id]
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			prompts = append(prompts, p)
		}
	}
	return prompts
}

// CreateCollection inserts a collection keyed by its id. An existing
// entry with the same id is silently overwritten.
func (s *Store) CreateCollection(c models.Collection) models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[c.ID]; !exists {
		s.collectionOrder = append(s.collectionOrder, c.ID)
	}
	s.collections[c.ID] = c
	return c
}

// GetCollection returns the collection with the given id, if present.
func (s *Store) GetCollection(id string) (models.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	return c, ok
}

// ListCollections returns all collections in insertion order.
func (s *Store) ListCollections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collections := make([]models.Collection, 0, len(s.collectionOrder))
	for _, id := range s.collectionOrder {
		collections = append(collections, s.collections[id])
	}
	return collections
}

// DeleteCollection removes the collection with the given id and
// reports whether a removal occurred.
func (s *Store) DeleteCollection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return false
	}
	delete(s.collections, id)
	s.collectionOrder = removeID(s.collectionOrder, id)
	return true
}

// Clear empties the store. Test utility.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = make(map[string]models.Prompt)
	s.promptOrder = nil
	s.collections = make(map[string]models.Collection)
	s.collectionOrder = nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
