package services

import (
	"strings"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/query"
	"promptlab-backend/internal/store"
)

// CollectionInput carries the fields for creating a collection.
type CollectionInput struct {
	Name        string
	Description *string
}

// CollectionService owns collection lifecycle rules, including the
// guard against deleting a collection that prompts still reference.
type CollectionService struct {
	store *store.Store
}

func NewCollectionService(s *store.Store) *CollectionService {
	return &CollectionService{store: s}
}

// Create stores a new collection.
func (s *CollectionService) Create(in CollectionInput) models.Collection {
	collection := models.NewCollection(in.Name, in.Description)
	return s.store.CreateCollection(collection)
}

// Get returns the collection with the given id.
func (s *CollectionService) Get(id string) (models.Collection, error) {
	collection, ok := s.store.GetCollection(id)
	if !ok {
		return models.Collection{}, ErrCollectionNotFound
	}
	return collection, nil
}

// List returns all collections in insertion order.
func (s *CollectionService) List() []models.Collection {
	return s.store.ListCollections()
}

// Delete removes a collection. It refuses blank ids and collections
// still referenced by at least one prompt; refused deletes perform no
// mutation.
func (s *CollectionService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidCollectionID
	}

	if _, ok := s.store.GetCollection(id); !ok {
		return ErrCollectionNotFound
	}

	if referencing := query.FilterByCollection(s.store.ListPrompts(), id); len(referencing) > 0 {
		return ErrCollectionInUse
	}

	s.store.DeleteCollection(id)
	return nil
}
