// Package query provides the read-side helpers used by the prompt
// listing endpoint: ordering, collection filtering, and text search.
package query

import (
	"sort"
	"strings"

	"promptlab-backend/internal/models"
)

// SortByDate returns a copy of prompts ordered by updated_at. The sort
// is stable, so prompts with equal timestamps keep their relative
// order.
func SortByDate(prompts []models.Prompt, descending bool) []models.Prompt {
	sorted := make([]models.Prompt, len(prompts))
	copy(sorted, prompts)

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		}
		return sorted[i].UpdatedAt.Before(sorted[j].UpdatedAt)
	})
	return sorted
}

// FilterByCollection retains the prompts whose collection_id equals
// collectionID. The match is exact and case-sensitive.
func FilterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	var filtered []models.Prompt
	for _, p := range prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Search retains the prompts whose title or content contains term,
// case-insensitively.
func Search(prompts []models.Prompt, term string) []models.Prompt {
	term = strings.ToLower(term)

	var matched []models.Prompt
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Content), term) {
			matched = append(matched, p)
		}
	}
	return matched
}
