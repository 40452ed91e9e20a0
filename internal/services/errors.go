package services

import "errors"

// Error taxonomy for the API. Handlers map these onto HTTP status
// codes; the messages double as the response detail text.
var (
	ErrPromptNotFound      = errors.New("Prompt not found")
	ErrCollectionNotFound  = errors.New("Collection not found")
	ErrInvalidCollectionID = errors.New("Invalid collection ID")
	ErrCollectionInUse     = errors.New("Collection is associated with existing prompts")
)
