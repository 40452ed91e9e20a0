package models

import (
	"time"

	"github.com/google/uuid"
)

// Now returns the current UTC time. It is a variable so tests can
// substitute a fixed clock.
var Now = func() time.Time {
	return time.Now().UTC()
}

// GenerateID returns a globally unique identifier for a new entity.
func GenerateID() string {
	return uuid.NewString()
}
