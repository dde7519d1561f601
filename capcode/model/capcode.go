package model

import (
	"time"

	"github.com/google/uuid"
)

// Identifier is a freshly generated 7-digit capcode in its plain form.
type Identifier string

// TransformedIdentifier is the PHC-encoded Argon2 derivation of an Identifier.
type TransformedIdentifier string

// Record is the durable unit handed to storage.
type Record struct {
	ID                    uuid.UUID             `json:"id"`
	TransformedIdentifier TransformedIdentifier `json:"capcode"`
	CreatedAt             time.Time             `json:"timestamp"`
}

// TimestampLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
