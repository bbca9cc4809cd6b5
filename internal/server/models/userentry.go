package models

import (
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
)

// UserEntry is an authorization record plus the credentials that let its
// owner sign in. PasswordHash never leaves the server.
type UserEntry struct {
	ID           string
	Record       access.Record
	PasswordHash string
	CreatedAt    time.Time
}
