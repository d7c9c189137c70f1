// Package models defines the records persisted in the shared user document.
// JSON field names match the on-disk document format and must stay stable.
package models

import "time"

// UserRecord is one entry of the user document, keyed by username. The
// username itself is the map key and never changes after registration.
type UserRecord struct {
	Email        string        `json:"email"`
	PasswordHash string        `json:"password"`
	CreatedAt    time.Time     `json:"created_at"`
	AudioFiles   []AssetRecord `json:"audio_files"`
}
