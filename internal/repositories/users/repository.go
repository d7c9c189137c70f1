// Package users is the credential store: it owns password hashing and the
// user entries of the shared document.
package users

import (
	"context"

	"github.com/voicekeep/voicekeep/internal/models"
)

type Repository interface {
	// Register inserts a new user with an empty asset list. It returns
	// common.ErrAlreadyExists when the username is taken.
	Register(ctx context.Context, username, email, password string) error

	// Verify reports whether username exists and password matches the
	// stored digest.
	Verify(ctx context.Context, username, password string) bool

	// Get returns the record for username, or common.ErrNotFound.
	Get(ctx context.Context, username string) (*models.UserRecord, error)
}
