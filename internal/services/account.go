// Package services exposes the operations presented to the UI layer:
// account registration and login, and per-user audio asset management.
// Store-level failures are collapsed to boolean results here; diagnostics
// go to the logger.
package services

import (
	"context"
	"regexp"

	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/repositories/users"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// usernamePattern keeps usernames usable as a single path component under
// the audio root.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// AccountService orchestrates registration and authentication.
type AccountService struct {
	repo users.Repository
	log  logging.Logger
}

func NewAccountService(repo users.Repository, log logging.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// Register validates the input and creates the account. It reports false
// when validation fails, the username is taken, or the document cannot be
// written.
func (s *AccountService) Register(ctx context.Context, username, email, password, confirm string) bool {
	if username == "" || email == "" || password == "" {
		s.log.Warn(ctx, "registration declined: empty field", "username", username)
		return false
	}
	if !usernamePattern.MatchString(username) {
		s.log.Warn(ctx, "registration declined: invalid username", "username", username)
		return false
	}
	if len(password) < MinPasswordLength {
		s.log.Warn(ctx, "registration declined: password too short", "username", username)
		return false
	}
	if password != confirm {
		s.log.Warn(ctx, "registration declined: password confirmation mismatch", "username", username)
		return false
	}

	if err := s.repo.Register(ctx, username, email, password); err != nil {
		s.log.Warn(ctx, "registration failed", "username", username, "error", err)
		return false
	}

	s.log.Info(ctx, "user registered", "username", username)
	return true
}

// Login reports whether the credentials match a stored account.
func (s *AccountService) Login(ctx context.Context, username, password string) bool {
	ok := s.repo.Verify(ctx, username, password)
	if !ok {
		s.log.Warn(ctx, "login failed", "username", username)
	}
	return ok
}
