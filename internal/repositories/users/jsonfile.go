package users

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/voicekeep/voicekeep/internal/common"
	"github.com/voicekeep/voicekeep/internal/document"
	"github.com/voicekeep/voicekeep/internal/models"
)

// JSONRepository keeps user records in the shared JSON document.
type JSONRepository struct {
	docs *document.Store
}

func NewJSONRepository(docs *document.Store) *JSONRepository {
	return &JSONRepository{docs: docs}
}

// HashPassword returns the hex-encoded SHA-256 digest of password. The
// digest is deterministic and unsalted so documents written by earlier
// deployments keep verifying.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (r *JSONRepository) Register(ctx context.Context, username, email, password string) error {
	// The existence check and the insert run under the document lock, so
	// two sequential in-process registrations cannot both win.
	return r.docs.Update(ctx, func(doc document.Document) error {
		if _, ok := doc[username]; ok {
			return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
		}
		doc[username] = &models.UserRecord{
			Email:        email,
			PasswordHash: HashPassword(password),
			CreatedAt:    time.Now(),
			AudioFiles:   []models.AssetRecord{},
		}
		return nil
	})
}

func (r *JSONRepository) Verify(ctx context.Context, username, password string) bool {
	user, ok := r.docs.Load(ctx)[username]
	if !ok {
		return false
	}
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(candidate)) == 1
}

func (r *JSONRepository) Get(ctx context.Context, username string) (*models.UserRecord, error) {
	user, ok := r.docs.Load(ctx)[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	return user, nil
}
