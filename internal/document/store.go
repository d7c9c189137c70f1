// Package document provides the single serializing gateway to the shared
// user document. Every read and mutation goes through one Store so that the
// registration existence check and asset-list updates observe a consistent
// view within the process. Across processes the document stays
// last-writer-wins: mutation is always a whole-document rewrite.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/voicekeep/voicekeep/internal/common"
	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/models"
)

// Document maps username to the user's record.
type Document map[string]*models.UserRecord

// Store owns the document file. All access holds the store mutex for the
// duration of the read-modify-write.
type Store struct {
	path string
	mu   sync.Mutex
	log  logging.Logger
}

func NewStore(path string, log logging.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the persisted document. A missing or unparsable file is
// treated as an empty document, never as a fatal condition.
func (s *Store) Load(ctx context.Context) Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save rewrites the whole document.
func (s *Store) Save(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn against the current document under the store lock and, if
// fn succeeds, persists the result. An error from fn aborts the update and
// nothing is written.
func (s *Store) Update(ctx context.Context, fn func(doc Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load(ctx context.Context) Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn(ctx, "cannot read user document, treating as empty", "path", s.path, "error", err)
		}
		return Document{}
	}

	doc := Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn(ctx, "user document is corrupt, treating as empty", "path", s.path, "error", err)
		return Document{}
	}
	return doc
}

// save marshals the document with indentation (the file must stay
// human-diffable) and writes it via a temp file plus rename, so a reader
// never observes a partially written document.
func (s *Store) save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", common.ErrStorageIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp document: %v", common.ErrStorageIO, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp document: %v", common.ErrStorageIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp document: %v", common.ErrStorageIO, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename document into place: %v", common.ErrStorageIO, err)
	}
	return nil
}
