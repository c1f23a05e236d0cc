package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// Store persists the whole storefront document as one JSON file. A
// single mutex serializes every read-modify-write cycle, and writes
// land through a temp file rename so a crash mid-write cannot leave a
// truncated store behind.
type Store struct {
	path string
	mu   sync.Mutex
	log  *logrus.Logger
}

func Open(path string, logger *logrus.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	s := &Store{path: path, log: logger}
	if _, err := s.load(); err != nil {
		return nil, fmt.Errorf("store open failed: %w", err)
	}
	return s, nil
}

// Read returns the current document. Whole-document reads only; there
// are no partial loads.
func (s *Store) Read() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update loads the document, applies fn and writes the result back
// atomically. If fn fails nothing is written and the previous file
// contents stay intact.
func (s *Store) Update(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) load() (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not read store file %s: %w", s.path, err)
	}
	doc := &domain.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("could not parse store file %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) write(doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("could not create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not replace store file: %w", err)
	}

	s.log.Debugf("Store document written to %s (%d bytes)", s.path, len(raw))
	return nil
}
