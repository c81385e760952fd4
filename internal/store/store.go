package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"mspro-labs/lunch-picker/internal/models"
)

// Status tells the caller how Load obtained its records.
type Status int

const (
	Loaded Status = iota
	RecoveredFromMissing
	RecoveredFromCorrupt
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case RecoveredFromMissing:
		return "recovered-from-missing"
	case RecoveredFromCorrupt:
		return "recovered-from-corrupt"
	}
	return "unknown"
}

// Result is the outcome of Load. Records is always usable.
type Result struct {
	Records []models.Restaurant
	Status  Status
	// Cause holds the read or parse error behind a recovery.
	Cause error
}

// Store reads and writes the catalog as a JSON file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog file. When the file is missing or cannot be parsed
// the seed list is returned and written back to disk.
// The error is non-nil only if that write-back fails.
func (s *Store) Load() (Result, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.reseed(RecoveredFromMissing, err)
	}
	if err != nil {
		return s.reseed(RecoveredFromCorrupt, err)
	}

	var records []models.Restaurant
	if err := decode(data, &records); err != nil {
		return s.reseed(RecoveredFromCorrupt, err)
	}
	return Result{Records: records, Status: Loaded}, nil
}

func (s *Store) reseed(status Status, cause error) (Result, error) {
	res := Result{Records: Seed(), Status: status, Cause: cause}
	if err := s.Save(res.Records); err != nil {
		return res, err
	}
	return res, nil
}

// Save overwrites the file with the whole catalog.
func (s *Store) Save(records []models.Restaurant) error {
	if records == nil {
		records = []models.Restaurant{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog to '%s': %w", s.path, err)
	}
	return nil
}

func decode(data []byte, records *[]models.Restaurant) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return errors.New("catalog file is not a JSON array")
	}
	if err := json.Unmarshal(trimmed, records); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	if *records == nil {
		*records = []models.Restaurant{}
	}
	return nil
}
