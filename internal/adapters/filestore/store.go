// Package filestore persists a catalog snapshot as a YAML document on the
// local filesystem.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/go-appstore/internal/domain"
	"github.com/jsamuelsen/go-appstore/internal/ports"
)

// DefaultPath is the store target used when none is configured.
const DefaultPath = "apps.yaml"

// Store implements ports.CatalogStore on a single YAML file. Writes go to
// a temporary file in the target directory which then replaces the target.
type Store struct {
	path   string
	logger *slog.Logger
}

var (
	_ ports.CatalogStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Config contains configuration for the file store.
type Config struct {
	// Path is the catalog file. DefaultPath when empty.
	Path string

	Logger *slog.Logger
}

// New creates a store for cfg.Path.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}

	return &Store{
		path:   path,
		logger: logger.With(slog.String("component", "filestore")),
	}
}

// Location returns the catalog file path.
func (s *Store) Location() string {
	return s.path
}

// SetPath retargets the store. The parent directory must already exist.
func (s *Store) SetPath(path string) error {
	if path == "" {
		return domain.NewValidationError("path", "is required")
	}

	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return domain.NewValidationErrorWithValue("path", "directory "+dir+" does not exist", path)
	}

	s.path = path

	return nil
}

// Save encodes snap and atomically replaces the catalog file.
func (s *Store) Save(ctx context.Context, snap *ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toDocument(snap)); err != nil {
		return domain.NewStorageError("encode", s.path, err)
	}

	if err := enc.Close(); err != nil {
		return domain.NewStorageError("encode", s.path, err)
	}

	if err := s.writeAtomic(buf.Bytes()); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "catalog written",
		slog.String("path", s.path),
		slog.Int("bytes", buf.Len()),
	)

	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return domain.NewStorageError("create", s.path, err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()

		return domain.NewStorageError("write", s.path, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()

		return domain.NewStorageError("sync", s.path, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return domain.NewStorageError("close", s.path, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return domain.NewStorageError("rename", s.path, err)
	}

	return nil
}

// Load reads and decodes the catalog file. A missing file yields a
// *domain.StorageError that unwraps to fs.ErrNotExist.
func (s *Store) Load(ctx context.Context) (*ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewStorageError("read", s.path, err)
	}

	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return nil, domain.NewSchemaErrorWithCause("", "malformed document", err)
	}

	snap, err := fromDocument(&doc)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "catalog read",
		slog.String("path", s.path),
		slog.Int("apps", len(snap.Apps)),
	)

	return snap, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "catalog-file"
}

// Check verifies the directory holding the catalog file exists.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)

	info, err := os.Stat(dir)
	if err != nil {
		return domain.NewStorageError("stat", dir, err)
	}

	if !info.IsDir() {
		return domain.NewStorageError("stat", dir, errors.New("not a directory"))
	}

	return nil
}
