// Package media contains the media store boundary: uploaded binary assets go
// in, stable URLs come out.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "media")

// Store persists uploaded assets and returns stable URLs for them.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// FileStore is a Store backed by a local directory served under baseURL.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates new instance of FileStore.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}

	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Dir returns the directory assets are stored in.
func (s *FileStore) Dir() string { return s.dir }

// Save stores the asset under a collision-free name and returns its URL.
func (s *FileStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	name = fmt.Sprintf("%s%s", uuid.New(), filepath.Ext(name))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, name), nil
}

// Delete removes the asset behind the URL. Unknown URLs are ignored.
func (s *FileStore) Delete(_ context.Context, url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return nil
}

// DeleteQuietly deletes the asset and only logs on failure. Media cleanup
// must never fail the request that triggered it.
func DeleteQuietly(ctx context.Context, s Store, url string) {
	if url == "" {
		return
	}

	if err := s.Delete(ctx, url); err != nil {
		log.WithError(err).WithField("url", url).Warn("failed to delete media asset")
	}
}
