// Package storage implements the local-disk photo store. Uploaded files land
// in a public-facing directory and are served by the static middleware, so
// the returned path doubles as the URL the views embed.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DiskPhotoStore writes uploads to dir, named by upload timestamp plus the
// original extension.
type DiskPhotoStore struct {
	dir string
	now func() time.Time
}

func NewDiskPhotoStore(dir string) *DiskPhotoStore {
	return &DiskPhotoStore{dir: dir, now: time.Now}
}

func (s *DiskPhotoStore) Save(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := strconv.FormatInt(s.now().UnixMilli(), 10) + strings.ToLower(filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/" + name, nil
}
