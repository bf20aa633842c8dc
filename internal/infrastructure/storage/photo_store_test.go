package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDiskPhotoStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskPhotoStore(dir)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	path, err := store.Save("Rex Foto.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != "/1700000000000.jpg" {
		t.Fatalf("unexpected public path: %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000.jpg"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestDiskPhotoStore_Save_NoExtension(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskPhotoStore(dir)
	store.now = func() time.Time { return time.UnixMilli(42) }

	path, err := store.Save("foto", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != "/42" {
		t.Fatalf("unexpected public path: %q", path)
	}
}

func TestDiskPhotoStore_Save_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskPhotoStore(dir)

	if _, err := store.Save("a.png", strings.NewReader("x")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, err=%v entries=%d", err, len(entries))
	}
}
