// Package photos stores restaurant photos under unique, timestamped names.
package photos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	filePrefix    = "JPEG_"
	fileSuffix    = ".jpg"
	timestampForm = "20060102_150405"

	// MaxSize is the largest photo accepted, in bytes.
	MaxSize = 10 << 20
)

var (
	ErrEmpty    = errors.New("photo is empty")
	ErrTooLarge = errors.New("photo is too large")
	ErrNotJPEG  = errors.New("photo is not a JPEG image")
	ErrNotFound = errors.New("photo not found")
)

// Store writes photos into one directory of an afero filesystem.
type Store struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// New creates a store rooted at dir. The directory is created if missing.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &Store{fs: fs, dir: dir, now: time.Now}, nil
}

// NewOS creates a store on the local disk.
func NewOS(dir string) (*Store, error) {
	return New(afero.NewOsFs(), dir)
}

// Dir returns the directory photos are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a JPEG and returns its path. Names look like
// JPEG_20060102_150405_<random>.jpg so two photos taken in the same second never collide.
func (s *Store) Save(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch {
	case len(data) == 0:
		return "", ErrEmpty
	case len(data) > MaxSize:
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	case http.DetectContentType(data) != "image/jpeg":
		return "", ErrNotJPEG
	}

	pattern := filePrefix + s.now().Format(timestampForm) + "_*" + fileSuffix
	f, err := afero.TempFile(s.fs, s.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(f.Name())
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(f.Name())
		return "", fmt.Errorf("failed to close photo: %w", err)
	}
	return f.Name(), nil
}

// Load reads a photo previously returned by Save.
func (s *Store) Load(path string) ([]byte, error) {
	if err := s.contains(path); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	return data, nil
}

// Check reports whether path names a stored photo, i.e. one Save returned.
func (s *Store) Check(path string) error {
	if err := s.contains(path); err != nil {
		return err
	}
	info, err := s.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat photo: %w", err)
	}
	return nil
}

// Handler serves stored photos by file name, e.g. GET /JPEG_20240309_140507_1.jpg.
// Mount it under a prefix with http.StripPrefix.
func (s *Store) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/")
		data, err := s.Load(filepath.Join(s.dir, name))
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("Failed to serve photo", "name", name, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(data)
	})
}

func (s *Store) contains(path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}
