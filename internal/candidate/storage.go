package candidate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hotelops/hotel-operations/internal"
)

// FileStore persists candidate CVs on local disk under a single uploads
// directory. Stored names are uuid-based so a client-supplied file name can
// never address a path outside the directory.
type FileStore struct {
	dir         string
	maxSize     int64
	allowedExts []string
}

func NewFileStore(cfg internal.UploadsConfig) (*FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &FileStore{
		dir:         cfg.Dir,
		maxSize:     cfg.MaxSizeMB * 1024 * 1024,
		allowedExts: cfg.AllowedExtensions(),
	}, nil
}

// Save streams the upload to disk and returns the stored file name.
func (fs *FileStore) Save(originalName string, size int64, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !fs.extAllowed(ext) {
		return "", internal.NewValidationFieldError("cv",
			fmt.Sprintf("file type %q is not allowed", ext), internal.ErrCodeValidationFailed)
	}
	if size > fs.maxSize {
		return "", internal.NewValidationFieldError("cv",
			fmt.Sprintf("file exceeds the %d byte limit", fs.maxSize), internal.ErrCodeValidationFailed)
	}

	stored := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(fs.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create cv file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, fs.maxSize+1)); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write cv file: %w", err)
	}

	return stored, nil
}

// Open returns a reader over a stored CV.
func (fs *FileStore) Open(storedName string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(fs.dir, filepath.Base(storedName)))
}

// Remove deletes a stored CV. A missing file is not an error; the record is
// what matters.
func (fs *FileStore) Remove(storedName string) error {
	if storedName == "" {
		return nil
	}
	err := os.Remove(filepath.Join(fs.dir, filepath.Base(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (fs *FileStore) extAllowed(ext string) bool {
	for _, allowed := range fs.allowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
