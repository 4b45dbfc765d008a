package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidFolderPath is returned when the requested subfolder would
// escape the public root.
var ErrInvalidFolderPath = errors.New("invalid folder path")

// LocalStore persists uploaded media on local disk beneath a fixed public
// root and maps stored files to root-relative URLs under /uploads.
type LocalStore struct {
	root      string
	urlPrefix string
}

// NewLocalStore creates a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir, urlPrefix: "/uploads"}
}

// Save writes the uploaded file under folderPath, naming it with the current
// epoch-millis timestamp plus the original extension. Intermediate
// directories are created as needed. Collisions finer than a millisecond are
// not handled. Returns the root-relative URL of the stored file.
func (s *LocalStore) Save(file *multipart.FileHeader, folderPath string) (string, error) {
	folder, err := cleanFolderPath(folderPath)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), strings.ToLower(filepath.Ext(file.Filename)))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(s.urlPrefix, folder, name), nil
}

// cleanFolderPath normalizes a caller-supplied subfolder and rejects
// anything that points outside the root.
func cleanFolderPath(folderPath string) (string, error) {
	folder := strings.Trim(strings.TrimSpace(folderPath), "/")
	if folder == "" {
		return "", ErrInvalidFolderPath
	}
	folder = path.Clean(folder)
	if folder == "." || folder == ".." || strings.HasPrefix(folder, "../") {
		return "", ErrInvalidFolderPath
	}
	return folder, nil
}
