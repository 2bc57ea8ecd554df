package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sumitdoescode/Clicks/config"
	"github.com/sumitdoescode/Clicks/pkg/errors"
)

const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// Store is the image blob collaborator. Post and profile images go through
// it; the rest of the system only sees URLs.
type Store interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// LocalStore keeps images on the local filesystem and serves them from a
// static route.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(cfg config.Storage) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: cfg.UploadDir, baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}, nil
}

func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.ErrImageRequired
	}
	if fh.Size > MaxUploadSize {
		return "", errors.ErrImageTooLarge
	}
	if !allowedImageTypes[fh.Header.Get("Content-Type")] {
		return "", errors.ErrImageBadType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

func (s *LocalStore) Remove(url string) error {
	name := strings.TrimPrefix(url, s.baseURL+"/")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil // not one of ours
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Dir exposes the upload directory so the router can mount a file server on it.
func (s *LocalStore) Dir() string { return s.dir }
