package storage

import (
	"DocVault/config"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes binaries under a single upload directory on disk.
type LocalStore struct {
	Dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) path(object string) (string, error) {
	// object names are generated server-side, but reject separators anyway
	if strings.ContainsAny(object, `/\`) || object == "" || object == "." || object == ".." {
		return "", fmt.Errorf("invalid object name %q", object)
	}
	return filepath.Join(s.Dir, object), nil
}

// Put writes an object to the upload directory.
func (s *LocalStore) Put(ctx context.Context, object string, reader io.Reader, size int64, contentType string) error {
	target, err := s.path(object)
	if err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return err
	}
	return f.Close()
}

// Remove deletes an object; a missing file is not an error.
func (s *LocalStore) Remove(ctx context.Context, object string) error {
	target, err := s.path(object)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// InitLocal initializes the local disk store as Default.
func InitLocal() {
	store, err := NewLocalStore(config.AppConfig.UploadDir)
	if err != nil {
		log.Fatalln("init upload dir fail:", err)
	}
	Default = store
	log.Println("init local storage success:", config.AppConfig.UploadDir)
}
