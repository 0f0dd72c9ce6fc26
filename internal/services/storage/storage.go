// Package storage persists uploaded resume files and hands back the public
// URL stored on the application record.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResumeStore is the blob-store seam used by the apply handler.
type ResumeStore interface {
	Save(name string, r io.Reader) (string, error)
}

// DiskStore writes resumes under dir/resumes and serves them through the
// app's static /uploads route.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{Dir: dir, BaseURL: baseURL}
}

func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	uploadDir := filepath.Join(s.Dir, "resumes")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(name))
	filename := fmt.Sprintf("resume_%d%s", time.Now().UnixNano(), ext)
	savePath := filepath.Join(uploadDir, filename)

	f, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(savePath)
		return "", err
	}

	publicPath := "/uploads/resumes/" + filename
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/") + publicPath, nil
	}
	return publicPath, nil
}
