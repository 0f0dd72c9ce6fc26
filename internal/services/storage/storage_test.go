package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080/")

	url, err := store.Save("cv.pdf", strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(url, "http://localhost:8080/uploads/resumes/") {
		t.Errorf("url = %q, want base-prefixed /uploads/resumes/ path", url)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Errorf("url = %q, want .pdf suffix preserved", url)
	}

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, "resumes", name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("stored content = %q", data)
	}
}

func TestDiskStoreSaveWithoutBaseURL(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "")

	url, err := store.Save("cv.docx", strings.NewReader("doc"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/resumes/") {
		t.Errorf("url = %q, want relative /uploads/resumes/ path", url)
	}
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "")

	a, err := store.Save("cv.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := store.Save("cv.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Errorf("two saves of the same filename produced the same URL %q", a)
	}
}
