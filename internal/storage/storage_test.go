package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := AtomicWriteFile(path, []byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"v":1}` {
		t.Errorf("read back %q", data)
	}

	// Overwrite is atomic too.
	if err := AtomicWriteFile(path, []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{"v":2}` {
		t.Errorf("read back %q after overwrite", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".atomic-") {
			t.Errorf("stray temp file %s", e.Name())
		}
	}
}

func TestAtomicWriteFile_BadDir(t *testing.T) {
	if err := AtomicWriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), []byte("x")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")

	if FileExists(path) {
		t.Error("FileExists true for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists false for existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists true for directory")
	}
}
