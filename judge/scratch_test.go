package judge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureScratchFile_CreatesEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := EnsureScratchFile(path); err != nil {
		t.Fatalf("EnsureScratchFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestEnsureScratchFile_RemovesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureScratchFile(path); err != nil {
		t.Fatalf("EnsureScratchFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("file still contains stale content: %q", data)
	}
}

func TestEnsureScratchFile_RemovesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	if err := EnsureScratchFile(path); err != nil {
		t.Fatalf("EnsureScratchFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.IsDir() {
		t.Error("path should now be a regular file, not a directory")
	}
}

func TestEnsureScratchFile_NonEmptyDirErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "child"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureScratchFile(path); err == nil {
		t.Error("expected an error removing a non-empty directory")
	}
}
