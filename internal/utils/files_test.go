package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDirNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
	// Idempotent on existing dirs.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir again: %v", err)
	}
}

func TestSafeWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := SafeWriteFile(path, []byte("hello")); err != nil {
		t.Fatalf("SafeWriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "hello" {
		t.Fatalf("read back = %q, %v", b, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	// Overwrite in place.
	if err := SafeWriteFile(path, []byte("replaced")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ = os.ReadFile(path)
	if string(b) != "replaced" {
		t.Fatalf("after overwrite = %q", b)
	}
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"answer": 42})
	if err != nil {
		t.Fatalf("PrettyJSON: %v", err)
	}
	if !strings.Contains(string(b), "\"answer\": 42") {
		t.Fatalf("output = %s", b)
	}
}
