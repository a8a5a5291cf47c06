package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadTextFile_Latin1(t *testing.T) {
	fsys := NewMockFS()
	fsys.AddFile("/conf/domain.xml", []byte{'c', 'a', 'f', 0xE9}, 0644)

	got, err := ReadTextFile(fsys, "/conf/domain.xml", "ISO-8859-1")
	if err != nil {
		t.Fatalf("ReadTextFile error: %v", err)
	}
	if got != "café" {
		t.Errorf("ReadTextFile = %q, want %q", got, "café")
	}
}

func TestWriteTextFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	fsys := DefaultFS()

	if err := WriteTextFile(fsys, path, "naïve", "ISO-8859-1", 0644); err != nil {
		t.Fatalf("WriteTextFile error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(raw) != 5 {
		t.Errorf("encoded length = %d, want 5", len(raw))
	}

	got, err := ReadTextFile(fsys, path, "ISO-8859-1")
	if err != nil {
		t.Fatalf("ReadTextFile error: %v", err)
	}
	if got != "naïve" {
		t.Errorf("round trip = %q, want %q", got, "naïve")
	}
}

func TestReadTextFile_DefaultEncoding(t *testing.T) {
	fsys := NewMockFS()
	fsys.AddFile("/a.txt", []byte("héllo"), 0644)

	got, err := ReadTextFile(fsys, "/a.txt", "")
	if err != nil {
		t.Fatalf("ReadTextFile error: %v", err)
	}
	if got != "héllo" {
		t.Errorf("ReadTextFile = %q, want %q", got, "héllo")
	}
}

func TestReadTextFile_UnknownEncoding(t *testing.T) {
	fsys := NewMockFS()
	fsys.AddFile("/a.txt", []byte("x"), 0644)

	if _, err := ReadTextFile(fsys, "/a.txt", "no-such-charset"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestReadTextFile_Missing(t *testing.T) {
	fsys := NewMockFS()
	if _, err := ReadTextFile(fsys, "/missing.xml", "UTF-8"); err == nil {
		t.Error("expected error for missing file")
	}
}
