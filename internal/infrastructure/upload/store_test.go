package upload

import (
	"os"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	stored, err := s.Save("card.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(stored, "_card.pdf") {
		t.Fatalf("stored name = %q, want *_card.pdf", stored)
	}
	b, err := os.ReadFile(s.Path(stored))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "pdf bytes" {
		t.Fatalf("content = %q", b)
	}

	if err := s.Remove(stored); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(s.Path(stored)); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove")
	}
	// Removing again is a no-op.
	if err := s.Remove(stored); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestSaveStripsClientPath(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	stored, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(stored, "/") || strings.Contains(stored, "..") {
		t.Fatalf("stored name leaks path: %q", stored)
	}
	if !strings.HasSuffix(stored, "_passwd") {
		t.Fatalf("stored name = %q, want *_passwd", stored)
	}
}

func TestDistinctStoredNames(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	a, _ := s.Save("card.pdf", strings.NewReader("one"))
	b, _ := s.Save("card.pdf", strings.NewReader("two"))
	if a == b {
		t.Fatalf("same stored name for two uploads: %q", a)
	}
}
