package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "max_score.txt")
	f := NewFileStore(path)

	n, err := f.Load(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Load on missing file = %d, %v; want 0, nil", n, err)
	}
	if err := f.Save(ctx, 75); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "75" {
		t.Fatalf("file content = %q; want plain decimal 75", raw)
	}
	if n, err := f.Load(ctx); err != nil || n != 75 {
		t.Fatalf("Load = %d, %v; want 75, nil", n, err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	cases := map[string]string{
		"text":     "not a number",
		"negative": "-5",
		"empty":    "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "max_score.txt")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			n, err := NewFileStore(path).Load(context.Background())
			if n != 0 || !errors.Is(err, ErrRead) {
				t.Fatalf("Load = %d, %v; want 0 and ErrRead", n, err)
			}
		})
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "max_score.txt")
	_ = os.WriteFile(path, []byte(" 90\n"), 0o644)
	if n, err := NewFileStore(path).Load(context.Background()); err != nil || n != 90 {
		t.Fatalf("Load = %d, %v; want 90, nil", n, err)
	}
}

func TestFileStoreWriteFailure(t *testing.T) {
	// a directory in place of the file makes the rename fail
	path := filepath.Join(t.TempDir(), "max_score.txt")
	if err := os.MkdirAll(filepath.Join(path, "blocker"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := NewFileStore(path).Save(context.Background(), 10); !errors.Is(err, ErrWrite) {
		t.Fatalf("Save err = %v; want ErrWrite", err)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(60)
	if n, _ := m.Load(ctx); n != 60 {
		t.Fatalf("Load = %d; want 60", n)
	}
	_ = m.Save(ctx, 75)
	if n, _ := m.Load(ctx); n != 75 || m.Saves() != 1 {
		t.Fatalf("Load = %d saves = %d; want 75/1", n, m.Saves())
	}
}
