package file

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

/*
TestOpen verifies reading an existing file end to end.
*/
func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte("name,price\nApple,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := NewLocal(path).Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "name,price\nApple,1\n" {
		t.Errorf("read %q", got)
	}
}

/*
TestOpenNotFound verifies that a missing path maps to ErrSourceNotFound while
still matching fs.ErrNotExist through the wrap chain.
*/
func TestOpenNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := NewLocal(path).Open(context.Background())
	if err == nil {
		t.Fatal("Open() expected error, got nil")
	}
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("errors.Is(err, ErrSourceNotFound) = false, err = %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false, err = %v", err)
	}
}

/*
TestOpenCanceledContext verifies that a canceled context short-circuits
before the filesystem is touched.
*/
func TestOpenCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocal(path).Open(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}
