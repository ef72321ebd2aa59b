package sqlite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tipsplit/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "tipsplit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("missing keys", func(t *testing.T) {
		ok, err := store.Exists(ctx, 1)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if ok {
			t.Error("Expected key 1 to be absent")
		}
		if _, err := store.ReadInt(ctx, 1); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("ReadInt error = %v, want ErrNotFound", err)
		}
		if _, err := store.ReadData(ctx, 1); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("ReadData error = %v, want ErrNotFound", err)
		}
	})

	t.Run("int round trip", func(t *testing.T) {
		if err := store.WriteInt(ctx, 100, -7); err != nil {
			t.Fatalf("WriteInt failed: %v", err)
		}
		got, err := store.ReadInt(ctx, 100)
		if err != nil {
			t.Fatalf("ReadInt failed: %v", err)
		}
		if got != -7 {
			t.Errorf("ReadInt = %d, want -7", got)
		}
		ok, err := store.Exists(ctx, 100)
		if err != nil || !ok {
			t.Errorf("Exists = %v, %v; want true, nil", ok, err)
		}
	})

	t.Run("data round trip", func(t *testing.T) {
		want := []byte{1, 0, 0, 0, 2, 0, 0, 0}
		if err := store.WriteData(ctx, 200, want); err != nil {
			t.Fatalf("WriteData failed: %v", err)
		}
		got, err := store.ReadData(ctx, 200)
		if err != nil {
			t.Fatalf("ReadData failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadData = %v, want %v", got, want)
		}
	})

	t.Run("overwrite changes kind", func(t *testing.T) {
		if err := store.WriteInt(ctx, 300, 15); err != nil {
			t.Fatalf("WriteInt failed: %v", err)
		}
		if err := store.WriteData(ctx, 300, []byte("x")); err != nil {
			t.Fatalf("WriteData failed: %v", err)
		}
		if _, err := store.ReadInt(ctx, 300); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("ReadInt after WriteData error = %v, want ErrNotFound", err)
		}
		got, err := store.ReadData(ctx, 300)
		if err != nil {
			t.Fatalf("ReadData failed: %v", err)
		}
		if string(got) != "x" {
			t.Errorf("ReadData = %q, want %q", got, "x")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.WriteInt(ctx, 400, 3); err != nil {
			t.Fatalf("WriteInt failed: %v", err)
		}
		if err := store.Delete(ctx, 400); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if ok, _ := store.Exists(ctx, 400); ok {
			t.Error("Expected key 400 to be deleted")
		}
		if err := store.Delete(ctx, 400); err != nil {
			t.Errorf("Delete of missing key failed: %v", err)
		}
	})
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.WriteInt(ctx, 300, 20); err != nil {
		t.Fatalf("WriteInt failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.ReadInt(ctx, 300)
	if err != nil {
		t.Fatalf("ReadInt failed: %v", err)
	}
	if got != 20 {
		t.Errorf("ReadInt = %d, want 20", got)
	}
}
