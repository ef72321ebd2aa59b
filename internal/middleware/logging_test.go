package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/storage"
	"github.com/mmynk/tipsplit/internal/storage/memory"
)

// brokenStore fails every integer write.
type brokenStore struct{ *memory.Store }

var errDisk = errors.New("disk on fire")

func (brokenStore) WriteInt(context.Context, uint32, int32) error { return errDisk }

func TestLoggingStore(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := metrics.NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	s := LoggingStore(memory.New(), logger, m)

	if err := s.WriteInt(ctx, 300, 18); err != nil {
		t.Fatalf("WriteInt failed: %v", err)
	}
	if v, err := s.ReadInt(ctx, 300); err != nil || v != 18 {
		t.Fatalf("ReadInt = %d, %v; want 18, nil", v, err)
	}
	if _, err := s.ReadData(ctx, 200); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("ReadData error = %v, want ErrNotFound", err)
	}

	if got := testutil.ToFloat64(m.StoreOps.WithLabelValues("write_int", "ok")); got != 1 {
		t.Errorf("write_int ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.StoreOps.WithLabelValues("read_data", "not_found")); got != 1 {
		t.Errorf("read_data not_found = %v, want 1", got)
	}
	if !strings.Contains(buf.String(), "store key not found") {
		t.Errorf("missing not-found log line in:\n%s", buf.String())
	}
}

func TestLoggingStoreError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := metrics.NewMetrics(prometheus.NewRegistry())

	s := LoggingStore(brokenStore{memory.New()}, logger, m)

	if err := s.WriteInt(context.Background(), 100, 1); !errors.Is(err, errDisk) {
		t.Fatalf("WriteInt error = %v, want %v", err, errDisk)
	}
	if got := testutil.ToFloat64(m.StoreOps.WithLabelValues("write_int", "error")); got != 1 {
		t.Errorf("write_int error = %v, want 1", got)
	}
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Errorf("error not logged:\n%s", buf.String())
	}
}

func TestLoggingStoreNilMetrics(t *testing.T) {
	s := LoggingStore(memory.New(), nil, nil)
	if err := s.WriteData(context.Background(), 200, []byte{1}); err != nil {
		t.Fatalf("WriteData failed: %v", err)
	}
}
