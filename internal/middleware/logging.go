package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/storage"
)

// Ensure loggingStore implements storage.Store
var _ storage.Store = (*loggingStore)(nil)

// LoggingStore wraps a storage.Store so every call is logged and, when m is
// non-nil, counted and timed. A missing key is logged at debug level as a
// normal outcome, not as an error.
func LoggingStore(next storage.Store, logger *slog.Logger, m *metrics.Metrics) storage.Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingStore{next: next, logger: logger, metrics: m}
}

type loggingStore struct {
	next    storage.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func (s *loggingStore) observe(ctx context.Context, op string, key uint32, start time.Time, err error) {
	duration := time.Since(start)
	result := "ok"

	switch {
	case err == nil:
		s.logger.DebugContext(ctx, "store ok",
			"op", op,
			"key", key,
			"duration_ms", duration.Milliseconds(),
		)
	case errors.Is(err, storage.ErrNotFound):
		result = "not_found"
		s.logger.DebugContext(ctx, "store key not found",
			"op", op,
			"key", key,
		)
	default:
		result = "error"
		s.logger.ErrorContext(ctx, "store error",
			"op", op,
			"key", key,
			"error", err,
			"duration_ms", duration.Milliseconds(),
		)
	}

	if s.metrics != nil {
		s.metrics.StoreOps.WithLabelValues(op, result).Inc()
		s.metrics.StoreOpDuration.WithLabelValues(op).Observe(duration.Seconds())
	}
}

func (s *loggingStore) Exists(ctx context.Context, key uint32) (bool, error) {
	start := time.Now()
	ok, err := s.next.Exists(ctx, key)
	s.observe(ctx, "exists", key, start, err)
	return ok, err
}

func (s *loggingStore) ReadInt(ctx context.Context, key uint32) (int32, error) {
	start := time.Now()
	v, err := s.next.ReadInt(ctx, key)
	s.observe(ctx, "read_int", key, start, err)
	return v, err
}

func (s *loggingStore) WriteInt(ctx context.Context, key uint32, value int32) error {
	start := time.Now()
	err := s.next.WriteInt(ctx, key, value)
	s.observe(ctx, "write_int", key, start, err)
	return err
}

func (s *loggingStore) ReadData(ctx context.Context, key uint32) ([]byte, error) {
	start := time.Now()
	data, err := s.next.ReadData(ctx, key)
	s.observe(ctx, "read_data", key, start, err)
	return data, err
}

func (s *loggingStore) WriteData(ctx context.Context, key uint32, data []byte) error {
	start := time.Now()
	err := s.next.WriteData(ctx, key, data)
	s.observe(ctx, "write_data", key, start, err)
	return err
}

func (s *loggingStore) Delete(ctx context.Context, key uint32) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe(ctx, "delete", key, start, err)
	return err
}

func (s *loggingStore) Close() error {
	err := s.next.Close()
	if err != nil {
		s.logger.Error("store close failed", "error", err)
	}
	return err
}
