package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

// Persisted layout. Bump PersistVersion whenever the meaning of a key changes;
// stores written with any other version are ignored.
const (
	PersistVersion = 1

	KeyVersion      uint32 = 100
	KeyBill         uint32 = 200
	KeyTipPercent   uint32 = 300
	KeyNumSplitting uint32 = 400

	billRecordSize = 8
)

var (
	errNoState         = errors.New("no persisted state")
	errVersionMismatch = errors.New("persisted version mismatch")
	errCorruptState    = errors.New("persisted state out of range")
)

// Session owns the one Calculator of a running app and moves its settings in
// and out of a storage.Store.
type Session struct {
	// ID identifies this run in logs.
	ID string

	calc    *calculator.Calculator
	store   storage.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewSession creates a session holding default settings. Call Load to pick up
// persisted state. m may be nil.
func NewSession(store storage.Store, m *metrics.Metrics) *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		calc:    calculator.NewDefault(),
		store:   store,
		metrics: m,
		logger:  slog.Default().With("session_id", id),
	}
}

// Calculator returns the session's calculator. The pointer stays the same for
// the life of the session.
func (s *Session) Calculator() *calculator.Calculator {
	return s.calc
}

// Load replaces the calculator settings with the persisted ones. Any problem
// reading them, including a first run with nothing stored, leaves the
// defaults in place. It reports whether persisted settings were used.
func (s *Session) Load(ctx context.Context) bool {
	settings, err := readSettings(ctx, s.store)
	switch {
	case err == nil:
		s.calc.Restore(settings)
		s.logger.Info("Loaded persisted settings",
			"bill_cents", settings.Bill.InCents(),
			"tip_percent", settings.TipPercent,
			"num_splitting", settings.NumSplitting,
		)
		return true
	case errors.Is(err, errNoState):
		s.logger.Info("No persisted settings, using defaults")
	default:
		s.logger.Warn("Discarding persisted settings, using defaults", "error", err)
	}
	s.calc.Restore(calculator.DefaultSettings())
	return false
}

// Save writes the version tag and the current settings.
func (s *Session) Save(ctx context.Context) error {
	settings := s.calc.Settings()

	if err := s.store.WriteInt(ctx, KeyVersion, PersistVersion); err != nil {
		return fmt.Errorf("failed to save version: %w", err)
	}
	if err := s.store.WriteData(ctx, KeyBill, encodeBill(settings.Bill)); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	if err := s.store.WriteInt(ctx, KeyTipPercent, int32(settings.TipPercent)); err != nil {
		return fmt.Errorf("failed to save tip percent: %w", err)
	}
	if err := s.store.WriteInt(ctx, KeyNumSplitting, int32(settings.NumSplitting)); err != nil {
		return fmt.Errorf("failed to save num splitting: %w", err)
	}

	s.logger.Info("Saved settings",
		"bill_cents", settings.Bill.InCents(),
		"tip_percent", settings.TipPercent,
		"num_splitting", settings.NumSplitting,
	)
	return nil
}

// Reset restores the default settings, as done on a shake gesture.
// Nothing is written until the next Save.
func (s *Session) Reset() {
	s.calc.Reset()
	if s.metrics != nil {
		s.metrics.Resets.Inc()
	}
	s.logger.Info("Reset to defaults")
}

func readSettings(ctx context.Context, store storage.Store) (models.Settings, error) {
	ok, err := store.Exists(ctx, KeyBill)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.Settings{}, errNoState
	}

	version, err := store.ReadInt(ctx, KeyVersion)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read version: %w", err)
	}
	if version != PersistVersion {
		return models.Settings{}, fmt.Errorf("%w: got %d, want %d", errVersionMismatch, version, PersistVersion)
	}

	record, err := store.ReadData(ctx, KeyBill)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read bill: %w", err)
	}
	bill, err := decodeBill(record)
	if err != nil {
		return models.Settings{}, err
	}

	tip, err := store.ReadInt(ctx, KeyTipPercent)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read tip percent: %w", err)
	}

	// Older layouts had no splitting key.
	split, err := store.ReadInt(ctx, KeyNumSplitting)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		split = int32(calculator.DefaultSettings().NumSplitting)
	case err != nil:
		return models.Settings{}, fmt.Errorf("failed to read num splitting: %w", err)
	}

	settings := models.Settings{
		Bill:         bill,
		TipPercent:   int(tip),
		NumSplitting: int(split),
	}
	if !calculator.Valid(settings) {
		return models.Settings{}, fmt.Errorf("%w: %+v", errCorruptState, settings)
	}
	return settings, nil
}

// encodeBill packs the bill as two little-endian int32s: dollars, then cents.
func encodeBill(a models.Amount) []byte {
	buf := make([]byte, billRecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(a.Dollars)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(a.Cents)))
	return buf
}

func decodeBill(buf []byte) (models.Amount, error) {
	if len(buf) != billRecordSize {
		return models.Amount{}, fmt.Errorf("%w: bill record is %d bytes, want %d", errCorruptState, len(buf), billRecordSize)
	}
	return models.Amount{
		Dollars: int(int32(binary.LittleEndian.Uint32(buf[0:4]))),
		Cents:   int(int32(binary.LittleEndian.Uint32(buf[4:8]))),
	}, nil
}
