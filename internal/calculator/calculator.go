// Package calculator implements the tip calculator engine: bounded editing of
// the bill, tip percentage and number of people splitting, plus deterministic
// recomputation of the tip, total and per-person share.
//
// All arithmetic is done in integer cents. A Calculator is not safe for
// concurrent use; it is meant to be owned by a single controller.
package calculator

import "github.com/mmynk/tipsplit/internal/models"

// Range is an inclusive [Min, Max] interval for an editable value.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Span is the number of distinct values in the range.
func (r Range) Span() int {
	return r.Max - r.Min + 1
}

// Wrap adds delta to v and wraps the result around the range, so stepping past
// Max lands on Min and stepping below Min lands on Max. Larger deltas land
// modulo Span, so adding Span leaves v unchanged.
func (r Range) Wrap(v, delta int) int {
	span := r.Span()
	off := (v - r.Min + delta%span) % span
	if off < 0 {
		off += span
	}
	return r.Min + off
}

// Editable ranges.
var (
	BillDollarsRange  = Range{Min: 1, Max: 999}
	BillCentsRange    = Range{Min: 0, Max: 99}
	TipPercentRange   = Range{Min: 1, Max: 40}
	NumSplittingRange = Range{Min: 1, Max: 9}
)

// DefaultSettings returns the state used on first run and after a reset:
// a $10.00 bill, 15% tip, one person.
func DefaultSettings() models.Settings {
	return models.Settings{
		Bill:         models.Amount{Dollars: 10, Cents: 0},
		TipPercent:   15,
		NumSplitting: 1,
	}
}

// Valid reports whether every editable field of s is within its range.
func Valid(s models.Settings) bool {
	return BillDollarsRange.Contains(s.Bill.Dollars) &&
		BillCentsRange.Contains(s.Bill.Cents) &&
		TipPercentRange.Contains(s.TipPercent) &&
		NumSplittingRange.Contains(s.NumSplitting)
}

// Calculator owns the calculator state. Derived totals are recomputed inside
// every mutator, so they are never stale when read.
type Calculator struct {
	settings models.Settings
	totals   models.Totals
}

// New creates a Calculator from the given settings.
// Values outside their range are wrapped into it.
func New(s models.Settings) *Calculator {
	c := &Calculator{}
	c.Restore(s)
	return c
}

// NewDefault creates a Calculator holding DefaultSettings.
func NewDefault() *Calculator {
	return New(DefaultSettings())
}

// Settings returns the current editable values.
func (c *Calculator) Settings() models.Settings {
	return c.settings
}

// Totals returns the current derived values.
func (c *Calculator) Totals() models.Totals {
	return c.totals
}

// Restore replaces all settings at once, wrapping out-of-range values into
// their range, and recomputes the totals.
func (c *Calculator) Restore(s models.Settings) {
	c.settings = models.Settings{
		Bill: models.Amount{
			Dollars: BillDollarsRange.Wrap(s.Bill.Dollars, 0),
			Cents:   BillCentsRange.Wrap(s.Bill.Cents, 0),
		},
		TipPercent:   TipPercentRange.Wrap(s.TipPercent, 0),
		NumSplitting: NumSplittingRange.Wrap(s.NumSplitting, 0),
	}
	c.Recompute()
}

// Reset restores DefaultSettings.
func (c *Calculator) Reset() {
	c.settings = DefaultSettings()
	c.Recompute()
}

// AdjustBillDollars adds delta to the bill's dollars, wrapping within [1, 999].
func (c *Calculator) AdjustBillDollars(delta int) {
	c.settings.Bill.Dollars = BillDollarsRange.Wrap(c.settings.Bill.Dollars, delta)
	c.Recompute()
}

// AdjustBillCents adds delta to the bill's cents, wrapping within [0, 99].
// Wrapping never carries into or borrows from the dollars.
func (c *Calculator) AdjustBillCents(delta int) {
	c.settings.Bill.Cents = BillCentsRange.Wrap(c.settings.Bill.Cents, delta)
	c.Recompute()
}

// AdjustTipPercent adds delta to the tip percentage, wrapping within [1, 40].
func (c *Calculator) AdjustTipPercent(delta int) {
	c.settings.TipPercent = TipPercentRange.Wrap(c.settings.TipPercent, delta)
	c.Recompute()
}

// AdjustNumSplitting adds delta to the number of people, wrapping within [1, 9].
func (c *Calculator) AdjustNumSplitting(delta int) {
	c.settings.NumSplitting = NumSplittingRange.Wrap(c.settings.NumSplitting, delta)
	c.Recompute()
}

// Recompute refreshes the derived totals from the current settings.
func (c *Calculator) Recompute() {
	c.totals = Compute(c.settings)
}
