// Package models defines the core domain models for the tip calculator.
//
// # Models
//
//   - Amount: an exact money value kept as whole dollars plus cents (0-99)
//   - Settings: the user-editable inputs (bill, tip percent, people splitting)
//   - Totals: the values derived from Settings (tip, total, per-person share)
//
// No model ever holds a fractional cent. Anything that divides money works on
// total cents and rounds back to an integer before building an Amount.
//
// # Persistence
//
// Only Settings are persisted. Totals are always recomputed after a load, so a
// stored record can never disagree with what the device displays.
package models
