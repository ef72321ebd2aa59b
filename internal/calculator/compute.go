package calculator

import "github.com/mmynk/tipsplit/internal/models"

// Compute derives tip, total and per-person share from s.
//
// Algorithm, in cents:
//   - tip = round(bill * tipPercent / 100)
//   - total = bill + tip
//   - perPerson = round(total / numSplitting)
//
// Rounding is half-up. NumSplitting must be at least 1.
func Compute(s models.Settings) models.Totals {
	tip := models.AmountFromCents(divideAndRound(s.Bill.InCents()*s.TipPercent, 100))
	total := s.Bill.Add(tip)

	return models.Totals{
		Tip:            tip,
		Total:          total,
		TotalPerPerson: models.AmountFromCents(divideAndRound(total.InCents(), s.NumSplitting)),
	}
}

// divideAndRound divides rounding half up. Only valid for non-negative operands.
func divideAndRound(dividend, divisor int) int {
	return (dividend + divisor/2) / divisor
}
