package calculator

import (
	"strconv"

	"github.com/mmynk/tipsplit/internal/models"
)

// FieldID names a value the calculator can render.
type FieldID int

const (
	BillDollars FieldID = iota
	BillCents
	TipPercent
	NumSplitting
	Tip
	Total
	TotalPerPerson
)

var fieldNames = [...]string{
	BillDollars:    "bill_dollars",
	BillCents:      "bill_cents",
	TipPercent:     "tip_percent",
	NumSplitting:   "num_splitting",
	Tip:            "tip",
	Total:          "total",
	TotalPerPerson: "total_per_person",
}

func (f FieldID) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Maximum rendered widths. Money covers the largest possible total,
// 999.99 plus a 40% tip.
const (
	BillDollarsWidth  = 3
	BillCentsWidth    = 2
	TipPercentWidth   = 2
	NumSplittingWidth = 1
	MoneyWidth        = 8
)

// Width returns the maximum rendered width of a field.
func (f FieldID) Width() int {
	switch f {
	case BillDollars:
		return BillDollarsWidth
	case BillCents:
		return BillCentsWidth
	case TipPercent:
		return TipPercentWidth
	case NumSplitting:
		return NumSplittingWidth
	default:
		return MoneyWidth
	}
}

// Text renders a field for display. Bill cents are always two digits and money
// values are rendered as dollars.cents.
func (c *Calculator) Text(f FieldID) string {
	switch f {
	case BillDollars:
		return strconv.Itoa(c.settings.Bill.Dollars)
	case BillCents:
		return twoDigits(c.settings.Bill.Cents)
	case TipPercent:
		return strconv.Itoa(c.settings.TipPercent)
	case NumSplitting:
		return strconv.Itoa(c.settings.NumSplitting)
	case Tip:
		return moneyText(c.totals.Tip)
	case Total:
		return moneyText(c.totals.Total)
	case TotalPerPerson:
		return moneyText(c.totals.TotalPerPerson)
	}
	return ""
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

func moneyText(a models.Amount) string {
	return a.Decimal().StringFixed(2)
}
