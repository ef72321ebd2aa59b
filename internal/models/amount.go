package models

import "github.com/shopspring/decimal"

// Amount represents an exact money value as dollars and cents.
// Cents is always in [0, 99] for amounts built with AmountFromCents.
type Amount struct {
	// Dollars is the whole-dollar part.
	Dollars int

	// Cents is the fractional part in hundredths of a dollar.
	Cents int
}

// AmountFromCents splits a non-negative total-cents value into an Amount.
func AmountFromCents(cents int) Amount {
	return Amount{Dollars: cents / 100, Cents: cents % 100}
}

// InCents returns the amount as a single total-cents integer.
func (a Amount) InCents() int {
	return 100*a.Dollars + a.Cents
}

// Add returns the sum of two amounts, normalizing cents.
func (a Amount) Add(other Amount) Amount {
	return AmountFromCents(a.InCents() + other.InCents())
}

// Decimal returns the amount as an exact two-place decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a.InCents()), -2)
}
