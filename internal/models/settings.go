package models

// Settings holds the user-editable calculator inputs.
// This is the part of the calculator state that survives restarts.
type Settings struct {
	// Bill is the pre-tip bill amount.
	// Dollars is kept in [1, 999], Cents in [0, 99].
	Bill Amount

	// TipPercent is the tip as a whole percentage of the bill, in [1, 40].
	TipPercent int

	// NumSplitting is the number of people sharing the total, in [1, 9].
	NumSplitting int
}

// Totals holds the values derived from Settings.
type Totals struct {
	// Tip is the bill times the tip percentage, rounded to a whole cent.
	Tip Amount

	// Total is Bill + Tip.
	Total Amount

	// TotalPerPerson is Total divided among NumSplitting people, rounded to a whole cent.
	TotalPerPerson Amount
}
