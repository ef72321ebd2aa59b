package calculator

// Field is a rendered calculator value.
type Field interface {
	ID() FieldID
	Text() string
}

// InputField is a Field the user can step up and down.
type InputField interface {
	Field
	Increment(delta int)
	Decrement(delta int)
}

type outputField struct {
	calc *Calculator
	id   FieldID
}

func (f outputField) ID() FieldID { return f.id }
func (f outputField) Text() string { return f.calc.Text(f.id) }

type inputField struct {
	outputField
	adjust func(delta int)
}

func (f inputField) Increment(delta int) { f.adjust(delta) }
func (f inputField) Decrement(delta int) { f.adjust(-delta) }

// Inputs returns the editable fields in focus order: bill dollars, bill cents,
// tip percent, number of people.
func (c *Calculator) Inputs() []InputField {
	return []InputField{
		inputField{outputField{c, BillDollars}, c.AdjustBillDollars},
		inputField{outputField{c, BillCents}, c.AdjustBillCents},
		inputField{outputField{c, TipPercent}, c.AdjustTipPercent},
		inputField{outputField{c, NumSplitting}, c.AdjustNumSplitting},
	}
}

// Outputs returns the derived fields: tip, total, total per person.
func (c *Calculator) Outputs() []Field {
	return []Field{
		outputField{c, Tip},
		outputField{c, Total},
		outputField{c, TotalPerPerson},
	}
}
