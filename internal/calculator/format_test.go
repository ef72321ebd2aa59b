package calculator

import "testing"

func TestText(t *testing.T) {
	c := New(settings(50, 5, 20, 3))

	tests := []struct {
		field FieldID
		want  string
	}{
		{BillDollars, "50"},
		{BillCents, "05"},
		{TipPercent, "20"},
		{NumSplitting, "3"},
		{Tip, "10.01"},
		{Total, "60.06"},
		{TotalPerPerson, "20.02"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			if got := c.Text(tt.field); got != tt.want {
				t.Errorf("Text(%s) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestTextSmallAmounts(t *testing.T) {
	c := New(settings(1, 0, 1, 9))
	if got := c.Text(Tip); got != "0.01" {
		t.Errorf("Text(Tip) = %q, want %q", got, "0.01")
	}
	if got := c.Text(TotalPerPerson); got != "0.11" {
		t.Errorf("Text(TotalPerPerson) = %q, want %q", got, "0.11")
	}
	if got := c.Text(BillCents); got != "00" {
		t.Errorf("Text(BillCents) = %q, want %q", got, "00")
	}
}

func TestTextFitsWidth(t *testing.T) {
	extremes := []*Calculator{
		New(settings(999, 99, 40, 1)),
		New(settings(1, 0, 1, 9)),
		New(settings(100, 50, 10, 5)),
	}
	fields := []FieldID{BillDollars, BillCents, TipPercent, NumSplitting, Tip, Total, TotalPerPerson}

	for _, c := range extremes {
		for _, f := range fields {
			if got := c.Text(f); len(got) == 0 || len(got) > f.Width() {
				t.Errorf("%+v: Text(%s) = %q, want 1..%d chars", c.Settings(), f, got, f.Width())
			}
		}
	}

	if got := New(settings(999, 99, 40, 1)).Text(Total); got != "1399.99" {
		t.Errorf("largest total = %q, want %q", got, "1399.99")
	}
}

func TestFieldIDString(t *testing.T) {
	if got := TotalPerPerson.String(); got != "total_per_person" {
		t.Errorf("String() = %q", got)
	}
	if got := FieldID(42).String(); got != "field(42)" {
		t.Errorf("String() = %q", got)
	}
}
