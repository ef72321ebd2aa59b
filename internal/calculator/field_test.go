package calculator

import "testing"

func TestInputsOrder(t *testing.T) {
	c := NewDefault()
	want := []FieldID{BillDollars, BillCents, TipPercent, NumSplitting}

	inputs := c.Inputs()
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs, want %d", len(inputs), len(want))
	}
	for i, f := range inputs {
		if f.ID() != want[i] {
			t.Errorf("inputs[%d] = %s, want %s", i, f.ID(), want[i])
		}
	}
}

func TestInputFieldSteps(t *testing.T) {
	c := New(settings(10, 0, 15, 1))
	inputs := c.Inputs()

	inputs[0].Increment(5)
	inputs[1].Decrement(1)
	inputs[2].Increment(26)
	inputs[3].Decrement(1)

	want := settings(15, 99, 1, 9)
	if got := c.Settings(); got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}

	for _, f := range inputs {
		if got := f.Text(); got != c.Text(f.ID()) {
			t.Errorf("%s Text() = %q, want %q", f.ID(), got, c.Text(f.ID()))
		}
	}
}

func TestOutputsFollowInputs(t *testing.T) {
	c := New(settings(50, 0, 20, 1))
	outputs := c.Outputs()

	c.Inputs()[3].Increment(1)

	want := map[FieldID]string{Tip: "10.00", Total: "60.00", TotalPerPerson: "30.00"}
	for _, f := range outputs {
		if got := f.Text(); got != want[f.ID()] {
			t.Errorf("%s Text() = %q, want %q", f.ID(), got, want[f.ID()])
		}
	}
}
