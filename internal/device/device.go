// Package device drives a calculator session from the watch's four buttons
// and the shake gesture, and renders the screen as text.
//
// Field values are read and edited through calculator.Field and
// calculator.InputField. Hold acceleration comes from calculator.HoldDelta,
// and the shake gesture resets the service.Session.
package device

import (
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/service"
)

// Button is one of the watch's physical buttons.
type Button int

const (
	ButtonBack Button = iota
	ButtonUp
	ButtonSelect
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonBack:
		return "back"
	case ButtonUp:
		return "up"
	case ButtonSelect:
		return "select"
	case ButtonDown:
		return "down"
	}
	return "unknown"
}

// Click is a single button event. Repeat is 0 for a plain press and n for the
// n-th repeat fired while the button is held.
type Click struct {
	Button Button
	Repeat int
}

// App holds the presentation state: which input field has focus.
type App struct {
	session  *service.Session
	inputs   []calculator.InputField
	outputs  map[calculator.FieldID]calculator.Field
	focus    int
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewApp creates an App over the session's calculator with focus on the bill
// dollars. interval is the hold-repeat period; zero means the default. m may be nil.
func NewApp(s *service.Session, interval time.Duration, m *metrics.Metrics) *App {
	if interval <= 0 {
		interval = calculator.DefaultRepeatInterval
	}
	calc := s.Calculator()
	outputs := make(map[calculator.FieldID]calculator.Field)
	for _, f := range calc.Outputs() {
		outputs[f.ID()] = f
	}
	return &App{
		session:  s,
		inputs:   calc.Inputs(),
		outputs:  outputs,
		interval: interval,
		metrics:  m,
		logger:   slog.Default().With("session_id", s.ID),
	}
}

// Focus returns the field that up and down currently edit.
func (a *App) Focus() calculator.FieldID {
	return a.inputs[a.focus].ID()
}

// HandleClick applies a button event. It returns false when the event closes
// the app, which is back pressed on the first field.
func (a *App) HandleClick(c Click) bool {
	switch c.Button {
	case ButtonUp:
		a.step(a.delta(c))
	case ButtonDown:
		a.step(-a.delta(c))
	case ButtonSelect:
		if a.focus < len(a.inputs)-1 {
			a.focus++
		}
	case ButtonBack:
		if a.focus == 0 {
			a.logger.Debug("Back on first field, closing")
			return false
		}
		a.focus--
	}
	return true
}

// Shake resets the calculator to its defaults.
func (a *App) Shake() {
	a.session.Reset()
}

func (a *App) delta(c Click) int {
	if c.Repeat <= 0 {
		return 1
	}
	return calculator.HoldDelta(c.Repeat, a.interval)
}

func (a *App) step(delta int) {
	if delta == 0 {
		return
	}
	field := a.inputs[a.focus]
	if delta > 0 {
		field.Increment(delta)
	} else {
		field.Decrement(-delta)
	}
	if a.metrics != nil {
		a.metrics.ObserveAdjustment(field.ID().String(), delta)
	}
	a.logger.Debug("Adjusted field", "field", field.ID(), "delta", delta, "value", field.Text())
}

// Render draws the screen as four lines of text. The focused input field is
// wrapped in brackets.
func (a *App) Render() string {
	text := func(id calculator.FieldID) string {
		for i, f := range a.inputs {
			if f.ID() == id {
				if i == a.focus {
					return "[" + f.Text() + "]"
				}
				return f.Text()
			}
		}
		return a.outputs[id].Text()
	}

	var b strings.Builder
	b.WriteString("bill   $" + text(calculator.BillDollars) + "." + text(calculator.BillCents) + "\n")
	b.WriteString("tip    " + text(calculator.TipPercent) + "%  $" + text(calculator.Tip) + "\n")
	b.WriteString("total  $" + text(calculator.Total) + "\n")
	b.WriteString("split  ÷" + text(calculator.NumSplitting) + "  $" + text(calculator.TotalPerPerson) + "\n")
	return b.String()
}
