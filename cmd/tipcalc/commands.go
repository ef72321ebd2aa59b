package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/tipsplit/internal/device"
)

type commandKind int

const (
	cmdClicks commandKind = iota
	cmdShake
	cmdShow
	cmdQuit
)

// command is one parsed input line.
type command struct {
	kind   commandKind
	clicks []device.Click
}

// maxHoldRepeats bounds a single hold command to a minute at 100ms repeats.
const maxHoldRepeats = 600

var buttons = map[string]device.Button{
	"up":     device.ButtonUp,
	"down":   device.ButtonDown,
	"select": device.ButtonSelect,
	"back":   device.ButtonBack,
}

// parseCommand reads a line such as "up", "select", "shake" or "hold down 40".
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdShow}, nil
	}

	switch fields[0] {
	case "shake":
		return command{kind: cmdShake}, nil
	case "show":
		return command{kind: cmdShow}, nil
	case "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "hold":
		return parseHold(fields[1:])
	}

	b, ok := buttons[fields[0]]
	if !ok || len(fields) != 1 {
		return command{}, fmt.Errorf("unknown command %q", line)
	}
	return command{kind: cmdClicks, clicks: []device.Click{{Button: b}}}, nil
}

func parseHold(args []string) (command, error) {
	if len(args) != 2 {
		return command{}, fmt.Errorf("usage: hold up|down REPEATS")
	}
	b, ok := buttons[args[0]]
	if !ok || (b != device.ButtonUp && b != device.ButtonDown) {
		return command{}, fmt.Errorf("only up and down repeat, got %q", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > maxHoldRepeats {
		return command{}, fmt.Errorf("repeats must be 1..%d, got %q", maxHoldRepeats, args[1])
	}

	// The press itself, then the repeats while held.
	clicks := make([]device.Click, 0, n+1)
	clicks = append(clicks, device.Click{Button: b})
	for i := 1; i <= n; i++ {
		clicks = append(clicks, device.Click{Button: b, Repeat: i})
	}
	return command{kind: cmdClicks, clicks: clicks}, nil
}
