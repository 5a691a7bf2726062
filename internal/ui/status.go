package ui

import "fmt"

// PanelWidth is the width in pixels of the status panel.
const PanelWidth = 200

// Status is the machine summary shown next to the tape.
type Status struct {
	Seed   uint64
	State  uint8
	Steps  uint64
	Rate   int
	Paused bool
	Err    error
}

// Lines renders s as the panel text, one entry per line.
func (s Status) Lines() []string {
	run := "running"
	if s.Paused {
		run = "paused"
	}
	lines := []string{
		fmt.Sprintf("seed   %d", s.Seed),
		fmt.Sprintf("state  %d", s.State),
		fmt.Sprintf("steps  %d", s.Steps),
		fmt.Sprintf("rate   %d/s (%s)", s.Rate, run),
		"",
		"space pause  n step",
		"m mutate     r reset",
		"s reseed     +/- rate",
		"q quit",
	}
	if s.Err != nil {
		lines = append(lines, "", "halted:", s.Err.Error())
	}
	return lines
}
