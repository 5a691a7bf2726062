// Package machine runs a rule table against a memory tape one step at a time.
package machine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"tm-sim/internal/core"
)

// ErrNoRule is matched by every LookupError.
var ErrNoRule = errors.New("machine: no rule for state and symbol")

// LookupError names the (state, symbol) pair that had no rule.
type LookupError struct {
	State  uint8
	Symbol uint8
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("machine: no rule for state %d reading symbol %d", e.State, e.Symbol)
}

// Is lets errors.Is(err, ErrNoRule) match.
func (e *LookupError) Is(target error) bool { return target == ErrNoRule }

// Executor owns the control state, the active rules and the tape.
type Executor struct {
	state  uint8
	steps  uint64
	rules  []core.Rule
	memory core.Memory
	log    zerolog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger routes step traces to l.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Executor) { e.log = l }
}

// New returns an Executor in state 0 over mem with no rules loaded.
func New(mem core.Memory, opts ...Option) *Executor {
	e := &Executor{memory: mem, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadRules replaces the active rules. State and memory are left alone.
func (e *Executor) LoadRules(rules []core.Rule) {
	e.rules = append(e.rules[:0], rules...)
	e.log.Debug().Int("rules", len(e.rules)).Uint8("state", e.state).Msg("rules loaded")
}

// State returns the control state.
func (e *Executor) State() uint8 { return e.state }

// Steps returns how many steps have completed.
func (e *Executor) Steps() uint64 { return e.steps }

// Memory returns the tape.
func (e *Executor) Memory() core.Memory { return e.memory }

// Step applies the first rule matching the current state and the symbol under
// the head: set state, write, then move. When no rule matches, nothing changes
// and a *LookupError is returned.
func (e *Executor) Step() error {
	symbol := e.memory.Read()
	r, ok := core.Lookup(e.rules, e.state, symbol)
	if !ok {
		e.log.Error().Uint64("step", e.steps).Uint8("state", e.state).Uint8("symbol", symbol).Msg("no matching rule")
		return &LookupError{State: e.state, Symbol: symbol}
	}
	e.log.Trace().
		Uint64("step", e.steps).
		Uint8("state", e.state).
		Uint8("read", symbol).
		Uint8("next", r.Next).
		Uint8("write", r.Write).
		Uint8("move", r.Move).
		Msg("step")
	e.state = r.Next
	e.memory.Write(r.Write)
	e.memory.Move(r.Move)
	e.steps++
	return nil
}

// Run performs up to n steps, stopping at the first error.
func (e *Executor) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the control state followed by the tape.
func (e *Executor) String() string {
	return fmt.Sprintf("state: %d\n%s", e.state, e.memory)
}
