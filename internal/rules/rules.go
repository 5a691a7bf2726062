// Package rules builds and edits the transition table of a machine.
//
// A freshly generated Table is total: every (state, symbol) pair in
// [0,States) x [0,Symbols) has exactly one rule. Mutate may break that, in
// which case Validate reports the damage and Repair restores it.
package rules

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"tm-sim/internal/core"
	random "tm-sim/pkg/core"
)

var (
	ErrEmptyTable = errors.New("rules: empty table")
	ErrIncomplete = errors.New("rules: table is not total")
)

// Prefix is the (state, symbol) input a rule matches on.
type Prefix struct {
	State  uint8
	Symbol uint8
}

// Table is an ordered rule sequence over a fixed Config.
type Table struct {
	cfg   core.Config
	rules []core.Rule
}

// New returns an empty table. Counts below their floors are clamped.
func New(cfg core.Config) *Table {
	return &Table{cfg: cfg.Clamp()}
}

// FromRules wraps an existing rule sequence without checking totality.
func FromRules(cfg core.Config, rules []core.Rule) *Table {
	return &Table{cfg: cfg.Clamp(), rules: append([]core.Rule(nil), rules...)}
}

// Generate builds a total table for cfg. Three accumulators drift by a random
// offset after every rule, so neighbouring rules stay correlated.
func Generate(cfg core.Config, rng random.Rand) *Table {
	t := New(cfg)
	t.Generate(rng)
	return t
}

// Generate replaces the table contents with a freshly generated rule set.
func (t *Table) Generate(rng random.Rand) {
	states, symbols, moves := t.cfg.States, t.cfg.Symbols, t.cfg.Movements

	next := rng.IntN(states)
	write := rng.IntN(symbols)
	move := rng.IntN(moves)

	t.rules = make([]core.Rule, 0, states*symbols)
	for s := 0; s < states; s++ {
		for sym := 0; sym < symbols; sym++ {
			t.rules = append(t.rules, core.Rule{
				State:  uint8(s),
				Symbol: uint8(sym),
				Next:   uint8((next + rng.IntN(states)) % states),
				Write:  uint8((write + rng.IntN(symbols)) % symbols),
				Move:   uint8((move + rng.IntN(moves)) % moves),
			})
			next = (next + rng.IntN(states)) % states
			write = (write + rng.IntN(symbols)) % symbols
			move = (move + rng.IntN(moves)) % moves
		}
	}
}

// Config returns the table's alphabet sizes.
func (t *Table) Config() core.Config { return t.cfg }

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Rules returns a copy of the rule sequence.
func (t *Table) Rules() []core.Rule { return append([]core.Rule(nil), t.rules...) }

// Gaps lists the prefixes with no rule and the indices of rules shadowed by an
// earlier rule with the same prefix.
func (t *Table) Gaps() (missing []Prefix, shadowed []int) {
	seen := make(map[Prefix]bool, len(t.rules))
	for i, r := range t.rules {
		p := Prefix{r.State, r.Symbol}
		if seen[p] {
			shadowed = append(shadowed, i)
			continue
		}
		seen[p] = true
	}
	for s := 0; s < t.cfg.States; s++ {
		for sym := 0; sym < t.cfg.Symbols; sym++ {
			p := Prefix{uint8(s), uint8(sym)}
			if !seen[p] {
				missing = append(missing, p)
			}
		}
	}
	return missing, shadowed
}

// Validate returns ErrIncomplete when some prefix has no rule or more than one.
func (t *Table) Validate() error {
	missing, shadowed := t.Gaps()
	if len(missing) == 0 && len(shadowed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d missing prefixes, %d duplicate rules", ErrIncomplete, len(missing), len(shadowed))
}

// Repair reassigns shadowed rules to missing prefixes, both in ascending
// order, and reports how many rules changed. Only fields 0 and 1 are touched.
func (t *Table) Repair() int {
	missing, shadowed := t.Gaps()
	n := min(len(missing), len(shadowed))
	for i := 0; i < n; i++ {
		r := &t.rules[shadowed[i]]
		r.State = missing[i].State
		r.Symbol = missing[i].Symbol
	}
	return n
}

// PossibleRules counts distinct rule tuples: states² x symbols² x movements.
func (t *Table) PossibleRules() uint64 {
	s, y, m := uint64(t.cfg.States), uint64(t.cfg.Symbols), uint64(t.cfg.Movements)
	return s * s * y * y * m
}

// PossibleInputs counts (state, symbol) pairs.
func (t *Table) PossibleInputs() uint64 {
	return uint64(t.cfg.States) * uint64(t.cfg.Symbols)
}

// PossibleRuleSets counts ways to pick PossibleInputs rules out of
// PossibleRules.
func (t *Table) PossibleRuleSets() *big.Int {
	return new(big.Int).Binomial(int64(t.PossibleRules()), int64(t.PossibleInputs()))
}

// String renders the table header followed by one line per rule.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d states, %d symbols\n", t.cfg.States, t.cfg.Symbols)
	fmt.Fprintf(&b, "rules of (%d states, %d symbols)-turing machine.\n", t.cfg.States, t.cfg.Symbols)
	for i, r := range t.rules {
		fmt.Fprintf(&b, "   # %2d: ( %d %d ) -> ( %d %d movement #%d )\n", i, r.State, r.Symbol, r.Next, r.Write, r.Move)
	}
	return b.String()
}
