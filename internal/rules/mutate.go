package rules

import (
	"fmt"
	"strings"

	"tm-sim/internal/core"
	random "tm-sim/pkg/core"
)

// mutableFields is the number of leading rule fields Mutate may touch.
const mutableFields = 3

// Mutation records one edit made by Mutate.
type Mutation struct {
	Index int
	Field int
	Rule  core.Rule
}

// Value returns the edited field's new value.
func (m Mutation) Value() uint8 { return m.Rule.Field(m.Field) }

// String renders the edit with the changed field bracketed.
func (m Mutation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mutate rule #%d ( %d %d ) -> ( ", m.Index, m.Rule.State, m.Rule.Symbol)
	for i := 0; i < mutableFields; i++ {
		if i == m.Field {
			fmt.Fprintf(&b, "[%d] ", m.Rule.Field(i))
		} else {
			fmt.Fprintf(&b, "%d ", m.Rule.Field(i))
		}
	}
	b.WriteString(")")
	return b.String()
}

// Mutate performs changes independent edits. Each edit picks a rule and one of
// its state, symbol or next-state fields and increments it modulo its bound.
// Editing state or symbol can break totality; see Validate and Repair.
func (t *Table) Mutate(changes int, rng random.Rand) ([]Mutation, error) {
	if changes <= 0 {
		return nil, nil
	}
	if len(t.rules) == 0 {
		return nil, ErrEmptyTable
	}
	out := make([]Mutation, 0, changes)
	for i := 0; i < changes; i++ {
		idx := rng.IntN(len(t.rules))
		field := rng.IntN(mutableFields)
		r := &t.rules[idx]
		switch field {
		case core.FieldState:
			r.State = uint8((int(r.State) + 1) % t.cfg.States)
		case core.FieldSymbol:
			r.Symbol = uint8((int(r.Symbol) + 1) % t.cfg.Symbols)
		case core.FieldNext:
			r.Next = uint8((int(r.Next) + 1) % t.cfg.States)
		}
		out = append(out, Mutation{Index: idx, Field: field, Rule: *r})
	}
	return out, nil
}
