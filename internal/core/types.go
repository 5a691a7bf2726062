package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxCount caps states and symbols so every value fits in a cell byte.
const MaxCount = 255

// Config fixes the alphabet of a rule table for its whole lifetime.
type Config struct {
	States    int
	Symbols   int
	Movements int
}

// Clamp raises counts below their floors (3 states, 2 symbols, 1 movement) and
// caps them at MaxCount.
func (c Config) Clamp() Config {
	c.States = clampInt(c.States, 3, MaxCount)
	c.Symbols = clampInt(c.Symbols, 2, MaxCount)
	c.Movements = clampInt(c.Movements, 1, MaxCount)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rule field positions, in tuple order.
const (
	FieldState = iota
	FieldSymbol
	FieldNext
	FieldWrite
	FieldMove
)

// Rule maps (State, Symbol) to (Next, Write, Move).
type Rule struct {
	State  uint8
	Symbol uint8
	Next   uint8
	Write  uint8
	Move   uint8
}

// Field returns the value at tuple position i.
func (r Rule) Field(i int) uint8 {
	switch i {
	case FieldState:
		return r.State
	case FieldSymbol:
		return r.Symbol
	case FieldNext:
		return r.Next
	case FieldWrite:
		return r.Write
	case FieldMove:
		return r.Move
	}
	return 0
}

// Matches reports whether the rule applies to the given state and symbol.
func (r Rule) Matches(state, symbol uint8) bool {
	return r.State == state && r.Symbol == symbol
}

// Lookup returns the first rule in rules matching state and symbol.
func Lookup(rules []Rule, state, symbol uint8) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(state, symbol) {
			return r, true
		}
	}
	return Rule{}, false
}

// Memory is the tape contract shared by every dimensional variant.
type Memory interface {
	Read() uint8
	Write(symbol uint8)
	Move(code uint8)
	// Movements lists a label per defined code followed by "stay".
	Movements() []string
	Extents() []int
	Head() []int
	Cells() []uint8
	String() string
}

// ErrUnknownVariant is returned for a memory variant name nobody registered.
var ErrUnknownVariant = errors.New("core: unknown memory variant")

// Factory constructs a Memory with the given extents, every cell set to fill.
type Factory func(extents []int, fill uint8) (Memory, error)

var variants = map[string]Factory{}

// Register adds a memory factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	variants[name] = f
}

// Variants lists the registered memory variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewMemory builds the named variant.
func NewMemory(name string, extents []int, fill uint8) (Memory, error) {
	f, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
	}
	return f(extents, fill)
}
