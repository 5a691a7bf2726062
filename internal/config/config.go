// Package config resolves the parameters of a run from defaults, an optional
// TOML or YAML file, command-line flags and positional arguments, in that
// order of increasing precedence. Bad values are clamped or replaced by their
// defaults rather than rejected.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"tm-sim/internal/core"
)

const (
	DefaultSeed       uint64 = 1
	DefaultSymbols           = 2
	DefaultStates            = 4
	DefaultSteps             = 10
	DefaultBlindSteps        = 0
	DefaultMutations         = 1
	DefaultVariant           = "2d"
)

var defaultExtents = map[string][]int{
	"1d": {16},
	"2d": {8, 8},
	"3d": {3, 7, 15},
}

// Run holds everything a driver needs to build and run a machine.
type Run struct {
	Seed       uint64
	Symbols    int
	States     int
	Movements  int
	Steps      int
	BlindSteps int
	Mutations  int
	Variant    string
	Extents    Extents
	Repair     bool
	File       string
	// SeedGiven is set when the seed came from a positional argument.
	SeedGiven bool
}

// Default returns the stock run configuration.
func Default() Run {
	return Run{
		Seed:       DefaultSeed,
		Symbols:    DefaultSymbols,
		States:     DefaultStates,
		Steps:      DefaultSteps,
		BlindSteps: DefaultBlindSteps,
		Mutations:  DefaultMutations,
		Variant:    DefaultVariant,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (r *Run) Bind(fs *flag.FlagSet) {
	fs.StringVar(&r.File, "config", r.File, "TOML or YAML run file")
	fs.StringVar(&r.Variant, "variant", r.Variant, "memory variant: "+strings.Join(core.Variants(), ", "))
	fs.Var(&r.Extents, "extents", "memory extents, slowest axis first (e.g. 8x8)")
	fs.IntVar(&r.Movements, "movements", r.Movements, "movement codes per rule (0 = variant default)")
	fs.IntVar(&r.Mutations, "mutations", r.Mutations, "rule edits between blind and traced steps")
	fs.BoolVar(&r.Repair, "repair", r.Repair, "restore a total rule table after mutation")
}

// Parse resolves a Run from argv (without the program name). Each extra
// function may bind driver-specific flags to the same FlagSet.
func Parse(name string, argv []string, extra ...func(*flag.FlagSet)) (Run, error) {
	first := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	first.Bind(fs)
	for _, bind := range extra {
		bind(fs)
	}
	if err := fs.Parse(argv); err != nil {
		return Run{}, err
	}

	r := Default()
	if first.File != "" {
		if err := r.LoadFile(first.File); err != nil {
			return Run{}, err
		}
	}
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	r.Bind(fs)
	for _, bind := range extra {
		bind(fs)
	}
	if err := fs.Parse(argv); err != nil {
		return Run{}, err
	}
	r.ApplyArgs(fs.Args())
	r.Normalize()
	return r, nil
}

// ApplyArgs reads the positional arguments seed, symbols, states, steps and
// blindsteps. Missing ones keep their current value; unparseable ones fall
// back to the default.
func (r *Run) ApplyArgs(args []string) {
	if len(args) > 0 {
		seed, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
		if err != nil {
			seed = DefaultSeed
		}
		r.Seed = seed
		r.SeedGiven = true
	}
	if len(args) > 1 {
		r.Symbols = atoiOr(args[1], DefaultSymbols)
	}
	if len(args) > 2 {
		r.States = atoiOr(args[2], DefaultStates)
	}
	if len(args) > 3 {
		r.Steps = atoiOr(args[3], DefaultSteps)
	}
	if len(args) > 4 {
		r.BlindSteps = atoiOr(args[4], DefaultBlindSteps)
	}
	r.Normalize()
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

// Normalize clamps counts to their floors and fills variant-dependent
// defaults.
func (r *Run) Normalize() {
	c := r.Machine().Clamp()
	r.States, r.Symbols = c.States, c.Symbols
	r.Steps = max(r.Steps, 0)
	r.BlindSteps = max(r.BlindSteps, 0)
	r.Mutations = max(r.Mutations, 0)
	r.Variant = strings.ToLower(strings.TrimSpace(r.Variant))
	if r.Variant == "" {
		r.Variant = DefaultVariant
	}
	if len(r.Extents) == 0 {
		r.Extents = append(Extents(nil), defaultExtents[r.Variant]...)
	}
	if r.Movements <= 0 {
		r.Movements = 2 * len(r.Extents)
	}
	r.Movements = min(max(r.Movements, 1), core.MaxCount)
}

// Machine returns the rule table alphabet for this run.
func (r Run) Machine() core.Config {
	return core.Config{States: r.States, Symbols: r.Symbols, Movements: r.Movements}
}

// Extents is a flag.Value accepting sizes separated by x or commas.
type Extents []int

func (e *Extents) String() string {
	if e == nil {
		return ""
	}
	parts := make([]string, len(*e))
	for i, v := range *e {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "x")
}

func (e *Extents) Set(s string) error {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == 'x' || r == ',' })
	out := make(Extents, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid extent %q", f)
		}
		out = append(out, v)
	}
	*e = out
	return nil
}
