package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"tm-sim/internal/config"
	"tm-sim/internal/core"
	"tm-sim/internal/logging"
	"tm-sim/internal/machine"
	"tm-sim/internal/rules"
	_ "tm-sim/internal/tape"
	random "tm-sim/pkg/core"
)

func main() {
	log := logging.WithRun(logging.ConfigureRuntime(), "tm")
	os.Exit(run(os.Args[1:], os.Stdout, log))
}

func run(argv []string, out io.Writer, log zerolog.Logger) int {
	cfg, err := config.Parse("tm", argv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 2
	}
	fmt.Fprintf(out, "%q\n", argv)
	if cfg.SeedGiven {
		fmt.Fprintf(out, "seed = %d\n", cfg.Seed)
	}
	log.Info().
		Uint64("seed", cfg.Seed).
		Int("symbols", cfg.Symbols).
		Int("states", cfg.States).
		Int("movements", cfg.Movements).
		Int("steps", cfg.Steps).
		Int("blindsteps", cfg.BlindSteps).
		Str("variant", cfg.Variant).
		Str("extents", cfg.Extents.String()).
		Msg("configured")

	mem, err := core.NewMemory(cfg.Variant, cfg.Extents, 0)
	if err != nil {
		log.Error().Err(err).Msg("memory")
		return 2
	}

	rng := random.NewRNG(cfg.Seed)
	table := rules.Generate(cfg.Machine(), rng)
	fmt.Fprint(out, table)
	fmt.Fprintf(out, "with %d symbols, %d states and %d moving-directions %d rules are possible\n",
		cfg.Symbols, cfg.States, cfg.Movements, table.PossibleRules())
	fmt.Fprintf(out, "%d possible input combinations\n", table.PossibleInputs())
	fmt.Fprintf(out, "possible rulesets = %+.2e\n", new(big.Float).SetInt(table.PossibleRuleSets()))

	tm := machine.New(mem, machine.WithLogger(log))
	tm.LoadRules(table.Rules())
	if err := tm.Run(cfg.BlindSteps); err != nil {
		log.Error().Err(err).Msg("blind run aborted")
		return 1
	}

	edits, err := table.Mutate(cfg.Mutations, rng)
	if err != nil {
		log.Error().Err(err).Msg("mutate")
		return 1
	}
	for _, m := range edits {
		fmt.Fprintln(out, m)
		log.Info().Int("rule", m.Index).Int("field", m.Field).Uint8("value", m.Value()).Msg("mutated")
	}
	if err := table.Validate(); err != nil {
		log.Warn().Err(err).Bool("repair", cfg.Repair).Msg("mutation broke totality")
		if cfg.Repair {
			log.Info().Int("rules", table.Repair()).Msg("repaired")
		}
	}
	tm.LoadRules(table.Rules())
	fmt.Fprint(out, table)

	for i := 0; i < cfg.Steps; i++ {
		fmt.Fprintln(out, tm)
		if err := tm.Step(); err != nil {
			log.Error().Err(err).Int("step", i).Msg("run aborted")
			return 1
		}
	}
	return 0
}
