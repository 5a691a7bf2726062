package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tm-sim/internal/config"
	"tm-sim/internal/core"
	"tm-sim/internal/logging"
	"tm-sim/internal/machine"
	"tm-sim/internal/rules"
	_ "tm-sim/internal/tape"
	random "tm-sim/pkg/core"
)

type scenarioResult struct {
	seed     uint64
	visited  int
	written  int
	broken   bool
	halted   bool
	haltStep int
}

func (r scenarioResult) String() string {
	status := "ran"
	if r.halted {
		status = fmt.Sprintf("halted@%d", r.haltStep)
	}
	return fmt.Sprintf("seed=%d visited=%d written=%d broken=%v %s", r.seed, r.visited, r.written, r.broken, status)
}

func main() {
	log := logging.WithRun(logging.ConfigureRuntime(), "tm-sweep")

	seeds, top := 100, 5
	cfg, err := config.Parse("tm-sweep", os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&seeds, "seeds", seeds, "number of consecutive seeds to run, starting at the seed argument")
		fs.IntVar(&top, "top", top, "results to list")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	if err := sweep(os.Stdout, cfg, seeds, top, log); err != nil {
		log.Fatal().Err(err).Msg("sweep")
	}
}

func sweep(out io.Writer, cfg config.Run, seeds, top int, log zerolog.Logger) error {
	fmt.Fprintf(out, "Sweeping %d seeds from %d (%s %s, %d blind + %d steps, %d mutations)\n",
		seeds, cfg.Seed, cfg.Variant, cfg.Extents.String(), cfg.BlindSteps, cfg.Steps, cfg.Mutations)

	start := time.Now()
	all := make([]scenarioResult, 0, seeds)
	for i := 0; i < seeds; i++ {
		res, err := runScenario(cfg, cfg.Seed+uint64(i), log)
		if err != nil {
			return err
		}
		all = append(all, res)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].visited > all[j].visited })
	halted, broken := 0, 0
	for _, r := range all {
		if r.halted {
			halted++
		}
		if r.broken {
			broken++
		}
	}

	fmt.Fprintf(out, "\nTop %d results (elapsed %s):\n", min(top, len(all)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < top; i++ {
		fmt.Fprintf(out, "%2d) %s\n", i+1, all[i])
	}
	fmt.Fprintf(out, "\n%s\n", strings.Join([]string{
		fmt.Sprintf("broken tables: %d/%d", broken, len(all)),
		fmt.Sprintf("halted runs:   %d/%d", halted, len(all)),
	}, "\n"))
	return nil
}

// runScenario replays the batch pipeline for one seed and measures how much of
// the tape the head reached.
func runScenario(cfg config.Run, seed uint64, log zerolog.Logger) (scenarioResult, error) {
	res := scenarioResult{seed: seed}
	log = log.With().Uint64("seed", seed).Logger()
	mem, err := core.NewMemory(cfg.Variant, cfg.Extents, 0)
	if err != nil {
		return res, err
	}
	rng := random.NewRNG(seed)
	table := rules.Generate(cfg.Machine(), rng)
	tm := machine.New(mem, machine.WithLogger(log))
	tm.LoadRules(table.Rules())

	visited := map[string]bool{fmt.Sprint(mem.Head()): true}
	step := func(i int) bool {
		if err := tm.Step(); err != nil {
			res.halted, res.haltStep = true, i
			return false
		}
		visited[fmt.Sprint(mem.Head())] = true
		return true
	}

	ok := true
	for i := 0; i < cfg.BlindSteps && ok; i++ {
		ok = step(i)
	}
	if ok {
		edits, err := table.Mutate(cfg.Mutations, rng)
		if err != nil {
			return res, err
		}
		for _, m := range edits {
			log.Info().Int("rule", m.Index).Int("field", m.Field).Uint8("value", m.Value()).Msg("mutated")
		}
		if err := table.Validate(); err != nil {
			res.broken = true
			log.Debug().Err(err).Bool("repair", cfg.Repair).Msg("mutation broke totality")
			if cfg.Repair {
				table.Repair()
			}
		}
		tm.LoadRules(table.Rules())
		for i := 0; i < cfg.Steps && ok; i++ {
			ok = step(cfg.BlindSteps + i)
		}
	}

	res.visited = len(visited)
	for _, c := range mem.Cells() {
		if c != 0 {
			res.written++
		}
	}
	return res, nil
}
