package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"tm-sim/internal/config"
	"tm-sim/internal/core"
	"tm-sim/internal/machine"
	"tm-sim/internal/rules"
	random "tm-sim/pkg/core"
)

var errQuit = errors.New("quit")

const help = `commands:
  step [n]     run n steps (default 1) and show the machine
  show         show control state and tape
  rules        print the rule table
  mutate [n]   edit n rules (default 1); use load to hand them to the machine
  load         replace the machine's rules with the table
  check        report whether the table is total
  repair       restore totality of the table
  reset [seed] regenerate the table and clear the tape
  quit         leave`

// session drives one machine from typed commands.
type session struct {
	cfg   config.Run
	rng   *random.RNG
	table *rules.Table
	tm    *machine.Executor
	out   io.Writer
	log   zerolog.Logger
}

func newSession(cfg config.Run, out io.Writer, log zerolog.Logger) (*session, error) {
	s := &session{cfg: cfg, out: out, log: log}
	if err := s.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) reset(seed uint64) error {
	mem, err := core.NewMemory(s.cfg.Variant, s.cfg.Extents, 0)
	if err != nil {
		return err
	}
	s.cfg.Seed = seed
	if s.rng == nil {
		s.rng = random.NewRNG(seed)
	} else {
		s.rng.Seed(seed)
	}
	s.table = rules.Generate(s.cfg.Machine(), s.rng)
	s.tm = machine.New(mem, machine.WithLogger(s.log))
	s.tm.LoadRules(s.table.Rules())
	s.log.Info().Uint64("seed", seed).Int("rules", s.table.Len()).Msg("reset")
	return nil
}

// exec runs one command line. It returns errQuit when the user is done.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", ":quit", ":q":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.out, help)
	case "show":
		fmt.Fprintln(s.out, s.tm)
	case "rules":
		fmt.Fprint(s.out, s.table)
	case "step":
		n, err := count(args, 1)
		if err != nil {
			return err
		}
		runErr := s.tm.Run(n)
		fmt.Fprintln(s.out, s.tm)
		return runErr
	case "mutate":
		n, err := count(args, 1)
		if err != nil {
			return err
		}
		edits, err := s.table.Mutate(n, s.rng)
		if err != nil {
			return err
		}
		for _, m := range edits {
			fmt.Fprintln(s.out, m)
			s.log.Info().Int("rule", m.Index).Int("field", m.Field).Uint8("value", m.Value()).Msg("mutated")
		}
		if err := s.table.Validate(); err != nil {
			fmt.Fprintln(s.out, err)
			s.log.Warn().Err(err).Msg("mutation broke totality")
		}
	case "load":
		s.tm.LoadRules(s.table.Rules())
		fmt.Fprintf(s.out, "loaded %d rules\n", s.table.Len())
	case "check":
		if err := s.table.Validate(); err != nil {
			fmt.Fprintln(s.out, err)
			return nil
		}
		fmt.Fprintln(s.out, "table is total")
	case "repair":
		fmt.Fprintf(s.out, "repaired %d rules\n", s.table.Repair())
	case "reset":
		seed := s.cfg.Seed
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad seed %q", args[0])
			}
			seed = v
		}
		if err := s.reset(seed); err != nil {
			return err
		}
		fmt.Fprintln(s.out, s.tm)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func count(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad count %q", args[0])
	}
	return n, nil
}
