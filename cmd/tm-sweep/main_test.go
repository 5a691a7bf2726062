package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tm-sim/internal/config"
)

func TestRunScenarioDeterministic(t *testing.T) {
	cfg, err := config.Parse("tm-sweep", []string{"-variant", "2d", "-extents", "4x4", "1", "3", "5", "40", "10"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := runScenario(cfg, 21, zerolog.Nop())
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	b, _ := runScenario(cfg, 21, zerolog.Nop())
	if a != b {
		t.Fatalf("same seed gave %v and %v", a, b)
	}
	if a.visited < 1 || a.visited > 16 || a.written > 16 {
		t.Fatalf("result out of range: %v", a)
	}
}

func TestRepairedScenarioNeverHalts(t *testing.T) {
	cfg, err := config.Parse("tm-sweep", []string{"-repair", "-mutations", "25", "1", "2", "4", "60"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for seed := uint64(1); seed <= 10; seed++ {
		res, err := runScenario(cfg, seed, zerolog.Nop())
		if err != nil {
			t.Fatalf("runScenario: %v", err)
		}
		if res.halted {
			t.Fatalf("seed %d halted with repair enabled: %v", seed, res)
		}
	}
}

func TestSweepReport(t *testing.T) {
	cfg, _ := config.Parse("tm-sweep", []string{"-variant", "1d", "-extents", "8", "5"})
	var out bytes.Buffer
	if err := sweep(&out, cfg, 6, 3, zerolog.Nop()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Sweeping 6 seeds from 5 (1d 8") || !strings.Contains(text, "Top 3 results") {
		t.Fatalf("report =\n%s", text)
	}
	if strings.Count(text, ") seed=") != 3 || !strings.Contains(text, "halted runs:") {
		t.Fatalf("report =\n%s", text)
	}
}

func TestRunScenarioLogsMutations(t *testing.T) {
	cfg, err := config.Parse("tm-sweep", []string{"-variant", "1d", "-mutations", "4", "-repair", "2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var logs bytes.Buffer
	if _, err := runScenario(cfg, 8, zerolog.New(&logs).Level(zerolog.InfoLevel)); err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	text := logs.String()
	if n := strings.Count(text, `"message":"mutated"`); n != 4 {
		t.Fatalf("logged %d mutations, want 4:\n%s", n, text)
	}
	if !strings.Contains(text, `"seed":8`) {
		t.Fatalf("mutation log lacks the scenario seed:\n%s", text)
	}
}
