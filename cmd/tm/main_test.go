package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRunPrintsTableAndTrace(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-variant", "1d", "-extents", "6", "-repair", "3", "2", "4", "5", "2"}, &out, zerolog.Nop()); code != 0 {
		t.Fatalf("exit = %d\n%s", code, out.String())
	}
	text := out.String()
	if !strings.HasPrefix(text, `["-variant" "1d" "-extents" "6" "-repair" "3" "2" "4" "5" "2"]`+"\nseed = 3\n") {
		t.Fatalf("argument vector and seed not echoed first:\n%s", text)
	}
	for _, want := range []string{
		"4 states, 2 symbols\n",
		"rules of (4 states, 2 symbols)-turing machine.\n",
		"with 2 symbols, 4 states and 2 moving-directions 128 rules are possible\n",
		"8 possible input combinations\n",
		"possible rulesets = +1.43e+12\n",
		"mutate rule #",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if n := strings.Count(text, "state: "); n != 5 {
		t.Fatalf("printed %d snapshots, want 5", n)
	}
	if strings.Count(text, "rules of (") != 2 {
		t.Fatal("mutated table not printed")
	}
}

func TestRunOmitsSeedWithoutPositional(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-variant", "1d", "-mutations", "0"}, &out, zerolog.Nop()); code != 0 {
		t.Fatalf("exit = %d\n%s", code, out.String())
	}
	text := out.String()
	if !strings.HasPrefix(text, `["-variant" "1d" "-mutations" "0"]`+"\n") {
		t.Fatalf("argument vector not echoed:\n%s", text)
	}
	if strings.Contains(text, "seed = ") {
		t.Fatalf("seed echoed without a positional seed:\n%s", text)
	}
}

func TestRunDeterministic(t *testing.T) {
	args := []string{"-variant", "3d", "-extents", "2x3x4", "-repair", "77", "3", "5", "12", "7"}
	var a, b bytes.Buffer
	if code := run(args, &a, zerolog.Nop()); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if code := run(args, &b, zerolog.Nop()); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if a.String() != b.String() {
		t.Fatal("identical arguments produced different output")
	}
}

func TestRunRepairKeepsMachineRunning(t *testing.T) {
	for _, seed := range []string{"1", "2", "3", "4", "5"} {
		var out bytes.Buffer
		code := run([]string{"-mutations", "40", "-repair", seed, "3", "5", "30"}, &out, zerolog.Nop())
		if code != 0 {
			t.Fatalf("seed %s: exit = %d", seed, code)
		}
	}
}

func TestRunRejectsUnknownVariant(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-variant", "4d", "-extents", "2x2x2x2"}, &out, zerolog.Nop()); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}
