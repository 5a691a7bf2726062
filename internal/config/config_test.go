package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaults(t *testing.T) {
	r, err := Parse("tm", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Seed != 1 || r.Symbols != 2 || r.States != 4 || r.Steps != 10 || r.BlindSteps != 0 {
		t.Fatalf("defaults = %+v", r)
	}
	if r.Variant != "2d" || !slices.Equal(r.Extents, Extents{8, 8}) || r.Movements != 4 || r.Mutations != 1 {
		t.Fatalf("variant defaults = %+v", r)
	}
	if r.SeedGiven {
		t.Fatal("SeedGiven set without a positional seed")
	}
}

func TestPositionalArgsClampAndFallback(t *testing.T) {
	cases := []struct {
		args []string
		want Run
	}{
		{[]string{"7", "5", "6", "20", "3"}, Run{Seed: 7, Symbols: 5, States: 6, Steps: 20, BlindSteps: 3}},
		{[]string{"x", "y", "z", "w", "v"}, Run{Seed: 1, Symbols: 2, States: 4, Steps: 10, BlindSteps: 0}},
		{[]string{"3", "1", "2", "-4", "-9"}, Run{Seed: 3, Symbols: 2, States: 3, Steps: 0, BlindSteps: 0}},
		{[]string{"9"}, Run{Seed: 9, Symbols: 2, States: 4, Steps: 10, BlindSteps: 0}},
	}
	for _, c := range cases {
		r, err := Parse("tm", c.args)
		if err != nil {
			t.Fatalf("Parse(%v): %v", c.args, err)
		}
		if r.Seed != c.want.Seed || r.Symbols != c.want.Symbols || r.States != c.want.States ||
			r.Steps != c.want.Steps || r.BlindSteps != c.want.BlindSteps {
			t.Fatalf("Parse(%v) = %+v, want %+v", c.args, r, c.want)
		}
		if !r.SeedGiven {
			t.Fatalf("Parse(%v) did not record the positional seed", c.args)
		}
	}
}

func TestFlagsSelectVariant(t *testing.T) {
	r, err := Parse("tm", []string{"-variant", "3d", "-mutations", "4", "-repair", "5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Variant != "3d" || !slices.Equal(r.Extents, Extents{3, 7, 15}) || r.Movements != 6 {
		t.Fatalf("3d defaults = %+v", r)
	}
	if r.Mutations != 4 || !r.Repair || r.Seed != 5 {
		t.Fatalf("flags = %+v", r)
	}

	r, err = Parse("tm", []string{"-variant", "1d", "-extents", "12", "-movements", "3"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(r.Extents, Extents{12}) || r.Movements != 3 {
		t.Fatalf("1d = %+v", r)
	}
}

func TestExtentsValue(t *testing.T) {
	var e Extents
	if err := e.Set("4x5,6"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if e.String() != "4x5x6" {
		t.Fatalf("String = %q", e.String())
	}
	if err := e.Set("4x0"); err == nil {
		t.Fatal("zero extent accepted")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
seed = 42
states = 6
variant = "1d"
extents = [20]
repair = true
`)
	r, err := Parse("tm", []string{"-config", path, "-mutations", "2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Seed != 42 || r.States != 6 || r.Symbols != 2 || r.Variant != "1d" || !r.Repair {
		t.Fatalf("toml run = %+v", r)
	}
	if !slices.Equal(r.Extents, Extents{20}) || r.Movements != 2 || r.Mutations != 2 {
		t.Fatalf("toml run = %+v", r)
	}
}

func TestLoadYAMLThenArgsWin(t *testing.T) {
	path := writeFile(t, "run.yaml", `
seed: 11
symbols: 3
steps: 50
blind_steps: 5
`)
	r, err := Parse("tm", []string{"-config", path, "12", "4"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Seed != 12 || r.Symbols != 4 || r.Steps != 50 || r.BlindSteps != 5 {
		t.Fatalf("yaml run = %+v", r)
	}
}

func TestLoadFileErrors(t *testing.T) {
	r := Default()
	if err := r.LoadFile(writeFile(t, "run.ini", "seed=1")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file accepted")
	}
	if err := r.LoadFile(writeFile(t, "bad.yaml", "seed: [")); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
