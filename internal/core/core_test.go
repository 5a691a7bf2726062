package core

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestGridWrapsEveryAxis(t *testing.T) {
	g, err := NewGrid([]int{2, 3, 4}, 0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for axis, n := range g.Extents() {
		g.Shift(axis, false)
		if got := g.Head()[axis]; got != n-1 {
			t.Fatalf("axis %d: backwards from 0 = %d, want %d", axis, got, n-1)
		}
		g.Shift(axis, true)
		if got := g.Head()[axis]; got != 0 {
			t.Fatalf("axis %d: forwards from %d = %d, want 0", axis, n-1, got)
		}
	}
}

func TestGridMoveCodes(t *testing.T) {
	g, _ := NewGrid([]int{5, 5}, 0)
	g.Move(1)
	g.Move(3)
	g.Move(3)
	if h := g.Head(); h[0] != 1 || h[1] != 2 {
		t.Fatalf("head = %v, want [1 2]", h)
	}
	g.Move(4)
	g.Move(200)
	if h := g.Head(); h[0] != 1 || h[1] != 2 {
		t.Fatalf("undefined codes moved head to %v", h)
	}
}

func TestGridReadWriteAtHead(t *testing.T) {
	g, _ := NewGrid([]int{3, 4}, 7)
	for _, c := range g.Cells() {
		if c != 7 {
			t.Fatalf("fill not applied: %v", g.Cells())
		}
	}
	g.Move(0)
	g.Move(2)
	if h := g.Head(); h[0] != 2 || h[1] != 3 {
		t.Fatalf("head = %v, want [2 3]", h)
	}
	g.Write(1)
	if g.Read() != 1 || g.Cells()[g.Index(2, 3)] != 1 {
		t.Fatalf("write not visible at head")
	}
	if !g.IsHead(g.Index(2, 3)) || g.IsHead(0) {
		t.Fatal("IsHead disagrees with head position")
	}
}

func TestNewGridRejectsBadExtents(t *testing.T) {
	for _, ext := range [][]int{nil, {0}, {4, -1}, {math.MaxInt / 2, 3}, {1 << 20, 1 << 20, 1 << 20, 1 << 20}} {
		if _, err := NewGrid(ext, 0); !errors.Is(err, ErrBadExtent) {
			t.Fatalf("NewGrid(%v) err = %v, want ErrBadExtent", ext, err)
		}
	}
}

func TestConfigClamp(t *testing.T) {
	c := Config{States: 1, Symbols: 0, Movements: 0}.Clamp()
	if c.States != 3 || c.Symbols != 2 || c.Movements != 1 {
		t.Fatalf("Clamp floors = %+v", c)
	}
	c = Config{States: 900, Symbols: 300, Movements: 4}.Clamp()
	if c.States != MaxCount || c.Symbols != MaxCount || c.Movements != 4 {
		t.Fatalf("Clamp caps = %+v", c)
	}
}

func TestRuleField(t *testing.T) {
	r := Rule{State: 1, Symbol: 2, Next: 3, Write: 4, Move: 5}
	for i := FieldState; i <= FieldMove; i++ {
		if got := r.Field(i); got != uint8(i+1) {
			t.Fatalf("Field(%d) = %d", i, got)
		}
	}
	if !r.Matches(1, 2) || r.Matches(2, 1) {
		t.Fatal("Matches compares the wrong fields")
	}
}

func TestLookupReturnsFirstMatch(t *testing.T) {
	rules := []Rule{
		{State: 1, Symbol: 0, Next: 2, Write: 1, Move: 1},
		{State: 1, Symbol: 0, Next: 0, Write: 0, Move: 0},
	}
	r, ok := Lookup(rules, 1, 0)
	if !ok || r.Next != 2 {
		t.Fatalf("Lookup = %+v, %v", r, ok)
	}
	if _, ok := Lookup(rules, 0, 0); ok {
		t.Fatal("Lookup found a rule for a missing prefix")
	}
	if _, ok := Lookup(nil, 0, 0); ok {
		t.Fatal("Lookup matched in an empty rule set")
	}
}

func TestNewMemoryUnknownVariant(t *testing.T) {
	Register("test", func(extents []int, fill uint8) (Memory, error) { return nil, nil })
	defer delete(variants, "test")
	_, err := NewMemory("9d", []int{1}, 0)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err = %v, want ErrUnknownVariant", err)
	}
	if !strings.Contains(err.Error(), "have test") {
		t.Fatalf("err = %v, want registered variants listed", err)
	}
}

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	if n := fs.Due(start); n != 1 {
		t.Fatalf("first poll = %d, want 1", n)
	}
	if n := fs.Due(start.Add(250 * time.Millisecond)); n != 2 {
		t.Fatalf("after 250ms = %d, want 2", n)
	}
	if n := fs.Due(start.Add(time.Hour)); n != maxCatchUp {
		t.Fatalf("after stall = %d, want %d", n, maxCatchUp)
	}
	if fs.Rate() != 10 {
		t.Fatalf("Rate = %d", fs.Rate())
	}
}

func TestFixedStepRateIsCapped(t *testing.T) {
	fs := NewFixedStep(8)
	for i := 0; i < 40; i++ {
		fs.SetRate(fs.Rate() * 2)
	}
	if fs.Rate() != MaxRate {
		t.Fatalf("Rate after doubling = %d, want %d", fs.Rate(), MaxRate)
	}
	start := time.Unix(100, 0)
	fs.Due(start)
	if n := fs.Due(start.Add(time.Millisecond)); n != MaxRate/1000 {
		t.Fatalf("steps in 1ms at max rate = %d, want %d", n, MaxRate/1000)
	}
	fs.SetRate(-1)
	if fs.Rate() != 60 {
		t.Fatalf("Rate after non-positive = %d, want 60", fs.Rate())
	}
}
