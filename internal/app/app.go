//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"tm-sim/internal/config"
	"tm-sim/internal/core"
	"tm-sim/internal/machine"
	"tm-sim/internal/render"
	"tm-sim/internal/rules"
	"tm-sim/internal/ui"
	random "tm-sim/pkg/core"
)

// Game adapts a machine to the ebiten.Game interface.
type Game struct {
	cfg     config.Run
	rng     *random.RNG
	table   *rules.Table
	tm      *machine.Executor
	painter *render.GridPainter
	palette []color.RGBA
	pacer   *core.FixedStep
	hud     *ui.HUD
	log     zerolog.Logger

	scale    int
	paused   bool
	tickOnce bool
	err      error
}

// New builds a machine from cfg and wraps it for display.
func New(cfg config.Run, scale, rate int, log zerolog.Logger) (*Game, error) {
	g := &Game{cfg: cfg, scale: scale, log: log, pacer: core.NewFixedStep(rate)}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	f := render.Flatten(g.tm.Memory())
	g.painter = render.NewGridPainter(f.W, f.H)
	g.palette = render.Palette(cfg.Symbols)
	g.hud = ui.NewHUD(f.H*scale, ui.PanelWidth)
	return g, nil
}

// Reset regenerates the rules from seed and clears the tape.
func (g *Game) Reset(seed uint64) error {
	mem, err := core.NewMemory(g.cfg.Variant, g.cfg.Extents, 0)
	if err != nil {
		return err
	}
	g.cfg.Seed = seed
	g.rng = random.NewRNG(seed)
	g.table = rules.Generate(g.cfg.Machine(), g.rng)
	g.tm = machine.New(mem, machine.WithLogger(g.log))
	g.tm.LoadRules(g.table.Rules())
	g.err = nil
	g.tickOnce = false
	return nil
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + ui.PanelWidth, h * g.scale
}

func (g *Game) mutate() {
	edits, err := g.table.Mutate(max(g.cfg.Mutations, 1), g.rng)
	if err != nil {
		g.err = err
		return
	}
	for _, m := range edits {
		g.log.Info().Int("rule", m.Index).Int("field", m.Field).Uint8("value", m.Value()).Msg("mutated")
	}
	if err := g.table.Validate(); err != nil && g.cfg.Repair {
		g.table.Repair()
	}
	g.tm.LoadRules(g.table.Rules())
	g.err = nil
}

// Update handles per-frame logic and advances the machine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mutate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(uint64(time.Now().UnixNano())); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetRate(g.pacer.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetRate(max(g.pacer.Rate()/2, 1))
	}

	n := g.pacer.Due(time.Now())
	if g.paused || g.err != nil {
		n = 0
	}
	if g.tickOnce && g.err == nil {
		n = 1
		g.tickOnce = false
	}
	if err := g.tm.Run(n); err != nil {
		if !errors.Is(err, machine.ErrNoRule) {
			return err
		}
		g.err = err
		g.paused = true
	}
	g.hud.Update(ui.Status{
		Seed:   g.cfg.Seed,
		State:  g.tm.State(),
		Steps:  g.tm.Steps(),
		Rate:   g.pacer.Rate(),
		Paused: g.paused,
		Err:    g.err,
	})
	return nil
}

// Draw renders the current tape and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, render.Flatten(g.tm.Memory()), g.palette, g.scale)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
