//go:build ebiten

package app

import (
	"toruslife/internal/core"
	"toruslife/internal/render"
	"toruslife/internal/ui"
	"toruslife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var allDigitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a Life engine to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep
	log     *zap.Logger
	names   []string
	digits  []ebiten.Key

	scale    int
	panel    int
	tickOnce bool
}

// New constructs a Game for the provided engine.
func New(sim *life.Life, cfg *Config, log *zap.Logger) *Game {
	size := sim.Size()
	gap := 1
	if cfg.Scale < 3 {
		gap = 0
	}
	ctl := NewController(sim, cfg.Pattern, log)
	names := life.PatternNames()
	return &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(size.W, size.H, cfg.Scale, gap),
		hud:     ui.NewHUD(sim, cfg.Panel, ctl.AdjustParameter),
		timer:   core.NewFixedStep(cfg.TPS),
		log:     log,
		names:   names,
		digits:  allDigitKeys[:PatternDigitCount(names)],
		scale:   cfg.Scale,
		panel:   cfg.Panel,
	}
}

// Update handles per-frame input and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	for i, key := range g.digits {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if name, ok := PatternForDigit(g.names, rune('1'+i)); ok {
			if err := g.ctl.SelectPattern(name); err != nil {
				g.log.Warn("select pattern", zap.Error(err))
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y, onGrid := ScreenToCell(mx, my, g.scale, g.ctl.Sim().Size())
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && onGrid {
		if err := g.ctl.Place("", x, y); err != nil {
			g.log.Warn("place pattern", zap.Error(err))
		}
	}

	size := g.ctl.Sim().Size()
	consumed := g.hud.Update(size.W*g.scale, g.ctl.Paused(), g.ctl.Pattern())
	if !consumed && onGrid && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.ctl.Toggle(x, y); err != nil {
			g.log.Warn("toggle cell", zap.Error(err))
		}
	}

	g.ctl.Tick(g.timer.ShouldStep(), g.tickOnce)
	g.tickOnce = false
	return nil
}

// Draw renders the grid and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Sim().Cells(), render.DefaultPalette)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.panel, h
}
