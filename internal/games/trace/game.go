// Package trace is the letter tracing game: it owns one tracing Controller
// per letter, maps terminal cells into normalized letter space and draws
// the letter in layers. It registers itself as "trace" (random letters) and
// "trace_abc" (A to Z in order).
package trace

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-trace/internal/catalog"
	"github.com/vovakirdan/tui-trace/internal/config"
	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/registry"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// Mode represents the letter selection mode.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeABC    Mode = "abc"
)

// Layout constants in screen rows.
const (
	hudHeight    = 2 // Status line + separator
	footerHeight = 2 // Prompt + key help
	minAreaW     = 20
	minAreaH     = 8
)

// pathStep is the sampling distance along display paths, in normalized units.
const pathStep = 1.0

// Game implements the letter tracing game.
type Game struct {
	mode Mode

	cfg     config.TracingConfig
	cat     *catalog.Catalog
	sel     *catalog.Selector
	loadErr error

	ctrl  *tracing.Controller
	paths [][][]core.Point // Sampled display polylines per stroke

	tick      uint64
	tickRate  int
	startTick uint64 // Tick the current letter started

	// Screen dimensions and letter placement
	screenW  int
	screenH  int
	area     core.Rect
	viewport core.Viewport
	tooSmall bool

	message     string
	paused      bool
	demo        *demoPointer // nil when demo mode is off
	lettersDone int
	last        *core.Completion
}

// Package-level options set by the CLI before the game is created.
var (
	configPath  string
	catalogDir  string
	forcedGlyph string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetCatalogDir sets a directory of extra letter files, overriding the config.
func SetCatalogDir(dir string) {
	catalogDir = dir
}

// SetLetter forces the first letter of the next Reset. Empty means no preference.
func SetLetter(glyph string) {
	forcedGlyph = glyph
}

// New creates a game that picks letters at random (or as configured).
func New() *Game {
	return &Game{mode: ModeRandom}
}

// NewABC creates a game that walks the catalog in order.
func NewABC() *Game {
	return &Game{mode: ModeABC}
}

func init() {
	registry.Register("trace", func() registry.Game {
		return New()
	})
	registry.Register("trace_abc", func() registry.Game {
		return NewABC()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeABC {
		return "trace_abc"
	}
	return "trace"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeABC {
		return "Letter Tracing (A to Z)"
	}
	return "Letter Tracing"
}

// Reset loads configuration and the catalog (once per game) and starts the
// first letter.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.demo = nil
	g.lettersDone = 0
	g.last = nil
	g.ctrl = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.cat == nil {
		if err := g.load(); err != nil {
			g.loadErr = err
			return
		}
	}
	g.loadErr = nil

	g.sel = catalog.NewSelector(g.cat, g.selection(), cfg.Seed)
	g.layout()
	g.startLetter(g.firstLetter())
}

// load reads the config file and builds the catalog.
func (g *Game) load() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	dir := cfg.Session.CatalogDir
	if catalogDir != "" {
		dir = catalogDir
	}
	cat, err := catalog.Load(dir, cfg.Params())
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.cat = cat
	return nil
}

func (g *Game) selection() catalog.Selection {
	if g.mode == ModeABC {
		return catalog.SelectSequential
	}
	return g.cfg.Selection()
}

// firstLetter honours a forced glyph once, then falls back to the selector.
func (g *Game) firstLetter() tracing.Letter {
	// Only the local CLI sets a glyph; SSH sessions never write here.
	if glyph := forcedGlyph; glyph != "" {
		forcedGlyph = ""
		if g.selection() == catalog.SelectSequential {
			g.sel.Seek(glyph)
		} else if l, ok := g.cat.ByGlyph(glyph); ok {
			return l
		}
	}
	return g.sel.Next()
}

// layout places the letter square between the HUD and the footer.
func (g *Game) layout() {
	g.area = core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
	g.tooSmall = g.area.W < minAreaW || g.area.H < minAreaH
	g.viewport = core.FitViewport(g.area, g.cfg.Display.CellAspect)
}

// Resize adapts the viewport to a new screen size, keeping progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout()
}

// startLetter begins a fresh session for l.
func (g *Game) startLetter(l tracing.Letter) {
	l = g.cfg.ApplyAssist(l)
	g.ctrl = tracing.NewController(l, g.cfg.Params())
	g.paths = samplePaths(l)
	g.startTick = g.tick
	g.message = fmt.Sprintf("Trace the letter %s!", l.Glyph)
	if g.demo != nil {
		g.demo = newDemoPointer()
	}
}

// samplePaths flattens every stroke's display path for drawing.
// Paths are validated at catalog load, so parse errors only drop the visual.
func samplePaths(l tracing.Letter) [][][]core.Point {
	out := make([][][]core.Point, len(l.Strokes))
	for i, s := range l.Strokes {
		if s.DisplayPath == "" {
			continue
		}
		p, err := core.ParsePath(s.DisplayPath)
		if err != nil {
			continue
		}
		out[i] = p.Sample(pathStep)
	}
	return out
}

// Step advances the game by one host tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processActions(input)

	var result core.StepResult
	for _, s := range input.Pointer {
		if c := g.touch(g.viewport.CellToNormalized(s.X, s.Y)); c != nil {
			result.Completed = c
		}
	}

	if g.demo != nil {
		for i := 0; i < g.cfg.Demo.SamplesPerTick; i++ {
			p, ok := g.demo.next(g.ctrl)
			if !ok {
				break
			}
			if c := g.touch(p); c != nil {
				result.Completed = c
			}
		}
	}

	result.State = g.State()
	return result
}

// processActions handles key-driven actions.
func (g *Game) processActions(input core.InputFrame) {
	l := g.ctrl.Letter()

	if input.Has(core.ActionCue) {
		g.message = fmt.Sprintf("%s. %s. %s.", l.Glyph, l.Sound, l.Word)
	}

	if input.Has(core.ActionRestart) {
		g.ctrl.Reset()
		g.startTick = g.tick
		g.message = fmt.Sprintf("Trace the letter %s!", l.Glyph)
		if g.demo != nil {
			g.demo = newDemoPointer()
		}
	}

	if input.Has(core.ActionNext) && g.ctrl.IsComplete() {
		g.startLetter(g.sel.Next())
	}

	if input.Has(core.ActionDemo) {
		if g.demo == nil {
			g.demo = newDemoPointer()
		} else {
			g.demo = nil
		}
	}
}

// touch feeds one normalized sample to the controller and returns the
// completion record on the sample that finishes the letter.
func (g *Game) touch(p core.Point) *core.Completion {
	if g.ctrl.IsComplete() {
		return nil
	}
	if g.ctrl.HandleTouch(p) != tracing.EventLetterComplete {
		return nil
	}

	l := g.ctrl.Letter()
	g.lettersDone++
	g.message = fmt.Sprintf("%s is for %s! Great job!", l.Glyph, l.Word)
	g.last = &core.Completion{
		GameID:  g.ID(),
		Glyph:   l.Glyph,
		Word:    l.Word,
		Reward:  l.Reward,
		Strokes: l.StrokeCount(),
		Elapsed: time.Duration(g.tick-g.startTick) * time.Second / time.Duration(g.tickRate),
	}
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.lettersDone,
		Complete: g.ctrl != nil && g.ctrl.IsComplete(),
		Paused:   g.paused,
	}
}

// Letter returns the session's letter, with the assist preset applied.
func (g *Game) Letter() (tracing.Letter, bool) {
	if g.ctrl == nil {
		return tracing.Letter{}, false
	}
	return g.ctrl.Letter(), true
}

// LastCompletion returns the most recently completed letter, if any.
func (g *Game) LastCompletion() (core.Completion, bool) {
	if g.last == nil {
		return core.Completion{}, false
	}
	return *g.last, true
}

// Viewport returns the current cell to letter-space mapping.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}

// Err returns the configuration or catalog error that stopped the game.
func (g *Game) Err() error {
	return g.loadErr
}
