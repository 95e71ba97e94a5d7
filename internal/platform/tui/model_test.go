package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/storage"
)

// fakeGame completes a letter on the first pointer sample it sees.
type fakeGame struct {
	resets   int
	resized  bool
	pointers int
	done     bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.done = false
}

func (g *fakeGame) Resize(int, int) { g.resized = true }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.pointers += len(in.Pointer)
	var res core.StepResult
	if len(in.Pointer) > 0 && !g.done {
		g.done = true
		res.Completed = &core.Completion{
			GameID:  "fake",
			Glyph:   "L",
			Word:    "Lion",
			Reward:  "🦁",
			Strokes: 2,
			Elapsed: 1500 * time.Millisecond,
		}
	}
	res.State = g.State()
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState {
	score := 0
	if g.done {
		score = 1
	}
	return core.GameState{Score: score, Complete: g.done}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rewards.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

func TestModelRecordsRewardOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := tea.Model(NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, quietLogger()))

	drag := tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m = update(t, m, drag)
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, drag)
	m = update(t, m, TickMsg(time.Now()))

	if game.pointers != 2 {
		t.Errorf("game saw %d pointer samples, expected 2", game.pointers)
	}
	if got := m.(Model).Rewards(); got != 1 {
		t.Errorf("Rewards() = %d, expected 1", got)
	}

	rewards, err := store.RecentRewards("fake", 10)
	if err != nil {
		t.Fatalf("RecentRewards() error = %v", err)
	}
	if len(rewards) != 1 {
		t.Fatalf("RecentRewards() returned %d rows, expected 1", len(rewards))
	}
	r := rewards[0]
	if r.Glyph != "L" || r.Word != "Lion" || r.Strokes != 2 || r.ElapsedMS != 1500 {
		t.Errorf("saved reward = %+v", r)
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &fakeGame{}
	m := tea.Model(NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, quietLogger()))

	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(time.Now()))

	if got := m.(Model).Rewards(); got != 1 {
		t.Errorf("Rewards() = %d, expected 1", got)
	}
	if !strings.Contains(m.View(), "fake game") {
		t.Error("View() should render the game")
	}
}

func TestModelKeys(t *testing.T) {
	game := &fakeGame{}
	m := tea.Model(NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, quietLogger()))

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc}).(Model)
	if !back.BackToMenu() || back.IsQuitting() {
		t.Errorf("esc: BackToMenu=%v IsQuitting=%v, expected true false", back.BackToMenu(), back.IsQuitting())
	}

	quit := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}).(Model)
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &fakeGame{}
	m := tea.Model(NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, quietLogger()))

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !game.resized {
		t.Error("resize should go through Resize")
	}
	if game.resets != 0 {
		t.Errorf("resize reset the game %d times, expected 0", game.resets)
	}
}

func TestRewardFromCompletion(t *testing.T) {
	r := RewardFromCompletion(core.Completion{
		GameID:  "trace",
		Glyph:   "A",
		Word:    "Apple",
		Reward:  "🍎",
		Strokes: 3,
		Elapsed: 2 * time.Second,
	})
	if r.GameID != "trace" || r.Glyph != "A" || r.Reward != "🍎" || r.ElapsedMS != 2000 {
		t.Errorf("RewardFromCompletion() = %+v", r)
	}
}

func TestRenderScreenSkipsWideRuneTail(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "🦁ab")

	out := RenderScreen(s)
	if !strings.Contains(out, "🦁ab") {
		t.Errorf("RenderScreen() = %q, expected it to contain 🦁ab", out)
	}
	if strings.ContainsRune(out, 0) {
		t.Error("RenderScreen() leaked a continuation cell")
	}
}

func TestRewardsModelView(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveReward(storage.Reward{GameID: "trace", Glyph: "L", Word: "Lion", Reward: "🦁", Strokes: 2, ElapsedMS: 900}); err != nil {
		t.Fatalf("SaveReward() error = %v", err)
	}

	m := NewRewardsModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"REWARDS", "All modes", "Lion", "L×1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc}).(RewardsModel)
	if !back.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestRewardsModelEmpty(t *testing.T) {
	m := NewRewardsModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No rewards yet") {
		t.Error("empty board should say there are no rewards")
	}
}
