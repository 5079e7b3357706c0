package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/micromatch/internal/game"
	"github.com/appengine-ltd/micromatch/internal/parser"
	"github.com/appengine-ltd/micromatch/internal/scores"
)

func testModel(t *testing.T, store *scores.Store) boardModel {
	t.Helper()
	catalog, err := game.NewCatalog([]game.Organism{
		{Name: "Alpha", Color: "#e0b43a", Cultural: []string{"alpha colonies"}},
		{Name: "Beta", Color: "#3aa88c", Microscopic: []string{"beta rods"}, Cultural: []string{"beta haze"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	engine, err := game.NewEngine(cfg, catalog)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return newBoardModel(AppConfig{Engine: engine, Scores: store, Player: "ada"})
}

func typeLine(t *testing.T, m boardModel, line string) (boardModel, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.(boardModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(boardModel)
	if got.input != "" {
		t.Fatalf("expected input cleared after enter, got %q", got.input)
	}
	return got, cmd
}

// traitNumber returns the 1-based board number of a visible trait owned by key.
func traitNumber(t *testing.T, m boardModel, key game.OrganismKey) int {
	t.Helper()
	for i, tr := range m.engine.State().VisibleTraits() {
		if tr.Organism == key {
			return i + 1
		}
	}
	t.Fatalf("no visible trait for %s", key)
	return 0
}

func lastHistory(m boardModel) string {
	if len(m.history) == 0 {
		return ""
	}
	return m.history[len(m.history)-1]
}

func TestStartDealsBoard(t *testing.T) {
	m := testModel(t, nil)
	if !strings.Contains(m.View(), "Type start") {
		t.Fatalf("expected idle prompt in view")
	}
	m, _ = typeLine(t, m, "start")
	state := m.engine.State()
	if state.Phase != game.PhaseRunning || len(state.Visible) != 3 {
		t.Fatalf("expected running board with 3 traits, got %s with %d", state.Phase, len(state.Visible))
	}
	if !strings.Contains(lastHistory(m), "New board dealt") {
		t.Fatalf("expected deal message, got %q", lastHistory(m))
	}
	view := m.View()
	for _, want := range []string{"a) Alpha", "b) Beta", "alpha colonies", " 1."} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestBackspaceAndEscEditInput(t *testing.T) {
	m := testModel(t, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hintx")})
	next, _ = next.(boardModel).Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := next.(boardModel).input; got != "hint" {
		t.Fatalf("expected backspace to drop last rune, got %q", got)
	}
	next, _ = next.(boardModel).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.(boardModel).input; got != "" {
		t.Fatalf("expected esc to clear input, got %q", got)
	}
}

func TestCorrectMatchClearsOrganismWithBurst(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "start")

	n := traitNumber(t, m, "Alpha")
	m, cmd := typeLine(t, m, itoa(n)+" alpha")
	state := m.engine.State()
	if state.Score != 10 || state.InPool("Alpha") {
		t.Fatalf("expected Alpha cleared with 10 points, got score=%d pool=%v", state.Score, state.Pool)
	}
	if !m.fx.ghosts["Alpha"] {
		t.Fatalf("expected burst ghost for Alpha")
	}
	if cmd == nil || !m.ticking {
		t.Fatalf("expected a tick to drive the burst animation")
	}
	if !strings.Contains(m.View(), "BURST") {
		t.Fatalf("expected burst card in view")
	}

	next, cmd := m.Update(tickMsg(time.Now().Add(time.Second)))
	m = next.(boardModel)
	if m.fx.ghosts["Alpha"] {
		t.Fatalf("expected ghost removed once the burst elapsed")
	}
	if cmd != nil || m.ticking {
		t.Fatalf("expected ticking to stop with no pending tasks")
	}
}

func TestWrongMatchFlashesAndCostsLife(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "start")

	n := traitNumber(t, m, "Alpha")
	m, _ = typeLine(t, m, itoa(n)+" beta")
	if lives := m.engine.State().Lives; lives != 2 {
		t.Fatalf("expected 2 lives, got %d", lives)
	}
	if m.fx.flash != "WRONG" || !strings.Contains(m.View(), "WRONG") {
		t.Fatalf("expected wrong flash")
	}
	next, _ := m.Update(tickMsg(time.Now().Add(time.Second)))
	if next.(boardModel).fx.flash != "" {
		t.Fatalf("expected flash cleared after its duration")
	}
}

func TestMatchWhilePausedIsIgnored(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "start")
	m, _ = typeLine(t, m, "pause")
	if m.engine.State().Phase != game.PhasePaused {
		t.Fatalf("expected paused phase")
	}
	if strings.Contains(m.View(), "alpha colonies") {
		t.Fatalf("traits should be hidden while paused")
	}
	m, _ = typeLine(t, m, "1 alpha")
	if !strings.Contains(lastHistory(m), "Paused") {
		t.Fatalf("expected paused notice, got %q", lastHistory(m))
	}
	if m.engine.State().Score != 0 || m.engine.State().Lives != 3 {
		t.Fatalf("paused match changed state")
	}
	m, _ = typeLine(t, m, "resume")
	if m.engine.State().Phase != game.PhaseRunning {
		t.Fatalf("expected running after resume")
	}
}

func TestHintNamesOwner(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "hint")
	if !strings.Contains(lastHistory(m), "No hint") {
		t.Fatalf("expected no hint before start, got %q", lastHistory(m))
	}
	m, _ = typeLine(t, m, "start")
	m, _ = typeLine(t, m, "clue")
	if !strings.HasPrefix(lastHistory(m), "Hint:") || m.engine.State().Hints != 1 {
		t.Fatalf("expected hint message and counter, got %q hints=%d", lastHistory(m), m.engine.State().Hints)
	}
}

func TestClarifyQuestionsReachHistory(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "start")
	m, _ = typeLine(t, m, "match 2")
	if !strings.Contains(lastHistory(m), "Which organism") || !strings.Contains(lastHistory(m), "match 2 alpha") {
		t.Fatalf("expected organism options, got %q", lastHistory(m))
	}
	m, _ = typeLine(t, m, "9 alpha")
	if !strings.Contains(lastHistory(m), "no trait 9") {
		t.Fatalf("expected out of range message, got %q", lastHistory(m))
	}
}

func TestGameOverRecordsScore(t *testing.T) {
	store, err := scores.Open(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	m := testModel(t, store)
	m, _ = typeLine(t, m, "start")
	n := traitNumber(t, m, "Alpha")

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = typeLine(t, m, itoa(n)+" beta")
	}
	if m.engine.State().Phase != game.PhaseGameOver || !m.recorded {
		t.Fatalf("expected recorded game over, got %s recorded=%v", m.engine.State().Phase, m.recorded)
	}

	var recorded *recordedMsg
	for _, msg := range collectMsgs(cmd) {
		if r, ok := msg.(recordedMsg); ok {
			recorded = &r
		}
	}
	if recorded == nil || recorded.err != nil {
		t.Fatalf("expected a recorded message, got %+v", recorded)
	}
	next, _ := m.Update(*recorded)
	m = next.(boardModel)
	if !m.showScores || len(m.top) != 1 || m.top[0].Player != "ada" || m.top[0].Outcome != scores.OutcomeGameOver {
		t.Fatalf("expected top scores with the finished game, got %+v", m.top)
	}
	if !strings.Contains(m.View(), "Top scores") {
		t.Fatalf("expected scores view")
	}

	// A further wrong guess after game over must not record again.
	m, cmd = typeLine(t, m, itoa(n)+" beta")
	if cmd != nil {
		t.Fatalf("expected no command after game over")
	}
}

func TestScoresWithoutStore(t *testing.T) {
	m := testModel(t, nil)
	m, cmd := typeLine(t, m, "scores")
	if cmd != nil || !strings.Contains(lastHistory(m), "disabled") {
		t.Fatalf("expected disabled notice, got %q", lastHistory(m))
	}
}

func TestQuitCommand(t *testing.T) {
	m := testModel(t, nil)
	_, cmd := typeLine(t, m, "quit")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

func itoa(n int) string {
	return string(rune('0' + n))
}

func TestResolveMatch(t *testing.T) {
	m := testModel(t, nil)
	m, _ = typeLine(t, m, "start")
	state := m.engine.State()
	n := traitNumber(t, m, "Beta")

	key, trait, err := ResolveMatch(state, parser.Intent{Verb: "match", Trait: n, Organism: "beta"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if key != "Beta" || trait.ID != state.VisibleTraits()[n-1].ID {
		t.Fatalf("unexpected resolution %s %+v", key, trait)
	}

	tests := []struct {
		name   string
		intent parser.Intent
		want   string
	}{
		{name: "trait out of range", intent: parser.Intent{Trait: 9, Organism: "beta"}, want: "no trait 9"},
		{name: "organism off board", intent: parser.Intent{Trait: 1, Organism: "gamma"}, want: "not on the board"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ResolveMatch(state, tc.intent)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
