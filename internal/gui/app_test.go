package gui

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/micromatch/internal/game"
	"github.com/appengine-ltd/micromatch/internal/scores"
)

func testUI(t *testing.T, store *scores.Store) *gameUI {
	t.Helper()
	catalog, err := game.NewCatalog([]game.Organism{
		{Name: "Alpha", Color: "#e0b43a", Cultural: []string{"alpha colonies"}},
		{Name: "Beta", Color: "#3aa88c", Microscopic: []string{"beta rods"}, Cultural: []string{"beta haze"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	cfg := game.DefaultConfig()
	cfg.Seed = 21
	engine, err := game.NewEngine(cfg, catalog)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return newGameUI(AppConfig{Engine: engine, Scores: store, Player: "bo"})
}

func runCommands(ui *gameUI) {
	ui.commands.Drain(ui.apply)
	ui.relayout()
}

func startBoard(t *testing.T, ui *gameUI) {
	t.Helper()
	ui.commands.Hotkey("start")
	runCommands(ui)
	if ui.engine.State().Phase != game.PhaseRunning {
		t.Fatalf("expected running phase after start")
	}
}

func traitIndex(t *testing.T, ui *gameUI, key game.OrganismKey) int {
	t.Helper()
	for i, tr := range ui.engine.State().VisibleTraits() {
		if tr.Organism == key {
			return i
		}
	}
	t.Fatalf("no visible trait for %s", key)
	return -1
}

func organismIndex(t *testing.T, ui *gameUI, key game.OrganismKey) int {
	t.Helper()
	for i, k := range ui.boardKeys {
		if k == key {
			return i
		}
	}
	t.Fatalf("%s not on the board", key)
	return -1
}

func TestDragAndDropCorrectMatchBursts(t *testing.T) {
	ui := testUI(t, nil)
	startBoard(t, ui)

	ti := traitIndex(t, ui, "Alpha")
	oi := organismIndex(t, ui, "Alpha")
	if !ui.drag.Begin(ui.layout, ui.engine.State().VisibleTraits(), center(ui.layout.Traits[ti])) {
		t.Fatalf("expected drag to start")
	}
	ui.release(center(ui.layout.Organisms[oi]))

	state := ui.engine.State()
	if state.Score != 10 || state.InPool("Alpha") {
		t.Fatalf("expected Alpha cleared, score=%d pool=%v", state.Score, state.Pool)
	}
	if len(ui.bursts) != 1 || ui.bursts[0].key != "Alpha" {
		t.Fatalf("expected a burst for Alpha, got %+v", ui.bursts)
	}
	want := center(ui.layout.Organisms[oi])
	if ui.bursts[0].center != want {
		t.Fatalf("expected burst at the cleared card %v, got %v", want, ui.bursts[0].center)
	}
	if _, ok := ui.flashes["Alpha"]; !ok {
		t.Fatalf("expected success flash on Alpha")
	}

	ui.sched.RunDue(time.Now().Add(time.Second))
	if len(ui.bursts) != 0 || len(ui.flashes) != 0 {
		t.Fatalf("expected animations to expire, bursts=%d flashes=%d", len(ui.bursts), len(ui.flashes))
	}
}

func TestTypedWrongMatchFlashesDanger(t *testing.T) {
	ui := testUI(t, nil)
	startBoard(t, ui)

	ui.input = strconv.Itoa(traitIndex(t, ui, "Alpha")+1) + " beta"
	ui.submitInput()
	runCommands(ui)

	if lives := ui.engine.State().Lives; lives != 2 {
		t.Fatalf("expected 2 lives, got %d", lives)
	}
	f, ok := ui.flashes["Beta"]
	if !ok || f.color != AppTheme.Danger {
		t.Fatalf("expected danger flash on Beta, got %+v", ui.flashes)
	}
	if last := ui.messages[len(ui.messages)-1]; !strings.HasPrefix(last, "Wrong:") {
		t.Fatalf("expected wrong message, got %q", last)
	}
}

func TestRepeatedFlashReplacesTask(t *testing.T) {
	ui := testUI(t, nil)
	startBoard(t, ui)
	before := ui.sched.Pending()
	now := time.Now()
	ui.flashOrganism(now, "Beta", AppTheme.Danger)
	ui.flashOrganism(now, "Beta", AppTheme.Warning)
	if ui.sched.Pending() != before+1 {
		t.Fatalf("expected one pending flash task, got %d", ui.sched.Pending()-before)
	}
	if ui.flashes["Beta"].color != AppTheme.Warning {
		t.Fatalf("expected latest flash colour")
	}
}

func TestClarifyGoesToLog(t *testing.T) {
	ui := testUI(t, nil)
	startBoard(t, ui)
	ui.input = "match 2"
	ui.submitInput()
	if n := ui.commands.Drain(ui.apply); n != 0 {
		t.Fatalf("a clarifying question should not queue a command")
	}
	if last := ui.messages[len(ui.messages)-1]; !strings.Contains(last, "Which organism") {
		t.Fatalf("expected clarify prompt, got %q", last)
	}
}

func TestHeaderButtonsFollowPhase(t *testing.T) {
	l := computeLayout(1280, 760, 0, 0)
	verbs := func(phase game.Phase) []string {
		var out []string
		for _, b := range headerButtons(l, phase) {
			if !pointIn(l.Header, center(b.Rect)) {
				t.Fatalf("button %s outside header", b.Label)
			}
			out = append(out, b.Label)
		}
		return out
	}
	if got := strings.Join(verbs(game.PhaseIdle), ","); got != "Start,Hint,Pause,Scores" {
		t.Fatalf("idle buttons: %s", got)
	}
	if got := strings.Join(verbs(game.PhaseRunning), ","); got != "Reset,Hint,Pause,Scores" {
		t.Fatalf("running buttons: %s", got)
	}
	if got := strings.Join(verbs(game.PhasePaused), ","); got != "Reset,Hint,Resume,Scores" {
		t.Fatalf("paused buttons: %s", got)
	}
}

func TestPauseBlocksDragAndMatches(t *testing.T) {
	ui := testUI(t, nil)
	startBoard(t, ui)
	ui.drag.Begin(ui.layout, ui.engine.State().VisibleTraits(), center(ui.layout.Traits[0]))
	ui.commands.Hotkey("pause")
	runCommands(ui)
	if ui.drag.Active {
		t.Fatalf("pausing should drop the held card")
	}
	ui.press(center(ui.layout.Traits[0]))
	if ui.drag.Active {
		t.Fatalf("no drag while paused")
	}
}

func TestGameOverRecordsScoreInBackground(t *testing.T) {
	store, err := scores.Open(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ui := testUI(t, store)
	startBoard(t, ui)
	n := strconv.Itoa(traitIndex(t, ui, "Alpha") + 1)
	for i := 0; i < 3; i++ {
		ui.input = n + " beta"
		ui.submitInput()
		runCommands(ui)
	}
	if ui.engine.State().Phase != game.PhaseGameOver || !ui.recorded {
		t.Fatalf("expected recorded game over")
	}

	deadline := time.Now().Add(5 * time.Second)
	for !ui.showScores && time.Now().Before(deadline) {
		ui.pollRecordResult()
		time.Sleep(10 * time.Millisecond)
	}
	if !ui.showScores || len(ui.top) != 1 || ui.top[0].Player != "bo" || ui.top[0].Outcome != scores.OutcomeGameOver {
		t.Fatalf("expected saved result in top scores, got %+v", ui.top)
	}

	ui.commands.Hotkey("reset")
	runCommands(ui)
	if ui.recorded || ui.showScores {
		t.Fatalf("reset should allow a new recording and close the scores")
	}
}
