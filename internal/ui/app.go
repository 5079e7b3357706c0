package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/micromatch/internal/fx"
	"github.com/appengine-ltd/micromatch/internal/game"
	"github.com/appengine-ltd/micromatch/internal/parser"
	"github.com/appengine-ltd/micromatch/internal/scores"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Engine  *game.Engine
	Scores  *scores.Store
	Player  string
	LogFile string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	if a.cfg.Engine == nil {
		return fmt.Errorf("ui: no engine")
	}
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "micromatch")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
	}
	a.cfg.Engine.Subscribe(game.ObserverFunc(logEffect))
	log.Printf("terminal client started seed=%d", a.cfg.Engine.Seed())

	m := newBoardModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if bm, ok := final.(boardModel); ok {
		bm.recordAbandoned()
	}
	return nil
}

func logEffect(e game.Effect) {
	if e.Kind == game.EffectRender {
		return
	}
	log.Printf("effect=%s organism=%q trait=%d level=%d", e.Kind, e.Organism, e.Trait, e.Level)
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	alert       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	burst       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

const (
	frameInterval  = 50 * time.Millisecond
	burstDuration  = 700 * time.Millisecond
	flashDuration  = 600 * time.Millisecond
	maxHistory     = 8
	topScoresLimit = 5
	boardTag       = "board"
)

type tickMsg time.Time

type recordedMsg struct {
	result scores.Result
	top    []scores.Result
	err    error
}

type topScoresMsg struct {
	top []scores.Result
	err error
}

// boardFX holds the cosmetic overlay. Scheduler tasks write to it, so the
// model keeps it behind a pointer that survives bubbletea's value copies.
type boardFX struct {
	sched  *fx.Scheduler
	ghosts map[game.OrganismKey]bool
	flash  string
}

type boardModel struct {
	cfg    AppConfig
	engine *game.Engine
	parser *parser.Parser
	fx     *boardFX
	now    func() time.Time

	input        string
	history      []string
	lastOrganism string
	ticking      bool
	recorded     bool
	top          []scores.Result
	showScores   bool
}

func newBoardModel(cfg AppConfig) boardModel {
	if cfg.Player == "" {
		cfg.Player = "player"
	}
	return boardModel{
		cfg:    cfg,
		engine: cfg.Engine,
		parser: parser.New(),
		fx: &boardFX{
			sched:  fx.NewScheduler(),
			ghosts: map[game.OrganismKey]bool{},
		},
		now:     time.Now,
		history: []string{"Type start to deal a board, or help for commands."},
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input
			m.input = ""
			return m.submit(line)
		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
			return m, nil
		case tea.KeyEsc:
			m.input = ""
			m.showScores = false
			return m, nil
		case tea.KeySpace:
			m.input += " "
			return m, nil
		case tea.KeyRunes:
			m.input += string(msg.Runes)
			return m, nil
		}
	case tickMsg:
		m.fx.sched.RunDue(time.Time(msg))
		if m.fx.sched.Pending() == 0 {
			m.ticking = false
			return m, nil
		}
		return m, tickCmd()
	case recordedMsg:
		if msg.err != nil {
			m.pushHistory(alert.Render(fmt.Sprintf("Could not save score: %v", msg.err)))
			return m, nil
		}
		m.top = msg.top
		m.showScores = true
		m.pushHistory(fmt.Sprintf("Saved %d points for %s.", msg.result.Score, msg.result.Player))
		return m, nil
	case topScoresMsg:
		if msg.err != nil {
			m.pushHistory(alert.Render(fmt.Sprintf("Could not load scores: %v", msg.err)))
			return m, nil
		}
		m.top = msg.top
		m.showScores = true
		return m, nil
	}
	return m, nil
}

func (m boardModel) submit(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	state := m.engine.State()
	intent := m.parser.Parse(ParseContext(state, m.lastOrganism), line)
	if intent.Clarify != nil {
		m.pushHistory(ClarifyText(intent.Clarify))
		return m, nil
	}

	switch intent.Verb {
	case "help":
		m.pushHistory(HelpText)
		return m, nil
	case "quit":
		return m, tea.Quit
	case "start", "reset":
		m.fx.sched.CancelTag(boardTag)
		clear(m.fx.ghosts)
		m.fx.flash = ""
		m.recorded = false
		m.showScores = false
		m.lastOrganism = ""
		var effects []game.Effect
		if intent.Verb == "start" {
			effects = m.engine.Start()
		} else {
			effects = m.engine.Reset()
		}
		return m.handleEffects(effects)
	case "hint":
		effects := m.engine.Hint()
		if len(effects) == 0 {
			m.pushHistory("No hint available right now.")
			return m, nil
		}
		return m.handleEffects(effects)
	case "pause":
		effects := m.engine.TogglePause()
		if len(effects) == 0 {
			m.pushHistory("Nothing to pause.")
			return m, nil
		}
		return m.handleEffects(effects)
	case "board":
		m.showScores = false
		return m, nil
	case "scores":
		if m.cfg.Scores == nil {
			m.pushHistory("Score history is disabled.")
			return m, nil
		}
		return m, topScoresCmd(m.cfg.Scores)
	case "match":
		return m.proposeMatch(state, intent)
	}
	m.pushHistory(fmt.Sprintf("Nothing to do for %q.", line))
	return m, nil
}

func (m boardModel) proposeMatch(state game.State, intent parser.Intent) (tea.Model, tea.Cmd) {
	key, trait, err := ResolveMatch(state, intent)
	if err != nil {
		m.pushHistory(err.Error())
		return m, nil
	}
	m.lastOrganism = intent.Organism
	result := m.engine.ProposeMatch(key, trait.ID)
	switch result.Outcome {
	case game.OutcomeIgnored:
		switch m.engine.State().Phase {
		case game.PhasePaused:
			m.pushHistory("Paused. Type pause to resume.")
		case game.PhaseIdle:
			m.pushHistory("Type start to deal a board.")
		default:
			m.pushHistory("That match is not available.")
		}
		return m, nil
	case game.OutcomeCorrect:
		m.pushHistory(fmt.Sprintf("Correct: %q belongs to %s.", trait.Text, key))
	case game.OutcomeIncorrect:
		m.pushHistory(alert.Render(fmt.Sprintf("Wrong: %q does not belong to %s.", trait.Text, key)))
	}
	return m.handleEffects(result.Effects)
}

func (m boardModel) handleEffects(effects []game.Effect) (tea.Model, tea.Cmd) {
	now := m.now()
	var cmds []tea.Cmd
	fxState := m.fx
	for _, e := range effects {
		switch e.Kind {
		case game.EffectStarted:
			m.pushHistory(fmt.Sprintf("New board dealt (seed %d). Level %d.", m.engine.Seed(), e.Level))
		case game.EffectMatchRejected:
			fxState.flash = "WRONG"
			fxState.sched.After(now, flashDuration, boardTag, func() { fxState.flash = "" })
		case game.EffectOrganismCleared:
			key := e.Organism
			fxState.ghosts[key] = true
			fxState.sched.After(now, burstDuration, boardTag, func() { delete(fxState.ghosts, key) })
			m.pushHistory(burst.Render(fmt.Sprintf("%s cleared!", key)))
		case game.EffectLevelAdvanced:
			m.pushHistory(brightGreen.Render(fmt.Sprintf("Level %d.", e.Level)))
		case game.EffectHint:
			if t, ok := m.engine.State().Trait(e.Trait); ok {
				m.pushHistory(fmt.Sprintf("Hint: %q belongs to %s.", t.Text, e.Organism))
			}
		case game.EffectPaused:
			m.pushHistory("Paused.")
		case game.EffectResumed:
			m.pushHistory("Resumed.")
		case game.EffectGameOver:
			m.pushHistory(alert.Render("Game over."))
			cmds = append(cmds, m.finish())
		case game.EffectGameCompleted:
			m.pushHistory(brightGreen.Render("All organisms cleared. Well done!"))
			cmds = append(cmds, m.finish())
		}
	}
	if fxState.sched.Pending() > 0 && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tickCmd())
	}
	return m, tea.Batch(cmds...)
}

// finish returns the command that saves the finished game, once per deal.
func (m *boardModel) finish() tea.Cmd {
	if m.recorded || m.cfg.Scores == nil {
		return nil
	}
	m.recorded = true
	result := scores.ResultFromState(m.engine.State(), m.cfg.Player, m.engine.Seed(), m.now())
	return recordCmd(m.cfg.Scores, result)
}

// recordAbandoned saves a game left mid-play when the program exits.
func (m boardModel) recordAbandoned() {
	state := m.engine.State()
	if m.recorded || m.cfg.Scores == nil || state.Phase == game.PhaseIdle || state.Phase.Terminal() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	result := scores.ResultFromState(state, m.cfg.Player, m.engine.Seed(), m.now())
	if _, err := m.cfg.Scores.Record(ctx, result); err != nil {
		log.Printf("record abandoned game: %v", err)
	}
}

func (m *boardModel) pushHistory(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func recordCmd(store *scores.Store, result scores.Result) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := store.Record(ctx, result)
		if err != nil {
			return recordedMsg{err: err}
		}
		result.ID = id
		top, err := store.Top(ctx, topScoresLimit)
		return recordedMsg{result: result, top: top, err: err}
	}
}

func topScoresCmd(store *scores.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		top, err := store.Top(ctx, topScoresLimit)
		return topScoresMsg{top: top, err: err}
	}
}

// ParseContext describes the board to the command parser: displayed organism
// names in board order and the number of offered traits.
func ParseContext(state game.State, last string) parser.ParseContext {
	displayed := state.Displayed()
	names := make([]string, 0, len(displayed))
	for _, key := range displayed {
		names = append(names, string(key))
	}
	return parser.ParseContext{
		Organisms:    names,
		TraitCount:   len(state.Visible),
		LastOrganism: last,
	}
}

// ResolveMatch turns a parsed match command into the organism and trait it
// names on the current board.
func ResolveMatch(state game.State, intent parser.Intent) (game.OrganismKey, game.TraitInstance, error) {
	visible := state.VisibleTraits()
	if intent.Trait < 1 || intent.Trait > len(visible) {
		return "", game.TraitInstance{}, fmt.Errorf("no trait %d on the board", intent.Trait)
	}
	for _, key := range state.Displayed() {
		if parser.Normalise(string(key)) == intent.Organism {
			return key, visible[intent.Trait-1], nil
		}
	}
	return "", game.TraitInstance{}, fmt.Errorf("%q is not on the board", intent.Organism)
}

// ClarifyText renders a parser question with its suggested commands.
func ClarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if s := parser.IntentToCommandString(o); s != "" {
			opts = append(opts, s)
		}
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}

// HelpText lists the typed commands.
const HelpText = "match <trait#> <organism> (or just: 3 salm), hint, pause, reset, scores, board, quit"
