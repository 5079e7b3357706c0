package gui

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/micromatch/internal/fx"
	"github.com/appengine-ltd/micromatch/internal/game"
	"github.com/appengine-ltd/micromatch/internal/parser"
	"github.com/appengine-ltd/micromatch/internal/scores"
	legacyui "github.com/appengine-ltd/micromatch/internal/ui"
	uitheme "github.com/appengine-ltd/micromatch/internal/ui/theme"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Engine *game.Engine
	Scores *scores.Store
	Player string
	Mute   bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

const (
	burstDuration  = 650 * time.Millisecond
	flashDuration  = 450 * time.Millisecond
	maxMessages    = 120
	topScoresLimit = 8
	boardTag       = "board"
)

type flash struct {
	color rl.Color
	id    fx.TaskID
}

type burst struct {
	key    game.OrganismKey
	color  rl.Color
	center rl.Vector2
	start  time.Time
}

type recordResult struct {
	result scores.Result
	top    []scores.Result
	err    error
	query  bool
}

type headerButton struct {
	Rect  rl.Rectangle
	Label string
	Verb  string
}

type gameUI struct {
	cfg AppConfig

	engine   *game.Engine
	parser   *parser.Parser
	commands *commandQueue
	sched    *fx.Scheduler
	sounds   *cueBank
	now      func() time.Time

	width  int32
	height int32
	quit   bool

	layout    boardLayout
	boardKeys []game.OrganismKey
	drag      dragState

	input        string
	messages     []string
	lastOrganism string

	flashes map[game.OrganismKey]flash
	bursts  []burst

	showScores bool
	top        []scores.Result
	recorded   bool
	recordBusy bool
	recordCh   chan recordResult
}

func (a *App) Run() error {
	if a.cfg.Engine == nil {
		return fmt.Errorf("gui: no engine")
	}
	ui := newGameUI(a.cfg)
	return ui.Run()
}

func newGameUI(cfg AppConfig) *gameUI {
	if cfg.Player == "" {
		cfg.Player = "player"
	}
	ui := &gameUI{
		cfg:      cfg,
		engine:   cfg.Engine,
		parser:   parser.New(),
		commands: newCommandQueue(32),
		sched:    fx.NewScheduler(),
		now:      time.Now,
		width:    1280,
		height:   760,
		flashes:  map[game.OrganismKey]flash{},
		recordCh: make(chan recordResult, 4),
	}
	ui.engine.Subscribe(game.ObserverFunc(ui.onEffect))
	ui.appendMessage("Press Enter to deal a board. Drag each trait onto its organism.")
	ui.relayout()
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "micromatch")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	ui.sounds = loadCueBank(ui.cfg.Mute)
	log.Printf("window client started seed=%d", ui.engine.Seed())

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())
		ui.relayout()

		ui.handleInput()
		ui.commands.Drain(ui.apply)
		ui.sched.RunDue(ui.now())
		ui.pollRecordResult()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	ui.recordAbandoned()
	ui.sounds.Close()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

// relayout recomputes card positions from the current state and remembers
// which organism each card shows, so effects can find the card they refer to
// after the engine has already moved on.
func (ui *gameUI) relayout() {
	state := ui.engine.State()
	ui.boardKeys = state.Displayed()
	ui.layout = computeLayout(float32(ui.width), float32(ui.height), len(ui.boardKeys), len(state.Visible))
}

func (ui *gameUI) handleInput() {
	pollHotkeys(ui)

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		ui.press(mouse)
	}
	if ui.drag.Active {
		ui.drag.Move(mouse)
		if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			ui.drag.Cancel()
		} else if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
			ui.release(mouse)
		}
	}

	if ctrlDown() || altDown() {
		discardTypedChars()
	} else {
		captureTextInput(&ui.input, 96)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.input = ""
		ui.showScores = false
		ui.drag.Cancel()
	}
	if rl.IsKeyPressed(rl.KeyEnter) && strings.TrimSpace(ui.input) != "" {
		ui.submitInput()
	}
}

func (ui *gameUI) press(p rl.Vector2) {
	for _, b := range headerButtons(ui.layout, ui.engine.State().Phase) {
		if pointIn(b.Rect, p) {
			ui.commands.Hotkey(b.Verb)
			return
		}
	}
	state := ui.engine.State()
	if !state.Running() || ui.showScores {
		return
	}
	ui.drag.Begin(ui.layout, state.VisibleTraits(), p)
}

func (ui *gameUI) release(p rl.Vector2) {
	key, id, ok := ui.drag.Drop(ui.layout, ui.boardKeys, p)
	if !ok {
		return
	}
	t, _ := ui.engine.State().Trait(id)
	ui.propose(key, t)
}

func (ui *gameUI) submitInput() {
	line := ui.input
	ui.input = ""
	intent := ui.parser.Parse(legacyui.ParseContext(ui.engine.State(), ui.lastOrganism), line)
	if intent.Clarify != nil {
		ui.appendMessage(legacyui.ClarifyText(intent.Clarify))
		return
	}
	ui.commands.EnqueueIntent(intent)
}

func (ui *gameUI) apply(c queuedCommand) {
	intent := c.Intent
	switch intent.Verb {
	case "help":
		ui.appendMessage(legacyui.HelpText)
		ui.appendMessage("Ctrl+H hint, Ctrl+P pause, Ctrl+R reset, Ctrl+S scores, Ctrl+Q quit.")
	case "quit":
		ui.quit = true
	case "start", "reset":
		ui.clearBoardFX()
		if intent.Verb == "start" {
			ui.engine.Start()
		} else {
			ui.engine.Reset()
		}
	case "hint":
		if len(ui.engine.Hint()) == 0 {
			ui.appendMessage("No hint available right now.")
		}
	case "pause":
		if len(ui.engine.TogglePause()) == 0 {
			ui.appendMessage("Nothing to pause.")
		}
	case "board":
		ui.showScores = false
	case "scores":
		ui.queryScores()
	case "match":
		state := ui.engine.State()
		key, trait, err := legacyui.ResolveMatch(state, intent)
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		ui.lastOrganism = intent.Organism
		ui.propose(key, trait)
	default:
		ui.appendMessage(fmt.Sprintf("Nothing to do for %q.", intent.Raw))
	}
}

func (ui *gameUI) propose(key game.OrganismKey, trait game.TraitInstance) {
	result := ui.engine.ProposeMatch(key, trait.ID)
	if result.Outcome == game.OutcomeIgnored && ui.engine.State().Phase == game.PhasePaused {
		ui.appendMessage("Paused. Press Ctrl+P to resume.")
	}
}

// onEffect runs for every engine effect: sound, animation and log line.
func (ui *gameUI) onEffect(e game.Effect) {
	ui.sounds.Play(e.Cue)
	now := ui.now()
	switch e.Kind {
	case game.EffectStarted:
		ui.appendMessage(fmt.Sprintf("New board (seed %d).", ui.engine.Seed()))
	case game.EffectMatchAccepted:
		ui.flashOrganism(now, e.Organism, AppTheme.Success)
		if t, ok := ui.engine.State().Trait(e.Trait); ok {
			ui.appendMessage(fmt.Sprintf("Correct: %s / %s", e.Organism, t.Text))
		}
	case game.EffectMatchRejected:
		ui.flashOrganism(now, e.Organism, AppTheme.Danger)
		if t, ok := ui.engine.State().Trait(e.Trait); ok {
			ui.appendMessage(fmt.Sprintf("Wrong: %q is not %s", t.Text, e.Organism))
		}
	case game.EffectOrganismCleared:
		ui.startBurst(now, e.Organism)
		ui.appendMessage(fmt.Sprintf("%s cleared!", e.Organism))
	case game.EffectLevelAdvanced:
		ui.appendMessage(fmt.Sprintf("Level %d.", e.Level))
	case game.EffectHint:
		if t, ok := ui.engine.State().Trait(e.Trait); ok {
			ui.appendMessage(fmt.Sprintf("Hint: %q belongs to %s.", t.Text, e.Organism))
			ui.flashOrganism(now, e.Organism, AppTheme.Warning)
		}
	case game.EffectPaused:
		ui.drag.Cancel()
		ui.appendMessage("Paused.")
	case game.EffectResumed:
		ui.appendMessage("Resumed.")
	case game.EffectGameOver:
		ui.appendMessage("Game over. Ctrl+R to play again.")
		ui.finish()
	case game.EffectGameCompleted:
		ui.appendMessage("All organisms cleared!")
		ui.finish()
	}
}

func (ui *gameUI) flashOrganism(now time.Time, key game.OrganismKey, clr rl.Color) {
	if prev, ok := ui.flashes[key]; ok {
		ui.sched.Cancel(prev.id)
	}
	id := ui.sched.After(now, flashDuration, boardTag, func() { delete(ui.flashes, key) })
	ui.flashes[key] = flash{color: clr, id: id}
}

func (ui *gameUI) startBurst(now time.Time, key game.OrganismKey) {
	center := rl.NewVector2(float32(ui.width)/2, float32(ui.height)/3)
	for i, k := range ui.boardKeys {
		if k == key && i < len(ui.layout.Organisms) {
			r := ui.layout.Organisms[i]
			center = rl.NewVector2(r.X+r.Width/2, r.Y+r.Height/2)
		}
	}
	clr := AppTheme.Accent
	if o, ok := ui.engine.State().Catalog.Organism(key); ok {
		clr = uitheme.HexColor(o.Color)
	}
	ui.bursts = append(ui.bursts, burst{key: key, color: clr, center: center, start: now})
	ui.sched.After(now, burstDuration, boardTag, func() {
		for i, b := range ui.bursts {
			if b.key == key {
				ui.bursts = append(ui.bursts[:i], ui.bursts[i+1:]...)
				return
			}
		}
	})
}

func (ui *gameUI) clearBoardFX() {
	ui.sched.CancelTag(boardTag)
	clear(ui.flashes)
	ui.bursts = nil
	ui.drag.Cancel()
	ui.recorded = false
	ui.showScores = false
	ui.lastOrganism = ""
}

func (ui *gameUI) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	ui.messages = append(ui.messages, line)
	if len(ui.messages) > maxMessages {
		ui.messages = append([]string(nil), ui.messages[len(ui.messages)-maxMessages:]...)
	}
}

// finish saves the game once per deal, off the frame loop.
func (ui *gameUI) finish() {
	if ui.recorded || ui.cfg.Scores == nil {
		return
	}
	ui.recorded = true
	ui.recordBusy = true
	store := ui.cfg.Scores
	result := scores.ResultFromState(ui.engine.State(), ui.cfg.Player, ui.engine.Seed(), ui.now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := store.Record(ctx, result)
		if err != nil {
			ui.recordCh <- recordResult{err: err}
			return
		}
		result.ID = id
		top, err := store.Top(ctx, topScoresLimit)
		ui.recordCh <- recordResult{result: result, top: top, err: err}
	}()
}

func (ui *gameUI) queryScores() {
	if ui.cfg.Scores == nil {
		ui.appendMessage("Score history is disabled.")
		return
	}
	if ui.recordBusy {
		return
	}
	ui.recordBusy = true
	store := ui.cfg.Scores
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		top, err := store.Top(ctx, topScoresLimit)
		ui.recordCh <- recordResult{top: top, err: err, query: true}
	}()
}

func (ui *gameUI) pollRecordResult() {
	for {
		select {
		case res := <-ui.recordCh:
			ui.recordBusy = false
			if res.err != nil {
				ui.appendMessage("Score history failed: " + res.err.Error())
				continue
			}
			ui.top = res.top
			ui.showScores = true
			if !res.query {
				ui.appendMessage(fmt.Sprintf("Saved %d points for %s.", res.result.Score, res.result.Player))
			}
		default:
			return
		}
	}
}

func (ui *gameUI) recordAbandoned() {
	state := ui.engine.State()
	if ui.recorded || ui.cfg.Scores == nil || state.Phase == game.PhaseIdle || state.Phase.Terminal() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	result := scores.ResultFromState(state, ui.cfg.Player, ui.engine.Seed(), ui.now())
	if _, err := ui.cfg.Scores.Record(ctx, result); err != nil {
		log.Printf("record abandoned game: %v", err)
	}
}

func headerButtons(l boardLayout, phase game.Phase) []headerButton {
	labels := []struct{ label, verb string }{
		{"Start", "start"},
		{"Hint", "hint"},
		{"Pause", "pause"},
		{"Scores", "scores"},
	}
	if phase != game.PhaseIdle {
		labels[0] = struct{ label, verb string }{"Reset", "reset"}
	}
	if phase == game.PhasePaused {
		labels[2] = struct{ label, verb string }{"Resume", "pause"}
	}
	const w, h = float32(104), float32(40)
	out := make([]headerButton, 0, len(labels))
	x := l.Header.X + l.Header.Width - spaceM - float32(len(labels))*(w+spaceXS) + spaceXS
	y := l.Header.Y + (l.Header.Height-h)/2
	for i, lb := range labels {
		out = append(out, headerButton{
			Rect:  rl.NewRectangle(x+float32(i)*(w+spaceXS), y, w, h),
			Label: lb.label,
			Verb:  lb.verb,
		})
	}
	return out
}

func (ui *gameUI) draw() {
	state := ui.engine.State()
	ui.drawHeader(state)
	DrawPanel(ui.layout.Board, "", false)
	ui.drawOrganisms(state)
	ui.drawTraits(state)
	ui.drawBursts()
	ui.drawLog()
	ui.drawInput()
	ui.drawOverlay(state)
	if ui.drag.Active {
		if t, ok := state.Trait(ui.drag.Trait); ok {
			r := ui.drag.Rect()
			uitheme.DrawCard(r, categoryColor(t.Category), true)
			drawTraitText(r, ui.drag.Index+1, t)
		}
	}
}

func (ui *gameUI) drawHeader(state game.State) {
	l := ui.layout
	DrawPanel(l.Header, "", true)
	x := int32(l.Header.X + spaceM)
	y := int32(l.Header.Y + spaceS)
	drawText("MICROMATCH", x, y, typeScale.Title, AppTheme.Accent)
	stats := fmt.Sprintf("Level %d   Score %d   Hints %d", state.Level, state.Score, state.Hints)
	sx := x + measureText("MICROMATCH", typeScale.Title) + 28
	drawText(stats, sx, y+6, typeScale.Body, AppTheme.TextPrimary)

	lx := float32(sx + measureText(stats, typeScale.Body) + 28)
	for i := 0; i < state.Config.StartingLives; i++ {
		clr := AppTheme.Danger
		if i >= state.Lives {
			clr = rl.Fade(AppTheme.TextMuted, 0.4)
		}
		rl.DrawCircleV(rl.NewVector2(lx+float32(i)*22, float32(y)+16), 8, clr)
	}
	drawText(fmt.Sprintf("v%s", ui.cfg.Version), x, int32(l.Header.Y+l.Header.Height)-int32(typeScale.Small)-6, typeScale.Small, AppTheme.TextMuted)

	for _, b := range headerButtons(l, state.Phase) {
		st := buttonStateNormal
		if pointIn(b.Rect, rl.GetMousePosition()) {
			st = buttonStateFocused
		}
		if (b.Verb == "hint" || b.Verb == "pause") && state.Phase != game.PhaseRunning && state.Phase != game.PhasePaused {
			st = buttonStateDisabled
		}
		DrawButton(b.Rect, st, b.Label)
	}
}

func (ui *gameUI) drawOrganisms(state game.State) {
	mouse := rl.GetMousePosition()
	for i, key := range ui.boardKeys {
		if i >= len(ui.layout.Organisms) {
			break
		}
		o, ok := state.Catalog.Organism(key)
		if !ok {
			continue
		}
		r := ui.layout.Organisms[i]
		hover := ui.drag.Active && pointIn(r, mouse)
		uitheme.DrawCard(r, uitheme.HexColor(o.Color), hover)
		if f, ok := ui.flashes[key]; ok {
			rl.DrawRectangleRoundedLinesEx(r, uitheme.CardRadius, 8, 4, f.color)
		}

		tx := int32(r.X + spaceM)
		maxW := int32(r.Width - 2*spaceM)
		drawText(fmt.Sprintf("%c", 'A'+rune(i)), tx, int32(r.Y+spaceS), typeScale.Small, AppTheme.TextMuted)
		drawText(fitText(o.Name, typeScale.Header, maxW), tx, int32(r.Y+spaceS)+22, typeScale.Header, AppTheme.TextPrimary)
		meta := strings.TrimSpace(strings.ReplaceAll(o.Stain, "_", " ") + " " + o.Group)
		drawText(fitText(meta, typeScale.Small, maxW), tx, int32(r.Y+spaceS)+52, typeScale.Small, AppTheme.TextSecondary)
		DrawProgressBar("matched", state.MatchedCount(key), state.TotalCount(key), rl.NewRectangle(r.X+spaceM, r.Y+r.Height-44, r.Width-2*spaceM, 30))
	}
}

func (ui *gameUI) drawTraits(state game.State) {
	if state.Phase == game.PhasePaused {
		drawTextCentered("PAUSED", ui.layout.Board, int32(organismH+80), typeScale.Title, AppTheme.Warning)
		return
	}
	for i, t := range state.VisibleTraits() {
		if i >= len(ui.layout.Traits) {
			break
		}
		if ui.drag.Active && ui.drag.Trait == t.ID {
			rl.DrawRectangleRoundedLinesEx(ui.layout.Traits[i], uitheme.CardRadius, 8, 1, rl.Fade(AppTheme.Border, 0.8))
			continue
		}
		uitheme.DrawCard(ui.layout.Traits[i], categoryColor(t.Category), false)
		drawTraitText(ui.layout.Traits[i], i+1, t)
	}
}

func drawTraitText(r rl.Rectangle, n int, t game.TraitInstance) {
	x := int32(r.X + spaceM)
	maxW := int32(r.Width - 2*spaceM)
	drawText(fitText(fmt.Sprintf("%d. %s", n, t.Text), typeScale.Trait, maxW), x, int32(r.Y)+8, typeScale.Trait, AppTheme.TextPrimary)
	drawText(string(t.Category), x, int32(r.Y)+30, typeScale.Small-2, AppTheme.TextMuted)
}

func categoryColor(c game.Category) rl.Color {
	if c == game.CategoryMicroscopic {
		return AppTheme.Accent
	}
	return AppTheme.Agar
}

func (ui *gameUI) drawBursts() {
	now := ui.now()
	for _, b := range ui.bursts {
		t := float32(now.Sub(b.start)) / float32(burstDuration)
		t = float32(math.Min(math.Max(float64(t), 0), 1))
		for ring := 0; ring < 3; ring++ {
			radius := 20 + (110+float32(ring)*30)*t
			rl.DrawCircleLines(int32(b.center.X), int32(b.center.Y), radius, rl.Fade(b.color, 1-t))
		}
		for spark := 0; spark < 10; spark++ {
			a := float64(spark) * 2 * math.Pi / 10
			d := 30 + 90*t
			p := rl.NewVector2(b.center.X+float32(math.Cos(a))*d, b.center.Y+float32(math.Sin(a))*d)
			rl.DrawCircleV(p, 5*(1-t)+1, rl.Fade(b.color, 1-t))
		}
	}
}

func (ui *gameUI) drawLog() {
	r := ui.layout.Log
	if r.Width <= 0 {
		return
	}
	DrawPanel(r, "Lab notes", false)
	uitheme.DrawDivider(r.X+spaceM, r.Y+44, r.X+r.Width-spaceM, r.Y+44)
	size := typeScale.Small
	lineH := textLineHeight(size)
	maxW := int32(r.Width - 2*spaceM)
	var lines []string
	for _, m := range ui.messages {
		lines = append(lines, wrapText(m, size, maxW)...)
	}
	capacity := int(max((r.Height-56)/float32(lineH), 0))
	if len(lines) > capacity {
		lines = lines[len(lines)-capacity:]
	}
	for i, line := range lines {
		drawLogText(line, int32(r.X+spaceM), int32(r.Y)+48+int32(i)*lineH, size, AppTheme.TextSecondary)
	}
}

func (ui *gameUI) drawInput() {
	r := ui.layout.Input
	DrawPanel(r, "", ui.input != "")
	y := int32(r.Y + (r.Height-float32(typeScale.Body))/2)
	x := int32(r.X + spaceM)
	if ui.input == "" {
		drawText("type a command: 3 salm, hint, pause, reset (F1 help)", x, y, typeScale.Body, AppTheme.TextMuted)
		return
	}
	drawText("> "+ui.input, x, y, typeScale.Body, AppTheme.TextPrimary)
	if (time.Now().UnixMilli()/500)%2 == 0 {
		cx := x + measureText("> "+ui.input, typeScale.Body) + 2
		rl.DrawRectangle(cx, y, 2, typeScale.Body, AppTheme.Accent)
	}
}

func (ui *gameUI) drawOverlay(state game.State) {
	if ui.showScores {
		ui.drawScores()
		return
	}
	var title, sub string
	switch state.Phase {
	case game.PhaseIdle:
		title, sub = "Ready", "Press Enter or click Start"
	case game.PhaseGameOver:
		title, sub = "Game over", fmt.Sprintf("Score %d at level %d. Ctrl+R to play again.", state.Score, state.Level)
	case game.PhaseCompleted:
		title, sub = "Plate cleared", fmt.Sprintf("Final score %d. Ctrl+R to play again.", state.Score)
	default:
		return
	}
	b := ui.layout.Board
	box := rl.NewRectangle(b.X+b.Width/2-240, b.Y+b.Height/2-70, 480, 140)
	rl.DrawRectangleRec(b, rl.Fade(AppTheme.Background, 0.55))
	DrawPanel(box, "", true)
	drawTextCentered(title, box, 28, typeScale.Title, AppTheme.Accent)
	drawTextCentered(sub, box, 84, typeScale.Body, AppTheme.TextSecondary)
}

func (ui *gameUI) drawScores() {
	b := ui.layout.Board
	box := rl.NewRectangle(b.X+b.Width/2-300, b.Y+24, 600, float32(96+44*max(len(ui.top), 1)))
	DrawPanel(box, "Top scores", true)
	if len(ui.top) == 0 {
		drawText("No finished games yet.", int32(box.X+spaceM), int32(box.Y)+60, typeScale.Body, AppTheme.TextSecondary)
		return
	}
	for i, r := range ui.top {
		row := rl.NewRectangle(box.X+spaceS, box.Y+56+float32(i)*44, box.Width-2*spaceS, 40)
		left := fmt.Sprintf("%d. %s", i+1, r.Player)
		right := fmt.Sprintf("%d pts  L%d  %s", r.Score, r.Level, r.Outcome)
		DrawScoreRow(row, i == 0, left, right)
	}
	uitheme.DrawHintText("Esc to close", int32(box.X+spaceM), int32(box.Y+box.Height)-24)
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := measureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	drawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

// discardTypedChars empties raylib's character queue so chord letters do not
// land in the command line.
func discardTypedChars() {
	for rl.GetCharPressed() > 0 {
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
