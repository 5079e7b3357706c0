package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/micromatch/internal/game"
)

const (
	colonyWidth = 16
	colonyRows  = 4
	rule        = "--------------------------------------------------------------------"
)

var (
	card      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1).Width(colonyWidth + 4)
	ghostCard = card.BorderForeground(lipgloss.Color("11"))
)

func (m boardModel) View() string {
	state := m.engine.State()
	var b strings.Builder

	title := brightGreen.Render("MICROMATCH")
	ver := dimGreen.Render(fmt.Sprintf("  v%s (%s) %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))
	b.WriteString(title + ver + "\n")
	b.WriteString(statusLine(state, m.fx.flash) + "\n")
	b.WriteString(border.Render(rule) + "\n")

	if m.showScores {
		b.WriteString(m.scoresView())
	} else if state.Phase != game.PhaseIdle {
		b.WriteString(m.boardView(state))
	}

	b.WriteString(border.Render(rule) + "\n")
	for _, line := range m.history {
		b.WriteString(green.Render(line) + "\n")
	}
	b.WriteString("\n" + brightGreen.Render("> ") + m.input + dimGreen.Render("_") + "\n")
	b.WriteString(dimGreen.Render("enter to submit, esc to clear, ctrl+c to quit") + "\n")
	return b.String()
}

func statusLine(state game.State, flash string) string {
	lives := strings.Repeat("♥ ", state.Lives) + strings.Repeat("· ", max(0, state.Config.StartingLives-state.Lives))
	line := fmt.Sprintf("Level %d   Score %d   Lives %s  Hints %d   [%s]", state.Level, state.Score, lives, state.Hints, state.Phase)
	out := green.Render(line)
	if flash != "" {
		out += "  " + alert.Render(flash)
	}
	return out
}

func (m boardModel) boardView(state game.State) string {
	var b strings.Builder

	cards := make([]string, 0, len(state.Displayed())+len(m.fx.ghosts))
	for i, key := range state.Displayed() {
		o, ok := state.Catalog.Organism(key)
		if !ok {
			continue
		}
		body := renderColonyANSI(o, colonyWidth, colonyRows)
		label := fmt.Sprintf("%c) %s\n%d/%d matched", 'a'+rune(i), o.Name, state.MatchedCount(key), state.TotalCount(key))
		cards = append(cards, card.Render(body+"\n"+brightGreen.Render(label)))
	}
	for _, o := range state.Catalog.Organisms() {
		if !m.fx.ghosts[o.Key()] {
			continue
		}
		cards = append(cards, ghostCard.Render(burst.Render("* BURST *")+"\n"+burst.Render(o.Name)))
	}
	if len(cards) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n")
	}

	if state.Phase == game.PhasePaused {
		b.WriteString(dimGreen.Render("(traits hidden while paused)") + "\n")
		return b.String()
	}
	for i, t := range state.VisibleTraits() {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			brightGreen.Render(fmt.Sprintf("%2d.", i+1)),
			green.Render(t.Text),
			dimGreen.Render("("+string(t.Category)+")")))
	}
	return b.String()
}

func (m boardModel) scoresView() string {
	if len(m.top) == 0 {
		return green.Render("No finished games yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(brightGreen.Render("Top scores") + "\n")
	for i, r := range m.top {
		b.WriteString(green.Render(fmt.Sprintf("%2d. %-12s %5d  level %d  %s  %s",
			i+1, r.Player, r.Score, r.Level, r.Outcome, r.FinishedAt.Local().Format("2006-01-02 15:04"))) + "\n")
	}
	b.WriteString(dimGreen.Render("type board or press esc to return") + "\n")
	return b.String()
}
