package game

import (
	"fmt"
	"slices"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Terminal reports whether only Start or Reset can leave the phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseCompleted
}

type TraitID int

type TraitInstance struct {
	ID       TraitID     `json:"id"`
	Organism OrganismKey `json:"organism"`
	Text     string      `json:"text"`
	Category Category    `json:"category"`
	Matched  bool        `json:"matched"`
}

type MatchedPair struct {
	Organism OrganismKey `json:"organism"`
	Text     string      `json:"text"`
	Category Category    `json:"category"`
}

// State is a full game snapshot. Transition methods take a State by value and
// return a new one; the receiver is never modified.
type State struct {
	Config  Config  `json:"-"`
	Catalog Catalog `json:"-"`

	Phase Phase `json:"phase"`
	Score int   `json:"score"`
	Lives int   `json:"lives"`
	Level int   `json:"level"`
	Hints int   `json:"hints"`

	Traits  []TraitInstance `json:"traits"`
	Pool    []OrganismKey   `json:"pool"`
	Visible []TraitID       `json:"visible"`
	Matched []MatchedPair   `json:"matched"`
}

func NewState(cfg Config, catalog Catalog) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}
	if catalog.Len() == 0 {
		return State{}, fmt.Errorf("catalog has no organisms")
	}
	return State{
		Config:  cfg,
		Catalog: catalog,
		Phase:   PhaseIdle,
		Lives:   cfg.StartingLives,
		Level:   1,
	}, nil
}

func (s State) clone() State {
	next := s
	next.Traits = slices.Clone(s.Traits)
	next.Pool = slices.Clone(s.Pool)
	next.Visible = slices.Clone(s.Visible)
	next.Matched = slices.Clone(s.Matched)
	return next
}

func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

func (s State) Trait(id TraitID) (TraitInstance, bool) {
	i := s.traitIndex(id)
	if i < 0 {
		return TraitInstance{}, false
	}
	return s.Traits[i], true
}

func (s State) traitIndex(id TraitID) int {
	// IDs are assigned 1..n before shuffling, so a linear scan is the only
	// lookup; populations are small.
	for i := range s.Traits {
		if s.Traits[i].ID == id {
			return i
		}
	}
	return -1
}

// Displayed returns the organisms currently on the board: the head of the pool.
func (s State) Displayed() []OrganismKey {
	n := min(len(s.Pool), s.Config.MaxVisibleOrganisms)
	return slices.Clone(s.Pool[:n])
}

func (s State) IsDisplayed(key OrganismKey) bool {
	return slices.Contains(s.Displayed(), key)
}

func (s State) InPool(key OrganismKey) bool {
	return slices.Contains(s.Pool, key)
}

func (s State) IsVisible(id TraitID) bool {
	return slices.Contains(s.Visible, id)
}

// VisibleTraits returns the offered trait instances in board order.
func (s State) VisibleTraits() []TraitInstance {
	out := make([]TraitInstance, 0, len(s.Visible))
	for _, id := range s.Visible {
		if t, ok := s.Trait(id); ok {
			out = append(out, t)
		}
	}
	return out
}

func (s State) HasPair(key OrganismKey, text string) bool {
	for _, p := range s.Matched {
		if p.Organism == key && p.Text == text {
			return true
		}
	}
	return false
}

func (s State) MatchedCount(key OrganismKey) int {
	n := 0
	for _, p := range s.Matched {
		if p.Organism == key {
			n++
		}
	}
	return n
}

func (s State) TotalCount(key OrganismKey) int {
	o, ok := s.Catalog.Organism(key)
	if !ok {
		return 0
	}
	return o.TraitCount()
}

func (s State) RemainingTraits() int {
	n := 0
	for _, t := range s.Traits {
		if !t.Matched {
			n++
		}
	}
	return n
}

// fillVisible offers up to the level's trait count from the unmatched traits
// of displayed organisms, in shuffled population order.
func (s *State) fillVisible() {
	want := s.Config.VisibleTraitCount(s.Level)
	displayed := s.Displayed()
	s.Visible = s.Visible[:0]
	for _, t := range s.Traits {
		if len(s.Visible) >= want {
			break
		}
		if t.Matched || !slices.Contains(displayed, t.Organism) {
			continue
		}
		s.Visible = append(s.Visible, t.ID)
	}
}

func (s *State) removeVisible(id TraitID) {
	s.Visible = slices.DeleteFunc(s.Visible, func(v TraitID) bool { return v == id })
}

func (s *State) removeFromPool(key OrganismKey) {
	s.Pool = slices.DeleteFunc(s.Pool, func(k OrganismKey) bool { return k == key })
}
