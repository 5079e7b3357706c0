package game

import (
	"math/rand/v2"
)

type MatchOutcome int

const (
	// OutcomeIgnored means the proposal was not admissible and nothing changed.
	OutcomeIgnored MatchOutcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

type MatchResult struct {
	Outcome MatchOutcome
	Effects []Effect
}

// Start deals a fresh game: pools rebuilt from the catalog, trait population
// shuffled, counters reset. It is valid from any phase.
func (s State) Start(rng *rand.Rand) (State, []Effect) {
	next := s.clone()
	next.Traits = s.Catalog.population()
	Shuffle(rng, next.Traits)
	next.Pool = next.Pool[:0]
	for _, o := range s.Catalog.organisms {
		next.Pool = append(next.Pool, o.Key())
	}
	next.Matched = nil
	next.Visible = nil
	next.Score = 0
	next.Lives = s.Config.StartingLives
	next.Level = 1
	next.Hints = 0
	next.Phase = PhaseRunning
	next.fillVisible()
	return next, []Effect{{Kind: EffectStarted, Level: 1}, renderEffect()}
}

// Reset is Start under another name; the UI distinguishes them only for
// wording.
func (s State) Reset(rng *rand.Rand) (State, []Effect) {
	return s.Start(rng)
}

func (s State) ProposeMatch(key OrganismKey, id TraitID) (State, MatchResult) {
	ignored := MatchResult{Outcome: OutcomeIgnored}
	if s.Phase != PhaseRunning {
		return s, ignored
	}
	i := s.traitIndex(id)
	if i < 0 || s.Traits[i].Matched || !s.IsVisible(id) {
		return s, ignored
	}
	if !s.IsDisplayed(key) {
		return s, ignored
	}
	trait := s.Traits[i]
	if s.HasPair(key, trait.Text) {
		return s, ignored
	}

	next := s.clone()
	organism, _ := s.Catalog.Organism(key)
	if trait.Organism != key || !organism.HasTrait(trait.Category, trait.Text) {
		next.Lives--
		effects := []Effect{{Kind: EffectMatchRejected, Organism: key, Trait: id, Cue: CueWrong}}
		if next.Lives <= 0 {
			next.Lives = 0
			next.Phase = PhaseGameOver
			effects = append(effects, Effect{Kind: EffectGameOver, Level: next.Level, Cue: CueGameOver})
		}
		return next, MatchResult{Outcome: OutcomeIncorrect, Effects: append(effects, renderEffect())}
	}

	next.Score += s.Config.PointsPerMatch
	next.Traits[i].Matched = true
	next.Matched = append(next.Matched, MatchedPair{Organism: key, Text: trait.Text, Category: trait.Category})
	next.removeVisible(id)
	effects := []Effect{{Kind: EffectMatchAccepted, Organism: key, Trait: id, Cue: CueCorrect}}
	effects = append(effects, next.checkOrganismComplete(key)...)
	effects = append(effects, next.checkLevelComplete()...)
	return next, MatchResult{Outcome: OutcomeCorrect, Effects: append(effects, renderEffect())}
}

func (s State) CheckOrganismComplete(key OrganismKey) (State, []Effect) {
	next := s.clone()
	effects := next.checkOrganismComplete(key)
	if len(effects) == 0 {
		return s, nil
	}
	return next, effects
}

func (s State) CheckLevelComplete() (State, []Effect) {
	next := s.clone()
	effects := next.checkLevelComplete()
	if len(effects) == 0 {
		return s, nil
	}
	return next, effects
}

func (s *State) checkOrganismComplete(key OrganismKey) []Effect {
	if !s.InPool(key) {
		return nil
	}
	total := s.TotalCount(key)
	if total == 0 || s.MatchedCount(key) < total {
		return nil
	}
	s.removeFromPool(key)
	return []Effect{{Kind: EffectOrganismCleared, Organism: key, Cue: CueExplosion}}
}

func (s *State) checkLevelComplete() []Effect {
	if s.Phase != PhaseRunning || len(s.Visible) > 0 {
		return nil
	}
	if len(s.Pool) == 0 || s.RemainingTraits() == 0 {
		s.Phase = PhaseCompleted
		return []Effect{{Kind: EffectGameCompleted, Level: s.Level, Cue: CueVictory}}
	}
	s.Level++
	s.fillVisible()
	if len(s.Visible) == 0 {
		// Remaining traits belong to no displayed organism; nothing is playable.
		s.Phase = PhaseCompleted
		return []Effect{{Kind: EffectGameCompleted, Level: s.Level, Cue: CueVictory}}
	}
	return []Effect{{Kind: EffectLevelAdvanced, Level: s.Level, Cue: CueLevelUp}}
}

// Hint points at the owner of a uniformly chosen visible trait.
func (s State) Hint(rng *rand.Rand) (State, []Effect) {
	if s.Phase != PhaseRunning || len(s.Visible) == 0 {
		return s, nil
	}
	id := s.Visible[rng.IntN(len(s.Visible))]
	t, _ := s.Trait(id)
	next := s.clone()
	next.Hints++
	return next, []Effect{{Kind: EffectHint, Organism: t.Organism, Trait: id, Cue: CueHint}}
}

func (s State) TogglePause() (State, []Effect) {
	next := s
	switch s.Phase {
	case PhaseRunning:
		next.Phase = PhasePaused
		return next, []Effect{{Kind: EffectPaused}, renderEffect()}
	case PhasePaused:
		next.Phase = PhaseRunning
		return next, []Effect{{Kind: EffectResumed}, renderEffect()}
	default:
		return s, nil
	}
}
