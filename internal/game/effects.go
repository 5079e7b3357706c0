package game

// EffectKind names a side effect the UI layer should carry out after a
// transition. Effects never feed back into game state.
type EffectKind int

const (
	EffectRender EffectKind = iota
	EffectStarted
	EffectMatchAccepted
	EffectMatchRejected
	EffectOrganismCleared
	EffectLevelAdvanced
	EffectGameOver
	EffectGameCompleted
	EffectHint
	EffectPaused
	EffectResumed
)

func (k EffectKind) String() string {
	switch k {
	case EffectRender:
		return "render"
	case EffectStarted:
		return "started"
	case EffectMatchAccepted:
		return "match_accepted"
	case EffectMatchRejected:
		return "match_rejected"
	case EffectOrganismCleared:
		return "organism_cleared"
	case EffectLevelAdvanced:
		return "level_advanced"
	case EffectGameOver:
		return "game_over"
	case EffectGameCompleted:
		return "game_completed"
	case EffectHint:
		return "hint"
	case EffectPaused:
		return "paused"
	case EffectResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

type SoundCue int

const (
	CueNone SoundCue = iota
	CueCorrect
	CueWrong
	CueExplosion
	CueLevelUp
	CueGameOver
	CueVictory
	CueHint
)

type Effect struct {
	Kind     EffectKind
	Organism OrganismKey
	Trait    TraitID
	Level    int
	Cue      SoundCue
}

func renderEffect() Effect {
	return Effect{Kind: EffectRender}
}

func HasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
