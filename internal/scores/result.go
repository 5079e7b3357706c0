package scores

import (
	"time"

	"github.com/appengine-ltd/micromatch/internal/game"
)

// OutcomeOf maps an engine phase to the recorded outcome. Games that never
// reached a terminal phase count as abandoned.
func OutcomeOf(phase game.Phase) Outcome {
	switch phase {
	case game.PhaseCompleted:
		return OutcomeCompleted
	case game.PhaseGameOver:
		return OutcomeGameOver
	default:
		return OutcomeAbandoned
	}
}

func ResultFromState(state game.State, player string, seed int64, finishedAt time.Time) Result {
	return Result{
		Player:     player,
		Score:      state.Score,
		Level:      state.Level,
		LivesLeft:  state.Lives,
		Matches:    len(state.Matched),
		Hints:      state.Hints,
		Outcome:    OutcomeOf(state.Phase),
		Seed:       seed,
		FinishedAt: finishedAt,
	}
}
