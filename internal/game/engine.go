package game

import (
	"math/rand/v2"
)

// Observer receives every effect an Engine transition produces, in order.
type Observer interface {
	Notify(Effect)
}

type ObserverFunc func(Effect)

func (f ObserverFunc) Notify(e Effect) {
	f(e)
}

// Engine holds the current State for a UI loop. It is not safe for concurrent
// use: all calls are expected from the one goroutine that handles input.
type Engine struct {
	state     State
	seed      int64
	rng       *rand.Rand
	observers []Observer
}

func NewEngine(cfg Config, catalog Catalog) (*Engine, error) {
	cfg.Seed = resolveSeed(cfg.Seed)
	state, err := NewState(cfg, catalog)
	if err != nil {
		return nil, err
	}
	return &Engine{
		state: state,
		seed:  cfg.Seed,
		rng:   seededRNG(cfg.Seed),
	}, nil
}

func (e *Engine) Subscribe(o Observer) {
	if o == nil {
		return
	}
	e.observers = append(e.observers, o)
}

// State returns a snapshot that callers may keep or modify freely.
func (e *Engine) State() State {
	return e.state.clone()
}

func (e *Engine) Seed() int64 {
	return e.seed
}

func (e *Engine) Start() []Effect {
	next, effects := e.state.Start(e.rng)
	return e.apply(next, effects)
}

func (e *Engine) Reset() []Effect {
	next, effects := e.state.Reset(e.rng)
	return e.apply(next, effects)
}

func (e *Engine) ProposeMatch(key OrganismKey, id TraitID) MatchResult {
	next, result := e.state.ProposeMatch(key, id)
	e.apply(next, result.Effects)
	return result
}

func (e *Engine) Hint() []Effect {
	next, effects := e.state.Hint(e.rng)
	return e.apply(next, effects)
}

func (e *Engine) TogglePause() []Effect {
	next, effects := e.state.TogglePause()
	return e.apply(next, effects)
}

func (e *Engine) apply(next State, effects []Effect) []Effect {
	e.state = next
	for _, effect := range effects {
		for _, o := range e.observers {
			o.Notify(effect)
		}
	}
	return effects
}
