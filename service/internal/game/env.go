// Package game runs single Spider Solitaire episodes on top of the engine,
// in the shape reinforcement-learning environments expect.
package game

import (
	"errors"
	"fmt"
	"slices"

	engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"
	"github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine/agent"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultMaxEpisodeSteps is used when Options.MaxEpisodeSteps is zero.
const DefaultMaxEpisodeSteps = 700

var (
	ErrNotReset    = errors.New("episode not started: call Reset first")
	ErrEpisodeDone = errors.New("episode finished: call Reset to start another")
)

// Options configures an Env.
type Options struct {
	Rules           engine.Rules
	MaxEpisodeSteps int
	HideObs         bool
	Log             logrus.FieldLogger // nil sends engine events to engine.NopSink
}

// StepResult is what Step reports back to the caller.
type StepResult struct {
	Observation engine.Observation
	Reward      int  // absolute score after the step
	Legal       bool // false when the action was not in the legal set
	Terminated  bool // won, stuck, or an illegal action was played
	Truncated   bool // step cap reached
}

// Done reports whether the episode is over for any reason.
func (r StepResult) Done() bool { return r.Terminated || r.Truncated }

// Env owns one episode at a time. It is not safe for concurrent use; run
// one Env per goroutine.
type Env struct {
	ID   uuid.UUID
	opts Options

	model   engine.Model
	obs     engine.Observation
	steps   int
	started bool
	done    bool
}

// NewEnv returns an Env that has not been dealt yet.
func NewEnv(opts Options) (*Env, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxEpisodeSteps == 0 {
		opts.MaxEpisodeSteps = DefaultMaxEpisodeSteps
	}
	if opts.MaxEpisodeSteps < 0 {
		return nil, fmt.Errorf("max episode steps must be positive, got %d", opts.MaxEpisodeSteps)
	}
	return &Env{opts: opts}, nil
}

// Reset deals a new game from seed and starts a new episode with a fresh ID.
func (e *Env) Reset(seed uint64) (engine.Observation, error) {
	obs, err := engine.Deal(seed, e.opts.Rules)
	if err != nil {
		return engine.Observation{}, err
	}
	e.ID = uuid.New()
	e.obs = obs
	e.steps = 0
	e.started = true
	e.done = false
	e.model = engine.NewModel(engine.NopSink{})
	if e.opts.Log != nil {
		e.model = engine.NewModel(NewLogSink(e.opts.Log.WithField("episode", e.ID.String())))
	}
	return e.view(obs), nil
}

// Step plays action. An action outside the legal set ends the episode with
// the current score as reward and leaves the observation unchanged.
func (e *Env) Step(action uint16) (StepResult, error) {
	if !e.started {
		return StepResult{}, ErrNotReset
	}
	if e.done {
		return StepResult{}, ErrEpisodeDone
	}

	legal, err := e.model.Actions(e.obs)
	if err != nil {
		return StepResult{}, err
	}
	e.steps++

	var res StepResult
	if !slices.Contains(legal, action) {
		res = StepResult{
			Reward:     e.model.StepCost(e.obs, action, e.obs),
			Terminated: true,
		}
	} else {
		next, err := e.model.Result(e.obs, action)
		if err != nil {
			return StepResult{}, err
		}
		res = StepResult{
			Reward:     e.model.StepCost(e.obs, action, next),
			Legal:      true,
			Terminated: next.IsTerminal(),
		}
		e.obs = next
	}
	res.Truncated = !res.Terminated && e.steps >= e.opts.MaxEpisodeSteps
	res.Observation = e.view(e.obs)
	e.done = res.Done()
	return res, nil
}

// Actions returns the legal actions of the current observation.
func (e *Env) Actions() ([]uint16, error) {
	if !e.started {
		return nil, ErrNotReset
	}
	return e.model.Actions(e.obs)
}

// State returns the full, unhidden observation.
func (e *Env) State() engine.Observation { return e.obs }

// Steps returns the number of steps taken this episode.
func (e *Env) Steps() int { return e.steps }

func (e *Env) view(obs engine.Observation) engine.Observation {
	if e.opts.HideObs {
		return agent.Hide(obs)
	}
	return obs
}
