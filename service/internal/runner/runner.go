package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/service/internal/config"
	"github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/service/internal/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EpisodeResult describes one finished episode.
type EpisodeResult struct {
	ID             uuid.UUID
	Seed           uint64
	Reward         int // reward of the final step
	NumMoves       int
	CompletedSuits int
	Steps          int
	Won            bool
	Truncated      bool
}

// Summary aggregates a batch of episodes.
type Summary struct {
	Episodes          int
	Wins              int
	AvgReward         float64
	AvgMoves          float64
	AvgCompletedSuits float64
	Results           []EpisodeResult // indexed by episode number
}

// RunEpisode resets env with seed and lets policy play until the episode
// ends. Cancelling ctx stops the episode between steps.
func RunEpisode(ctx context.Context, env *game.Env, policy Policy, seed uint64) (EpisodeResult, error) {
	obs, err := env.Reset(seed)
	if err != nil {
		return EpisodeResult{}, err
	}
	policy.Reset()

	res := EpisodeResult{ID: env.ID, Seed: seed}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		action, err := policy.Act(obs)
		if err != nil {
			return res, fmt.Errorf("episode %s step %d: %w", env.ID, env.Steps(), err)
		}
		step, err := env.Step(action)
		if err != nil {
			return res, fmt.Errorf("episode %s step %d: %w", env.ID, env.Steps(), err)
		}
		obs = step.Observation
		res.Reward = step.Reward
		if step.Done() {
			res.Truncated = step.Truncated
			break
		}
	}

	final := env.State()
	res.NumMoves = int(final.NumMoves)
	res.CompletedSuits = final.CompletedCount()
	res.Steps = env.Steps()
	res.Won = final.Won()
	return res, nil
}

// RunMany plays cfg.Episodes episodes with at most cfg.Workers running in
// parallel. Episode i is dealt with cfg.BaseSeed+i, so a batch replays
// exactly for the same config. Each worker owns its Env and Policy.
func RunMany(ctx context.Context, cfg config.Config, log logrus.FieldLogger, newPolicy func(worker int) Policy) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	results := make([]EpisodeResult, cfg.Episodes)
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < cfg.Episodes; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var mu sync.Mutex
	done := 0
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			env, err := game.NewEnv(cfg.EnvOptions(log))
			if err != nil {
				return err
			}
			policy := newPolicy(w)
			for i := range jobs {
				seed := cfg.BaseSeed + uint64(i)
				res, err := RunEpisode(ctx, env, policy, seed)
				if err != nil {
					return err
				}
				results[i] = res

				mu.Lock()
				done++
				n := done
				mu.Unlock()
				log.WithFields(logrus.Fields{
					"episode": res.ID.String(),
					"seed":    seed,
					"reward":  res.Reward,
					"moves":   res.NumMoves,
					"suits":   res.CompletedSuits,
					"won":     res.Won,
				}).Infof("episode %d/%d finished", n, cfg.Episodes)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

// Summarize averages results.
func Summarize(results []EpisodeResult) Summary {
	s := Summary{Episodes: len(results), Results: results}
	if len(results) == 0 {
		return s
	}
	for _, r := range results {
		if r.Won {
			s.Wins++
		}
		s.AvgReward += float64(r.Reward)
		s.AvgMoves += float64(r.NumMoves)
		s.AvgCompletedSuits += float64(r.CompletedSuits)
	}
	n := float64(len(results))
	s.AvgReward /= n
	s.AvgMoves /= n
	s.AvgCompletedSuits /= n
	return s
}
