package spice

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrTooDeep is the cause of a Result rejected for exceeding Config.MaxDepth.
var ErrTooDeep = errors.New("expression too deep")

// Config controls EvalAll.
type Config struct {
	Workers  int         // trees evaluated at once; must be positive
	MaxDepth int         // trees deeper than this are rejected; 0 means no limit
	Logger   *zap.Logger // nil means no logging
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MaxDepth: 10000,
		Logger:   zap.NewNop(),
	}
}

// Result is the outcome of evaluating one tree.
// Exactly one of Value and Err is set.
type Result struct {
	Value Value
	Err   error
}

// EvalAll evaluates exprs concurrently and returns their results in the
// same order. A tree that is malformed, too deep, divides by zero or
// overflows gets an error Result; the others are unaffected.
// The returned error is non-nil only if cfg is invalid or ctx is done
// before every tree has been evaluated.
func EvalAll(ctx context.Context, cfg Config, exprs []Expr) ([]Result, error) {
	if cfg.Workers <= 0 {
		return nil, errors.Errorf("invalid worker count %d", cfg.Workers)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	results := make([]Result, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, e := range exprs {
		if gctx.Err() != nil {
			break
		}
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := evalOne(cfg, e)
			if r.Err != nil {
				log.Debug("evaluation failed", zap.Int("index", i), zap.Error(r.Err))
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "evaluation interrupted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "evaluation interrupted")
	}
	log.Debug("evaluated batch", zap.Int("trees", len(exprs)), zap.Int("workers", cfg.Workers))
	return results, nil
}

func evalOne(cfg Config, e Expr) Result {
	if err := Check(e); err != nil {
		return Result{Err: err}
	}
	if cfg.MaxDepth > 0 {
		if d := Depth(e); d > cfg.MaxDepth {
			return Result{Err: errors.Wrapf(ErrTooDeep, "depth %d, limit %d", d, cfg.MaxDepth)}
		}
	}
	v, err := TryEval(e)
	return Result{Value: v, Err: err}
}
