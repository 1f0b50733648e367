package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vearutop/interpolation"
	"github.com/vearutop/interpolation/internal/policy"
	"github.com/vearutop/interpolation/internal/resample"
	"golang.org/x/sync/errgroup"
)

// Result reports what a finished job did.
type Result struct {
	Spec Spec
	Mode interpolation.Mode
}

// Run executes all jobs of c, at most c.Concurrency at a time.
// The first failure cancels jobs that have not started yet.
func Run(ctx context.Context, c *Config, logger *slog.Logger) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	sel, err := c.selector()
	if err != nil {
		return nil, err
	}

	// Random draws are taken in job order so that a seed reproduces the batch.
	drawn := make([]*interpolation.Mode, len(c.Jobs))
	if c.Random != nil {
		for i, spec := range c.Jobs {
			if spec.Mode == nil {
				m := sel.Select(policy.Env{})
				drawn[i] = &m
			}
		}
	}

	results := make([]Result, len(c.Jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i, spec := range c.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := runOne(spec, drawn[i], c.Backend, c.Quality, sel)
			if err != nil {
				logger.Error("resize failed", "in", spec.In, "error", err)
				return fmt.Errorf("job %d: %w", i, err)
			}
			logger.Info("resized", "in", spec.In, "out", spec.Out,
				"width", spec.Width, "height", spec.Height, "mode", m.String(), "backend", string(c.Backend))
			results[i] = Result{Spec: spec, Mode: m}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Config) selector() (policy.Selector, error) {
	if c.Random != nil {
		return policy.NewRandom(c.Random.Modes, c.Random.Seed)
	}
	return policy.New(c.Rules, c.Fallback)
}

func runOne(spec Spec, drawn *interpolation.Mode, b resample.Backend, quality int, sel policy.Selector) (interpolation.Mode, error) {
	img, err := resample.Load(spec.In)
	if err != nil {
		return 0, err
	}

	var m interpolation.Mode
	switch {
	case spec.Mode != nil:
		m = *spec.Mode
	case drawn != nil:
		m = *drawn
	default:
		sz := img.Bounds().Size()
		m = sel.Select(policy.Env{SrcWidth: sz.X, SrcHeight: sz.Y, DstWidth: spec.Width, DstHeight: spec.Height})
	}

	out, err := resample.Resize(img, spec.Width, spec.Height, m, b)
	if err != nil {
		return 0, err
	}
	if err := resample.Save(out, spec.Out, quality); err != nil {
		return 0, err
	}
	return m, nil
}
