// Package policy chooses an interpolation mode for a resize.
package policy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/vearutop/interpolation"
)

// ErrNoModes is returned when a random policy is given nothing to choose from.
var ErrNoModes = errors.New("no modes to choose from")

// Selector chooses a mode for a single resize.
type Selector interface {
	Select(env Env) interpolation.Mode
}

// Rule selects Mode when Condition evaluates to true.
type Rule struct {
	Condition string             `yaml:"when"`
	Mode      interpolation.Mode `yaml:"mode"`
}

// Env describes a single resize for rule evaluation.
type Env struct {
	SrcWidth  int
	SrcHeight int
	DstWidth  int
	DstHeight int
}

// Scale returns the smaller of the two axis scale factors, dst/src.
func (e Env) Scale() float64 {
	if e.SrcWidth <= 0 || e.SrcHeight <= 0 {
		return 0
	}
	return math.Min(float64(e.DstWidth)/float64(e.SrcWidth), float64(e.DstHeight)/float64(e.SrcHeight))
}

func (e Env) vars() map[string]any {
	s := e.Scale()
	return map[string]any{
		"src_width":  e.SrcWidth,
		"src_height": e.SrcHeight,
		"dst_width":  e.DstWidth,
		"dst_height": e.DstHeight,
		"scale":      s,
		"downscale":  s < 1,
	}
}

type compiledRule struct {
	program *vm.Program
	mode    interpolation.Mode
}

// Policy evaluates rules in order and falls back to a default mode.
type Policy struct {
	rules    []compiledRule
	fallback interpolation.Mode
}

// New compiles rules. A rule that does not compile to a boolean expression is an error.
func New(rules []Rule, fallback interpolation.Mode) (*Policy, error) {
	if !fallback.Valid() {
		return nil, fmt.Errorf("fallback: %w: %d", interpolation.ErrInvalidMode, int(fallback))
	}

	p := &Policy{fallback: fallback}
	sample := Env{}.vars()
	for i, r := range rules {
		if !r.Mode.Valid() {
			return nil, fmt.Errorf("rule %d: %w: %d", i, interpolation.ErrInvalidMode, int(r.Mode))
		}
		program, err := expr.Compile(r.Condition, expr.Env(sample), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("rule %d: compile %q: %w", i, r.Condition, err)
		}
		p.rules = append(p.rules, compiledRule{program: program, mode: r.Mode})
	}
	return p, nil
}

// Select returns the mode of the first matching rule, or the fallback.
// Rules that fail at runtime are skipped.
func (p *Policy) Select(env Env) interpolation.Mode {
	vars := env.vars()
	for _, r := range p.rules {
		out, err := expr.Run(r.program, vars)
		if err != nil {
			continue
		}
		if b, ok := out.(bool); ok && b {
			return r.mode
		}
	}
	return p.fallback
}

// Random picks modes uniformly at random, for augmentation pipelines.
type Random struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	modes []interpolation.Mode
}

// NewRandom creates a seeded random policy over modes.
func NewRandom(modes []interpolation.Mode, seed int64) (*Random, error) {
	if len(modes) == 0 {
		return nil, ErrNoModes
	}
	for _, m := range modes {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %d", interpolation.ErrInvalidMode, int(m))
		}
	}
	return &Random{
		rnd:   rand.New(rand.NewSource(seed)),
		modes: append([]interpolation.Mode(nil), modes...),
	}, nil
}

// Select returns a random mode; env is ignored.
func (r *Random) Select(Env) interpolation.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modes[r.rnd.Intn(len(r.modes))]
}
