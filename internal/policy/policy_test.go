package policy

import (
	"errors"
	"sync"
	"testing"

	"github.com/vearutop/interpolation"
	"gopkg.in/yaml.v3"
)

func TestPolicySelect(t *testing.T) {
	p, err := New([]Rule{
		{Condition: "src_width < 64 && src_height < 64", Mode: interpolation.Nearest},
		{Condition: "downscale && scale < 0.25", Mode: interpolation.Gaussian},
		{Condition: "downscale", Mode: interpolation.Lanczos},
	}, interpolation.BSpline)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	cases := []struct {
		name string
		env  Env
		want interpolation.Mode
	}{
		{"tiny source", Env{SrcWidth: 32, SrcHeight: 32, DstWidth: 256, DstHeight: 256}, interpolation.Nearest},
		{"strong downscale", Env{SrcWidth: 4000, SrcHeight: 3000, DstWidth: 400, DstHeight: 300}, interpolation.Gaussian},
		{"mild downscale", Env{SrcWidth: 1000, SrcHeight: 1000, DstWidth: 600, DstHeight: 800}, interpolation.Lanczos},
		{"upscale", Env{SrcWidth: 100, SrcHeight: 100, DstWidth: 300, DstHeight: 300}, interpolation.BSpline},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.Select(c.env); got != c.want {
				t.Fatalf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestPolicyRuntimeErrorSkipsRule(t *testing.T) {
	p, err := New([]Rule{
		{Condition: "src_width % (dst_width - dst_width) == 0", Mode: interpolation.Welch},
		{Condition: "true", Mode: interpolation.Cosine},
	}, interpolation.Linear)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := p.Select(Env{SrcWidth: 10, SrcHeight: 10, DstWidth: 5, DstHeight: 5}); got != interpolation.Cosine {
		t.Fatalf("got %s", got)
	}
}

func TestPolicyNoRules(t *testing.T) {
	p, err := New(nil, interpolation.Hamming)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Select(Env{}); got != interpolation.Hamming {
		t.Fatalf("got %s", got)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New([]Rule{{Condition: "src_width +", Mode: interpolation.Linear}}, interpolation.Linear); err == nil {
		t.Fatal("expected compile error")
	}
	if _, err := New([]Rule{{Condition: "src_width + 1", Mode: interpolation.Linear}}, interpolation.Linear); err == nil {
		t.Fatal("expected error for non-boolean rule")
	}
	if _, err := New([]Rule{{Condition: "unknown_var > 1", Mode: interpolation.Linear}}, interpolation.Linear); err == nil {
		t.Fatal("expected error for unknown variable")
	}
	if _, err := New(nil, interpolation.Mode(99)); !errors.Is(err, interpolation.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := New([]Rule{{Condition: "true", Mode: -1}}, interpolation.Linear); !errors.Is(err, interpolation.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestRuleYAML(t *testing.T) {
	var rules []Rule
	err := yaml.Unmarshal([]byte(`
- when: downscale
  mode: LANCZOS
- when: "true"
  mode: sitkBSpline
`), &rules)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rules) != 2 || rules[0].Mode != interpolation.Lanczos || rules[1].Mode != interpolation.BSpline {
		t.Fatalf("unexpected rules: %+v", rules)
	}

	err = yaml.Unmarshal([]byte("- when: downscale\n  mode: lanczos\n"), &rules)
	if !errors.Is(err, interpolation.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestRandom(t *testing.T) {
	modes := []interpolation.Mode{interpolation.Linear, interpolation.BSpline, interpolation.Lanczos}
	r, err := NewRandom(modes, 1)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[interpolation.Mode]int)
	for i := 0; i < 300; i++ {
		seen[r.Select(Env{})]++
	}
	for _, m := range modes {
		if seen[m] == 0 {
			t.Errorf("%s never selected", m)
		}
	}
	if len(seen) != len(modes) {
		t.Fatalf("selected modes outside the set: %v", seen)
	}

	a, _ := NewRandom(modes, 7)
	b, _ := NewRandom(modes, 7)
	for i := 0; i < 20; i++ {
		if a.Select(Env{}) != b.Select(Env{}) {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestRandomConcurrent(t *testing.T) {
	r, err := NewRandom(interpolation.Modes(), 3)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if m := r.Select(Env{}); !m.Valid() {
					t.Errorf("invalid mode %d", int(m))
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewRandomErrors(t *testing.T) {
	if _, err := NewRandom(nil, 1); !errors.Is(err, ErrNoModes) {
		t.Fatalf("expected ErrNoModes, got %v", err)
	}
	if _, err := NewRandom([]interpolation.Mode{interpolation.Linear, 12}, 1); !errors.Is(err, interpolation.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestSelectorImplementations(t *testing.T) {
	p, err := New(nil, interpolation.Welch)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRandom([]interpolation.Mode{interpolation.Cosine}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []Selector{p, r} {
		if m := s.Select(Env{SrcWidth: 10, SrcHeight: 10, DstWidth: 5, DstHeight: 5}); !m.Valid() {
			t.Fatalf("%T selected invalid mode %d", s, int(m))
		}
	}
}
