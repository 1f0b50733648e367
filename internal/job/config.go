// Package job loads and runs batches of resize jobs.
package job

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/vearutop/interpolation"
	"github.com/vearutop/interpolation/internal/policy"
	"github.com/vearutop/interpolation/internal/resample"
	"gopkg.in/yaml.v3"
)

// Config is the root of a batch file.
type Config struct {
	Backend     resample.Backend   `yaml:"backend"`
	Quality     int                `yaml:"quality"`
	Concurrency int                `yaml:"concurrency"`
	Fallback    interpolation.Mode `yaml:"fallback"`
	Rules       []policy.Rule      `yaml:"rules"`
	Random      *RandomConfig      `yaml:"random"`
	Jobs        []Spec             `yaml:"jobs"`
}

// RandomConfig replaces the rules with a seeded uniform choice among Modes.
type RandomConfig struct {
	Modes []interpolation.Mode `yaml:"modes"`
	Seed  int64                `yaml:"seed"`
}

// Spec describes a single resize. An explicit Mode overrides rules and random choice.
type Spec struct {
	In     string              `yaml:"in"`
	Out    string              `yaml:"out"`
	Width  int                 `yaml:"width"`
	Height int                 `yaml:"height"`
	Mode   *interpolation.Mode `yaml:"mode"`
}

// ExampleConfig documents the batch file format.
const ExampleConfig = `backend: imaging
quality: 85
concurrency: 4
fallback: LINEAR
rules:
  - when: "src_width < 64 && src_height < 64"
    mode: NEAREST
  - when: "downscale"
    mode: LANCZOS
jobs:
  - in: photo.jpg
    out: photo_800.jpg
    width: 800
    height: 600
  - in: mask.png
    out: mask_256.png
    width: 256
    height: 256
    mode: NEAREST
`

// ExampleRandomConfig shows a batch that picks modes at random, as augmentation does.
const ExampleRandomConfig = `backend: draw
random:
  modes: [LINEAR, BSPLINE, LANCZOS]
  seed: 1
jobs:
  - in: sample.png
    out: sample_a.png
    width: 128
    height: 128
  - in: sample.png
    out: sample_b.png
    width: 128
    height: 128
`

// LoadConfig reads and validates a YAML batch file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, applies defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	conf := Config{
		Backend:     resample.BackendImaging,
		Quality:     85,
		Concurrency: runtime.GOMAXPROCS(0),
		Fallback:    interpolation.Linear,
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks the configuration without touching the filesystem.
func (c *Config) Validate() error {
	if _, err := resample.ParseBackend(string(c.Backend)); err != nil {
		return err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality out of range: %d", c.Quality)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive: %d", c.Concurrency)
	}
	if c.Random != nil && len(c.Random.Modes) == 0 {
		return fmt.Errorf("random: %w", policy.ErrNoModes)
	}
	if len(c.Jobs) == 0 {
		return errors.New("no jobs")
	}
	for i, j := range c.Jobs {
		if j.In == "" || j.Out == "" {
			return fmt.Errorf("job %d: missing in or out path", i)
		}
		if j.Width <= 0 || j.Height <= 0 {
			return fmt.Errorf("job %d: %w: %dx%d", i, resample.ErrInvalidSize, j.Width, j.Height)
		}
	}
	return nil
}
