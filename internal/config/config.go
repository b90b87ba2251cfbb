package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitrace/internal/orbit"
	"github.com/san-kum/orbitrace/internal/race"
)

const (
	DefaultFPS      = 60
	DefaultMaxTicks = 100000
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Race      RaceConfig   `yaml:"race"`
	BaseSpeed float64      `yaml:"base_speed"`
	Bodies    []BodyConfig `yaml:"bodies"`
	Seed      int64        `yaml:"seed"`
	FPS       int          `yaml:"fps"`
	MaxTicks  int          `yaml:"max_ticks"`
}

type RaceConfig struct {
	MinSpeed            float64 `yaml:"min_speed"`
	MaxSpeed            float64 `yaml:"max_speed"`
	SpeedChangeInterval int     `yaml:"speed_change_interval"`
	RubberBandStrength  float64 `yaml:"rubberband_strength"`
	PerturbRange        float64 `yaml:"perturb_range"`
	LapsToWin           int     `yaml:"laps_to_win"`
	BoostDelta          float64 `yaml:"boost_delta"`
}

type BodyConfig struct {
	Distance float64 `yaml:"distance"`
	Size     float64 `yaml:"size"`
	Color    string  `yaml:"color"`
}

func DefaultConfig() *Config {
	p := race.DefaultParams()
	return &Config{
		Race: RaceConfig{
			MinSpeed:            p.MinSpeed,
			MaxSpeed:            p.MaxSpeed,
			SpeedChangeInterval: p.SpeedChangeInterval,
			RubberBandStrength:  p.RubberBandStrength,
			PerturbRange:        p.PerturbRange,
			LapsToWin:           p.LapsToWin,
			BoostDelta:          p.BoostDelta,
		},
		BaseSpeed: race.DefaultBaseSpeed,
		Bodies:    defaultBodies(),
		FPS:       DefaultFPS,
		MaxTicks:  DefaultMaxTicks,
	}
}

func defaultBodies() []BodyConfig {
	return []BodyConfig{
		{Distance: 100, Size: 20, Color: orbit.Red.Hex()},
		{Distance: 150, Size: 25, Color: orbit.Blue.Hex()},
		{Distance: 200, Size: 30, Color: orbit.Green.Hex()},
		{Distance: 250, Size: 35, Color: orbit.Yellow.Hex()},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	r := c.Race
	switch {
	case len(c.Bodies) == 0:
		return fmt.Errorf("%w: no bodies", ErrInvalid)
	case r.MinSpeed <= 0 || r.MinSpeed > r.MaxSpeed:
		return fmt.Errorf("%w: speed bounds %v..%v", ErrInvalid, r.MinSpeed, r.MaxSpeed)
	case c.BaseSpeed < r.MinSpeed || c.BaseSpeed > r.MaxSpeed:
		return fmt.Errorf("%w: base speed %v outside %v..%v", ErrInvalid, c.BaseSpeed, r.MinSpeed, r.MaxSpeed)
	case r.LapsToWin <= 0:
		return fmt.Errorf("%w: laps to win must be positive, got %d", ErrInvalid, r.LapsToWin)
	case r.SpeedChangeInterval < 0:
		return fmt.Errorf("%w: negative speed change interval %d", ErrInvalid, r.SpeedChangeInterval)
	case r.PerturbRange < 0 || r.RubberBandStrength < 0:
		return fmt.Errorf("%w: negative perturbation range or rubber band strength", ErrInvalid)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	for i, b := range c.Bodies {
		if b.Distance <= 0 {
			return fmt.Errorf("%w: body %d distance %v", ErrInvalid, i+1, b.Distance)
		}
		if _, err := orbit.ParseColor(b.Color); err != nil {
			return fmt.Errorf("%w: body %d: %v", ErrInvalid, i+1, err)
		}
	}
	return nil
}

func (c *Config) Params() race.Params {
	return race.Params{
		MinSpeed:            c.Race.MinSpeed,
		MaxSpeed:            c.Race.MaxSpeed,
		SpeedChangeInterval: c.Race.SpeedChangeInterval,
		RubberBandStrength:  c.Race.RubberBandStrength,
		PerturbRange:        c.Race.PerturbRange,
		LapsToWin:           c.Race.LapsToWin,
		BoostDelta:          c.Race.BoostDelta,
	}
}

// BuildBodies builds the racers. Colors that fail to parse fall back to white;
// call Validate first to reject them instead.
func (c *Config) BuildBodies() []orbit.Body {
	bodies := make([]orbit.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		col, err := orbit.ParseColor(b.Color)
		if err != nil {
			col = orbit.White
		}
		bodies[i] = orbit.NewBody(b.Distance, c.BaseSpeed, b.Size, col)
	}
	return bodies
}
