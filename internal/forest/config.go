package forest

import (
	"fmt"
	"strconv"
)

// Probabilities holds the three per-step percentage chances of the simulation.
type Probabilities struct {
	// Ignition is the chance a tree spontaneously catches fire.
	Ignition int
	// Transmission is the chance a burning tree spreads to an adjacent tree.
	Transmission int
	// Respawn is the chance a rock converts back into a tree.
	Respawn int
}

// Config controls a wildfire simulation run.
type Config struct {
	// ForestRatio is the target percentage of patches created as trees.
	ForestRatio int

	Probabilities Probabilities

	// Firefighters is the number of agents spawned at construction.
	Firefighters int
	// Skill is the health each firefighter restores per fight action.
	Skill int

	// Iterations is the number of steps an external runner should drive.
	Iterations int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ForestRatio: 80,
		Probabilities: Probabilities{
			Ignition:     1,
			Transmission: 30,
			Respawn:      1,
		},
		Firefighters: 5,
		Skill:        25,
		Iterations:   50,
		Seed:         1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["forest_ratio"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ForestRatio = parsed
		}
	}
	if v, ok := cfg["ignition"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Probabilities.Ignition = parsed
		}
	}
	if v, ok := cfg["transmission"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Probabilities.Transmission = parsed
		}
	}
	if v, ok := cfg["respawn"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Probabilities.Respawn = parsed
		}
	}
	if v, ok := cfg["firefighters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Firefighters = parsed
		}
	}
	if v, ok := cfg["skill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Skill = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate checks every field against its allowed range. Any violation is
// reported as ErrInput; the caller decides whether to re-prompt or abort.
func (c Config) Validate() error {
	if c.ForestRatio < 0 || c.ForestRatio > 100 {
		return fmt.Errorf("%w: forest ratio %d%% outside [0,100]", ErrInput, c.ForestRatio)
	}
	p := c.Probabilities
	for _, chance := range []struct {
		name  string
		value int
	}{
		{"ignition", p.Ignition},
		{"transmission", p.Transmission},
		{"respawn", p.Respawn},
	} {
		if chance.value < 0 || chance.value > 100 {
			return fmt.Errorf("%w: %s chance %d%% outside [0,100]", ErrInput, chance.name, chance.value)
		}
	}
	if sum := p.Ignition + p.Transmission + p.Respawn; sum > 100 {
		return fmt.Errorf("%w: probabilities sum to %d%%, must not exceed 100%%", ErrInput, sum)
	}
	if c.Firefighters < 0 || c.Firefighters > 50 {
		return fmt.Errorf("%w: firefighter count %d outside [0,50]", ErrInput, c.Firefighters)
	}
	if c.Skill < 0 || c.Skill > 100 {
		return fmt.Errorf("%w: firefighter skill %d outside [0,100]", ErrInput, c.Skill)
	}
	if c.Iterations < 1 || c.Iterations > 1000 {
		return fmt.Errorf("%w: iteration count %d outside [1,1000]", ErrInput, c.Iterations)
	}
	return nil
}
