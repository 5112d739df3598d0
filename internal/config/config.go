// Package config loads and validates run configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/allocsim/internal/game"
)

// Config describes one simulation run: the pool, the round count, and either
// an explicit agent roster or parameters for generating a random one.
type Config struct {
	Rounds int           `yaml:"rounds"`
	Pool   PoolConfig    `yaml:"pool"`
	Agents []game.Params `yaml:"agents"`
	Roster RosterConfig  `yaml:"roster"`
}

// PoolConfig sets the fixed per-round resource supply.
type PoolConfig struct {
	TotalResources float64 `yaml:"total_resources"`
}

// RosterConfig generates Count random agents from Seed when no explicit
// agent list is configured.
type RosterConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

// Default returns the built-in three-agent demo run.
func Default() Config {
	return Config{
		Rounds: 10,
		Pool:   PoolConfig{TotalResources: 30},
		Agents: []game.Params{
			{Name: "Agent A", Capability: 5, ResourceNeed: 10, Selfishness: 0.5},
			{Name: "Agent B", Capability: 8, ResourceNeed: 8, Selfishness: 0.3},
			{Name: "Agent C", Capability: 4, ResourceNeed: 12, Selfishness: 0.7},
		},
	}
}

// Load reads a config file from disk.
func Load(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects configurations that would break the game's invariants:
// non-positive round counts or pool totals, negative agent parameters,
// duplicate names, or an empty roster.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds %d must be at least 1", c.Rounds)
	}
	if c.Pool.TotalResources <= 0 {
		return fmt.Errorf("pool total_resources %v must be positive", c.Pool.TotalResources)
	}
	if len(c.Agents) == 0 && c.Roster.Count < 1 {
		return fmt.Errorf("config needs an agent list or a roster count")
	}
	if c.Roster.Count < 0 {
		return fmt.Errorf("roster count %d must not be negative", c.Roster.Count)
	}

	seen := make(map[string]bool, len(c.Agents))
	for _, p := range c.Agents {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate agent name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
