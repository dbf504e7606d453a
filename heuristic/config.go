package heuristic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"isolation/game"
)

// Config selects a heuristic at startup, typically from the search
// driver's configuration file.
type Config struct {
	Strategy       string  `yaml:"strategy"`
	OpponentWeight float64 `yaml:"opponent_weight"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:       ActionMobility.String(),
		OpponentWeight: DefaultOpponentWeight,
	}
}

// LoadConfig parses a YAML heuristic selection, filling omitted fields
// with defaults and rejecting unrecognized strategy identifiers.
func LoadConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing heuristic config: %w", err)
	}
	if config.OpponentWeight <= 0 {
		return Config{}, fmt.Errorf("opponent_weight must be positive, got %v", config.OpponentWeight)
	}
	kind, err := ParseStrategy(config.Strategy)
	if err != nil {
		return Config{}, err
	}

	log.Debug().Msgf("using %s heuristic (opponent weight %.2f)", kind, config.OpponentWeight)

	return config, nil
}

// Kind resolves the configured strategy identifier.
func (c Config) Kind() (StrategyKind, error) {
	return ParseStrategy(c.Strategy)
}

// Evaluate builds the evaluation closure the search driver plugs in,
// bound to the configured strategy and opponent weight.
func (c Config) Evaluate(g game.State, p game.Player) (game.Evaluate, error) {
	kind, err := ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	evaluator := New(g, p, WithOpponentWeight(c.OpponentWeight))
	return evaluator.Evaluate(kind), nil
}
