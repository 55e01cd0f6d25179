package app

import (
	"fmt"

	"github.com/specialistvlad/porrinha/internal/argvec"
)

const (
	DefaultChopsticks = 3
	DefaultRounds     = 100
)

// Config holds all the necessary configuration for an App instance to run.
// Chopsticks and Rounds are nil when the command line did not set them; the
// match file and then the defaults fill them in.
type Config struct {
	ConfigPath string // optional HCL match file
	Chopsticks *int
	Rounds     *int

	LogFormat string
	LogLevel  string

	// Players holds one sub-command per player, named after its kind.
	Players []*argvec.Vector
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Chopsticks != nil && *cfg.Chopsticks < 1 {
		return nil, fmt.Errorf("chopsticks must be at least 1, got %d", *cfg.Chopsticks)
	}
	if cfg.Rounds != nil && *cfg.Rounds < 0 {
		return nil, fmt.Errorf("rounds must not be negative, got %d", *cfg.Rounds)
	}
	if cfg.ConfigPath == "" && len(cfg.Players) == 0 {
		return nil, fmt.Errorf("no players given and no match file to read them from")
	}
	return &cfg, nil
}

// pick returns the first non-nil value, or def.
func pick(def int, values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return def
}
