package config

import (
	"context"

	"github.com/specialistvlad/porrinha/internal/argvec"
)

// Loader is the interface for a format-specific match file loader.
type Loader interface {
	// Load reads the match file at path.
	Load(ctx context.Context, path string) (*Match, error)
}

// Match is a match file. Settings the file leaves out are nil so that
// command-line values and defaults can fill them.
type Match struct {
	Chopsticks *int
	Rounds     *int
	Players    []*argvec.Vector
}
