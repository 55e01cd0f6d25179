package registry

import (
	"github.com/specialistvlad/porrinha/internal/player"
)

// Module is the interface that all player modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the player factories for a single application instance.
type Registry struct {
	factories map[string]player.Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]player.Factory),
	}
}

// NewWithModules creates a Registry populated by every module in order.
func NewWithModules(modules ...Module) *Registry {
	r := New()
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}
