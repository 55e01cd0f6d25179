package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/porrinha/internal/player"
)

// Register binds a player kind to its factory.
func (r *Registry) Register(kind string, factory player.Factory) {
	if _, exists := r.factories[kind]; exists {
		panic(fmt.Sprintf("player factory with kind '%s' already registered", kind))
	}
	slog.Debug("Registering player factory.", "kind", kind)
	r.factories[kind] = factory
}

// Lookup returns the factory registered for kind.
func (r *Registry) Lookup(kind string) (player.Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// Names returns the registered kinds in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		names = append(names, kind)
	}
	sort.Strings(names)
	return names
}
