// Package pilot provides headless input sources for driving the simulation
// without a human: an idle source, a paddle autopilot, and a scripted source
// for tests. Sources register themselves by name so the CLI can pick one
// without hardcoded wiring.
package pilot

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/breakout-sim/internal/sim"
)

// Factory builds an input source bound to a world.
type Factory func(w *sim.World) sim.InputSource

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a pilot factory under the given name.
// Panics if the name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("pilot: %q already registered", name))
	}
	factories[name] = f
}

// New instantiates a pilot by name for the given world.
func New(name string, w *sim.World) (sim.InputSource, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("pilot: unknown pilot %q (available: %v)", name, Names())
	}
	return f(w), nil
}

// Names returns the registered pilot names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("idle", func(_ *sim.World) sim.InputSource { return idle{} })
	Register("follow", func(w *sim.World) sim.InputSource { return &follow{world: w} })
}
