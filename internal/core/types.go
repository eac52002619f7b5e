package core

import (
	"errors"
	"fmt"
	"sort"
)

// RadiusGlobal marks rules whose output cells may depend on any input cell.
const RadiusGlobal = -1

// Rule computes the next grid state from the current one.
//
// Apply must write every out[0:n*n] element exactly once, must only read
// in[0:n*n], and must not allocate. Callers guarantee both slices hold at
// least n*n elements and do not overlap; use kernel.Apply for the checked
// entry point.
type Rule interface {
	Name() string
	// Radius is the Chebyshev distance an input change can travel in one
	// step, or RadiusGlobal.
	Radius() int
	Apply(out, in []float32, n int)
}

// Factory constructs a Rule using an optional configuration map.
type Factory func(cfg map[string]string) Rule

// ErrUnknownRule is returned when a name has no registered factory.
var ErrUnknownRule = errors.New("unknown rule")

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name. It is meant to be
// called from init functions only.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// Rules exposes the registry of available rule factories.
func Rules() map[string]Factory {
	return rules
}

// Names lists registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named rule from cfg.
func Lookup(name string, cfg map[string]string) (Rule, error) {
	f, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return f(cfg), nil
}
