package scheme

import (
	"encoding/gob"
	"fmt"
	"sort"

	"github.com/arloliu/catenc/errs"
)

// Built-in scheme names, registered during package initialization.
const (
	OneHot      = "onehot"
	Target      = "target"
	LeaveOneOut = "leave_one_out"
	WOE         = "woe"
)

// Factory constructs a fresh, unfitted strategy from scheme options.
type Factory func(opts ...Option) (Strategy, error)

// registry maps scheme names to strategy factories. Entries are inserted or
// overwritten by Register and never removed. Lookup happens only at pipeline
// construction, so registering a scheme never retargets an existing pipeline.
var registry = map[string]Factory{}

// Register makes a strategy factory available under the given scheme name
// for all pipelines constructed afterwards. Registering an existing name
// overwrites its factory.
//
// Register also records the factory's concrete strategy type with the gob
// codec, so fitted instances decode from snapshots. The factory is invoked
// once with default options to obtain the prototype; a factory that fails on
// defaults skips gob registration and its scheme cannot round-trip through
// snapshots.
//
// Register mutates process-wide state without locking; call it from init
// functions or otherwise before pipelines are constructed concurrently.
func Register(name string, factory Factory) {
	registry[name] = factory

	if prototype, err := factory(); err == nil {
		gob.Register(prototype)
	}
}

// New resolves a scheme name and constructs an unfitted strategy, forwarding
// opts verbatim to the factory.
//
// Returns:
//   - Strategy: The constructed strategy.
//   - error: ErrUnknownScheme if the name has no registered factory, or the
//     factory's own error.
func New(name string, opts ...Option) (Strategy, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownScheme, name)
	}

	return factory(opts...)
}

// IsRegistered reports whether a scheme name has a registered factory.
func IsRegistered(name string) bool {
	_, ok := registry[name]
	return ok
}

// Registered returns the registered scheme names, sorted.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func init() {
	Register(OneHot, func(opts ...Option) (Strategy, error) {
		return NewOneHotEncoder(opts...)
	})
	Register(Target, func(opts ...Option) (Strategy, error) {
		return NewTargetEncoder(opts...)
	})
	Register(LeaveOneOut, func(opts ...Option) (Strategy, error) {
		return NewLeaveOneOutEncoder(opts...)
	})
	Register(WOE, func(opts ...Option) (Strategy, error) {
		return NewWOEEncoder(opts...)
	})
}
