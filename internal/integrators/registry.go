package integrators

import (
	"sort"

	"github.com/san-kum/magtraj/internal/dynamo"
)

// Default is the scheme used when none is named. It reproduces the classic
// velocity-then-position update.
const Default = "euler-cromer"

var schemes = map[string]func() dynamo.Integrator{
	"euler":        func() dynamo.Integrator { return NewEuler() },
	"euler-cromer": func() dynamo.Integrator { return NewEulerCromer() },
	"leapfrog":     func() dynamo.Integrator { return NewLeapfrog() },
	"rk4":          func() dynamo.Integrator { return NewRK4() },
	"boris":        func() dynamo.Integrator { return NewBoris() },
}

// New returns a fresh integrator. Integrators may hold scratch buffers, so
// callers must not share one across goroutines.
func New(name string) (dynamo.Integrator, error) {
	if name == "" {
		name = Default
	}
	fn, ok := schemes[name]
	if !ok {
		return nil, dynamo.InvalidParameter("scheme", name, "unknown integrator")
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
