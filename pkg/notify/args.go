package notify

import "maps"

// Args carries the arguments passed to a callback after the notification key.
// Positional values keep their order; Named values are keyed by name.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Positional builds Args holding only positional values.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Named builds Args holding only named values.
func Named(values map[string]any) Args {
	return Args{Named: values}
}

// Merge overlays call-time arguments on top of a, which holds the
// registration-time ones. Positional values of a come first; on a name
// conflict the value from call wins. Neither input is modified.
func (a Args) Merge(call Args) Args {
	out := Args{
		Positional: make([]any, 0, len(a.Positional)+len(call.Positional)),
		Named:      make(map[string]any, len(a.Named)+len(call.Named)),
	}
	out.Positional = append(out.Positional, a.Positional...)
	out.Positional = append(out.Positional, call.Positional...)
	maps.Copy(out.Named, a.Named)
	maps.Copy(out.Named, call.Named)
	return out
}

// Arg returns the positional value at index i, or nil when out of range.
func (a Args) Arg(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Get returns the named value and whether it was present.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// IsZero reports whether a holds no values at all.
func (a Args) IsZero() bool {
	return len(a.Positional) == 0 && len(a.Named) == 0
}

func (a Args) clone() Args {
	out := Args{}
	if len(a.Positional) > 0 {
		out.Positional = append([]any(nil), a.Positional...)
	}
	if len(a.Named) > 0 {
		out.Named = maps.Clone(a.Named)
	}
	return out
}
