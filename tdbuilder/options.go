package tdbuilder

import "github.com/katalvlaran/domset/color"

// Options configures a single Build call.
type Options struct {
	interner *color.Interner
}

// Option is a functional option for Build.
type Option func(*Options)

// WithInterner supplies a pre-existing color.Interner instead of letting
// Build allocate a fresh one. Primarily useful for tests that need to
// compare canonicalized ColorPairs across several independently built
// decompositions.
func WithInterner(in *color.Interner) Option {
	return func(o *Options) {
		o.interner = in
	}
}

func defaultOptions() Options {
	return Options{}
}
