package solve

// Options configures a single Solve run.
//
// ParallelJoins – if true, a join bag's two children are traversed on
// separate goroutines, synchronized before transition.Join runs. Default
// false: the reference model is single-threaded cooperative traversal.
type Options struct {
	ParallelJoins bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithParallelJoins enables concurrent processing of a join bag's two
// children. Safe to combine with any decomposition shape: color.Interner is
// always concurrency-safe, and no two concurrently running subtrees ever
// share a Bag.
func WithParallelJoins() Option {
	return func(o *Options) {
		o.ParallelJoins = true
	}
}

// defaultOptions returns the single-threaded-cooperative default.
func defaultOptions() Options {
	return Options{ParallelJoins: false}
}
