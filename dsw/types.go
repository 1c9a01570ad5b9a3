// Package dsw defines options and diagnostics for Day–Stout–Warren
// rebalancing.
package dsw

// Option configures optional behavior of Balance.
// Use with Balance(root, opts...).
type Option func(*Options)

// Options holds configurable parameters for one Balance call.
type Options struct {
	// Stats, if non-nil, is overwritten with the diagnostics of the
	// call: node count, rotation counts and compression passes.
	Stats *Stats
}

// Stats captures the diagnostics of a single Balance call. All counters
// are exact; for a tree of n nodes, RightRotations equals the number of
// left-child edges in the input and LeftRotations equals
// n − ⌊log2(n+1)⌋.
type Stats struct {
	// Size is the number of nodes in the tree.
	Size int

	// RightRotations performed while flattening the tree into a vine.
	RightRotations int

	// LeftRotations performed while compressing the vine.
	LeftRotations int

	// Passes is the number of non-empty compression passes, including
	// the initial partial pass that places the bottom-level leaves.
	Passes int
}

// DefaultOptions returns an Options struct with no diagnostics sink
// installed.
func DefaultOptions() Options {
	return Options{Stats: nil}
}

// WithStats returns an Option that installs s as the diagnostics sink.
// The previous contents of s are overwritten. Passing nil has no effect.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s != nil {
			o.Stats = s
		}
	}
}
