package unbevel

// DefaultMergeDistance is the distance within which vertices are welded
// after collapsing.
const DefaultMergeDistance = 0.001

// Option configures an Unbevel run.
//
// Example:
//
//	report, err := unbevel.Unbevel(m, unbevel.WithKeepSupport(true))
type Option func(*options)

type options struct {
	keepSupport   bool
	mergeDistance float64
}

func defaultOptions() options {
	return options{
		keepSupport:   false,
		mergeDistance: DefaultMergeDistance,
	}
}

// WithKeepSupport leaves the vertices of each ring's two end edges in
// place, so the edges that bounded the bevel survive and only the
// strictly interior vertices collapse.
func WithKeepSupport(keep bool) Option {
	return func(o *options) {
		o.keepSupport = keep
	}
}

// WithMergeDistance sets the weld distance used after collapsing. A
// negative distance disables merging.
func WithMergeDistance(dist float64) Option {
	return func(o *options) {
		o.mergeDistance = dist
	}
}
