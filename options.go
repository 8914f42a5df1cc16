package isovox

import "github.com/gogpu/isovox/internal/invariant"

// Default queue capacities.
const (
	// DefaultShadeQueueCapacity is the default number of shade queue entries.
	DefaultShadeQueueCapacity = 4 << 14

	// DefaultRenderQueueCapacity is the default number of render queue entries.
	DefaultRenderQueueCapacity = 1 << 14
)

// Option configures a Volume during creation.
//
// Example:
//
//	v, err := isovox.New(128, 128, 32,
//	    isovox.WithRotation(1),
//	    isovox.WithRenderQueueCapacity(4096))
type Option func(*options)

// options holds optional configuration for Volume creation.
type options struct {
	shadeQueueCap  int
	renderQueueCap int
	palette        Palette
	rotation       int
	checks         invariant.Checker
}

// defaultOptions returns the default volume options.
func defaultOptions() options {
	return options{
		shadeQueueCap:  DefaultShadeQueueCapacity,
		renderQueueCap: DefaultRenderQueueCapacity,
		palette:        DefaultPalette(),
		checks:         invariant.Default(),
	}
}

// WithShadeQueueCapacity sets the shade queue capacity. It must be at least
// 27, the entries queued by one write.
func WithShadeQueueCapacity(n int) Option {
	return func(o *options) {
		o.shadeQueueCap = n
	}
}

// WithRenderQueueCapacity sets the render queue capacity. It must be at
// least 1.
func WithRenderQueueCapacity(n int) Option {
	return func(o *options) {
		o.renderQueueCap = n
	}
}

// WithPalette sets the shade colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithRotation sets the initial rotation. The volume starts empty, so no full
// update is scheduled.
func WithRotation(r int) Option {
	return func(o *options) {
		o.rotation = r & 3
	}
}

// WithInvariantChecks turns the debug invariant checks on or off for this
// volume, overriding the isovoxdebug build tag. A failed check panics with an
// error value.
func WithInvariantChecks(on bool) Option {
	return func(o *options) {
		o.checks = invariant.Checker{On: on}
	}
}
