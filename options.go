package stamp

import "image"

// Option configures a Brush during creation.
//
// Example:
//
//	gens := stamp.NewGenerations()
//	b := stamp.New(stamp.KindSquare, 16, 45, stamp.WithGenerations(gens))
type Option func(*options)

// options holds optional configuration for Brush creation.
type options struct {
	generations   *Generations
	objects       Objects
	pattern       Pattern
	patternOrigin image.Point
}

// defaultOptions returns the default brush options.
func defaultOptions() options {
	return options{
		generations: defaultGenerations,
		pattern:     PatternDefault,
	}
}

// WithGenerations sets the generation source the brush draws cache stamps
// from. Brushes that share a source never share a generation value.
// A nil source keeps the package default.
func WithGenerations(g *Generations) Option {
	return func(o *options) {
		if g != nil {
			o.generations = g
		}
	}
}

// WithObjects tracks the brush as an identified, versioned object: it is
// given an ID on creation and its version is bumped whenever its stamp
// image is replaced.
func WithObjects(objs Objects) Option {
	return func(o *options) {
		o.objects = objs
	}
}

// WithPattern sets the initial tiling pattern.
func WithPattern(p Pattern) Option {
	return func(o *options) {
		o.pattern = p
	}
}

// WithPatternOrigin sets the initial pattern origin.
func WithPatternOrigin(pt image.Point) Option {
	return func(o *options) {
		o.patternOrigin = pt
	}
}
