// Package options holds the functional-options config for a symspell.Index.
package options

// IndexOptions are the construction-time parameters of a deletion index.
// Defaults match spec §4.A: k=2, p=7.
type IndexOptions struct {
	MaxEditDistance int
	PrefixLength    int
	// CountThreshold is the minimum frequency a word needs to be kept in
	// the index at all; entries below it are dropped at build time.
	CountThreshold int
}

// DefaultOptions mirrors the teacher's conservative defaults, adjusted to
// this index's smaller parameter surface.
var DefaultOptions = IndexOptions{
	MaxEditDistance: 2,
	PrefixLength:    7,
	CountThreshold:  1,
}

// Option mutates an IndexOptions during construction.
type Option interface {
	Apply(*IndexOptions)
}

type funcOption struct {
	apply func(*IndexOptions)
}

func (f funcOption) Apply(o *IndexOptions) { f.apply(o) }

func newFuncOption(f func(*IndexOptions)) Option {
	return funcOption{apply: f}
}

// WithMaxEditDistance sets k. Build refuses k > p.
func WithMaxEditDistance(k int) Option {
	return newFuncOption(func(o *IndexOptions) { o.MaxEditDistance = k })
}

// WithPrefixLength sets p, the prefix bound used during deletion enumeration.
func WithPrefixLength(p int) Option {
	return newFuncOption(func(o *IndexOptions) { o.PrefixLength = p })
}

// WithCountThreshold sets the minimum frequency required to index a word.
func WithCountThreshold(threshold int) Option {
	return newFuncOption(func(o *IndexOptions) { o.CountThreshold = threshold })
}

// Resolve applies opts over DefaultOptions and returns the result.
func Resolve(opts ...Option) IndexOptions {
	o := DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	return o
}
