package mapper

import "github.com/rs/zerolog"

type Options struct {
	Logger     zerolog.Logger // receives debug events; silent by default
	NullMarker func(any) bool // extra null markers on top of nil and null driver.Valuer values
}

type Option func(*Options)

func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }
func WithNullMarker(fn func(any) bool) Option {
	return func(o *Options) { o.NullMarker = fn }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{Logger: zerolog.Nop()}
	for _, f := range opts {
		f(&o)
	}
	return o
}

func (o Options) isNull(raw any) bool {
	if isNull(raw) {
		return true
	}
	return o.NullMarker != nil && o.NullMarker(raw)
}
