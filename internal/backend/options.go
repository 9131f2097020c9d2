package backend

// Options tunes a reducer call. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// ScaleFactor converts logical (CSS) pixels to physical pixels.
	ScaleFactor float64

	// CollectCoalesced harvests coalesced samples into Move events.
	CollectCoalesced bool

	// CollectPredicted harvests predicted samples into Move events.
	CollectPredicted bool
}

// DefaultOptions returns the cheapest options: scale 1, no sample collection.
func DefaultOptions() Options {
	return Options{ScaleFactor: 1}
}

// WithScale returns a copy of o with the given scale factor.
func (o Options) WithScale(scale float64) Options {
	o.ScaleFactor = scale
	return o
}

// WithCoalesced returns a copy of o with coalesced collection set.
func (o Options) WithCoalesced(collect bool) Options {
	o.CollectCoalesced = collect
	return o
}

// WithPredicted returns a copy of o with predicted collection set.
func (o Options) WithPredicted(collect bool) Options {
	o.CollectPredicted = collect
	return o
}

// Scale returns the scale factor, treating non-positive values as 1.
func (o Options) Scale() float64 {
	if o.ScaleFactor <= 0 {
		return 1
	}
	return o.ScaleFactor
}
