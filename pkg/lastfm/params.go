package lastfm

// Params is the set of method-specific parameters for an API call.
//
// Keys are unique parameter names; insertion order never matters
// because signing sorts keys byte-wise. The zero value is usable via
// NewParams.
type Params map[string]string

// NewParams returns an empty parameter set.
func NewParams() Params {
	return make(Params)
}

// Clone returns a copy of the parameter set. Request execution clones
// before injecting protocol parameters so caller maps are never
// mutated.
func (p Params) Clone() Params {
	out := make(Params, len(p)+4)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Set stores a parameter and returns the set for chaining.
func (p Params) Set(key, value string) Params {
	p[key] = value
	return p
}
