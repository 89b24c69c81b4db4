package textindex

// Options controls a single search. A nil field is treated as absent and
// falls back to the default: case sensitive, multiple off.
type Options struct {
	CaseSensitive *bool `yaml:"caseSensitive" json:"caseSensitive"`
	Multiple      *bool `yaml:"multiple" json:"multiple"`
}

// Bool returns a pointer to v, for filling in Options literals.
func Bool(v bool) *bool {
	return &v
}

// settings is the fully resolved form of Options.
type settings struct {
	caseSensitive bool
	multiple      bool
}

var defaultSettings = settings{
	caseSensitive: true,
	multiple:      false,
}

// resolve merges o over the defaults field by field. A nil receiver yields
// the defaults.
func (o *Options) resolve() settings {
	s := defaultSettings
	if o == nil {
		return s
	}
	if o.CaseSensitive != nil {
		s.caseSensitive = *o.CaseSensitive
	}
	if o.Multiple != nil {
		s.multiple = *o.Multiple
	}
	return s
}
