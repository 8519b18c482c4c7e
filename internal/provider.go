package internal

// Provider is a country or region rule-set. Populate adds every holiday its
// rules produce for the collection's year, including substitution entries.
// Populate must be deterministic: building the same (code, year, locale)
// twice yields identical collections.
type Provider interface {
	// Code returns the lowercase ISO 3166 identifier the provider is
	// registered under ("jp", "de-by").
	Code() string

	// Populate adds the provider's holidays for c.Year() to c.
	Populate(c *Collection) error
}

// Build creates a collection for the given year and locale and populates it
// with the provider's rules. The returned collection is complete: every
// rule-driven entry is present, and the provider stays attached for Next and
// Previous navigation.
func Build(p Provider, year int, loc string) (*Collection, error) {
	c, err := NewCollection(year, loc, WithProvider(p))
	if err != nil {
		return nil, err
	}
	if err := p.Populate(c); err != nil {
		return nil, err
	}
	return c, nil
}
