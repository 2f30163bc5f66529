package varseq

// Option configures the named sequences (functional options pattern).
type Option func(*config)

type config struct {
	separator string
}

func defaultConfig() *config {
	return &config{separator: "_"}
}

// WithSeparator sets the string placed between name and index. Default is "_";
// an empty separator is allowed.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// PrefixOption configures a VarPrefix.
type PrefixOption func(*VarPrefix)

// WithSlug sets the string that replaces underscores in accessed names. Default is "_".
func WithSlug(slug string) PrefixOption {
	return func(p *VarPrefix) {
		p.slug = slug
	}
}
