package varseq

import (
	"fmt"
	"strings"
)

// VarPrefix builds prefixed names such as command-line flags and caches them:
//
//	flag := NewVarPrefix("--", WithSlug("-"))
//	flag.Get("force_remove") // "--force-remove"
//
// The zero value has an empty prefix and slug, so underscores are removed.
type VarPrefix struct {
	prefix string
	slug   string
	cache  map[string]string
	order  []string
}

// NewVarPrefix returns a VarPrefix for prefix. Underscores in accessed names are
// kept unless WithSlug sets a replacement.
func NewVarPrefix(prefix string, opts ...PrefixOption) *VarPrefix {
	p := &VarPrefix{
		prefix: prefix,
		slug:   "_",
		cache:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns prefix followed by name with underscores replaced by the slug.
// The value is computed once per name.
func (p *VarPrefix) Get(name string) string {
	if v, ok := p.cache[name]; ok {
		return v
	}
	if p.cache == nil {
		p.cache = make(map[string]string)
	}
	v := p.prefix + strings.ReplaceAll(name, "_", p.slug)
	p.cache[name] = v
	p.order = append(p.order, name)
	return v
}

// String lists cached values in first-access order.
func (p *VarPrefix) String() string {
	values := make([]string, len(p.order))
	for i, name := range p.order {
		values[i] = p.cache[name]
	}
	return fmt.Sprintf("<VarPrefix %q>", values)
}
