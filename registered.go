package templatest

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Registered is an ordered, name-indexed collection of templates.
// Insertion order is registration order and names are unique.
// The zero value is an empty collection ready to use.
// Not safe for concurrent use; a test session is expected to register
// and query from one goroutine.
type Registered struct {
	templates []Template
	logger    *slog.Logger
}

// NewRegistered returns an empty collection.
func NewRegistered(opts ...Option) *Registered {
	r := &Registered{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRegisteredFrom returns a collection holding ts in order.
// Returns a *NameConflictError if two templates share a name.
func NewRegisteredFrom(ts []Template, opts ...Option) (*Registered, error) {
	r := NewRegistered(opts...)
	for _, t := range ts {
		if err := r.Add(t.Name, t.Template, t.Expected); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Logger returns the logger registration events go to.
// A zero Registered reports to slog.Default().
func (r *Registered) Logger() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// derive returns an empty collection sharing r's logger.
func (r *Registered) derive() *Registered {
	return &Registered{logger: r.logger}
}

// Add appends a template. Returns a *NameConflictError wrapping ErrNameConflict
// if name is already present, or ErrEmptyName if name is empty; the collection
// is left unchanged in both cases.
func (r *Registered) Add(name, template, expected string) error {
	return r.add(name, name, template, expected)
}

// Register snapshots p under its derived name (see NameOf).
// Types without a usable name (unexported lowercase or unnamed types) must
// implement Identifier, otherwise ErrEmptyName is returned.
// The conflict error identifies p by its type identifier.
func (r *Registered) Register(p Provider) error {
	return r.add(identifierOf(p), NameOf(p), p.Template(), p.Expected())
}

func (r *Registered) add(identifier, name, template, expected string) error {
	if name == "" {
		return fmt.Errorf("%w: identifier %q", ErrEmptyName, identifier)
	}
	if _, ok := r.GetIndex(name); ok {
		r.Logger().Warn("template name conflict", "identifier", identifier, "name", name)
		return &NameConflictError{Identifier: identifier, Name: name, Err: ErrNameConflict}
	}
	r.templates = append(r.templates, Template{Name: name, Template: template, Expected: expected})
	r.Logger().Debug("template registered", "name", name, "index", len(r.templates)-1)
	return nil
}

// GetGroup returns a new collection with every template whose name starts with
// any of the prefixes, in original relative order.
func (r *Registered) GetGroup(prefixes ...string) *Registered {
	out := r.derive()
	for _, t := range r.templates {
		if hasAnyPrefix(t.Name, prefixes) {
			out.templates = append(out.templates, t)
		}
	}
	return out
}

// FilterGroup returns a new collection with every template whose name starts
// with none of the prefixes.
func (r *Registered) FilterGroup(prefixes ...string) *Registered {
	out := r.derive()
	for _, t := range r.templates {
		if !hasAnyPrefix(t.Name, prefixes) {
			out.templates = append(out.templates, t)
		}
	}
	return out
}

func hasAnyPrefix(name string, prefixes []string) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(name, p)
	})
}

// GetIDs returns the names of all templates in order.
func (r *Registered) GetIDs() []string {
	ids := make([]string, len(r.templates))
	for i, t := range r.templates {
		ids[i] = t.Name
	}
	return ids
}

// GetByName returns the template registered under name.
func (r *Registered) GetByName(name string) (Template, bool) {
	i, ok := r.GetIndex(name)
	if !ok {
		return Template{}, false
	}
	return r.templates[i], true
}

// GetIndex returns the zero-based position of the template registered under name.
func (r *Registered) GetIndex(name string) (int, bool) {
	i := slices.IndexFunc(r.templates, func(t Template) bool { return t.Name == name })
	return i, i >= 0
}

// Len returns the number of templates.
func (r *Registered) Len() int { return len(r.templates) }

// At returns the template at position i. Panics if i is out of range.
func (r *Registered) At(i int) Template { return r.templates[i] }

// All iterates over positions and templates in registration order.
func (r *Registered) All() iter.Seq2[int, Template] {
	return slices.All(r.templates)
}

// Templates returns a copy of the templates in registration order.
func (r *Registered) Templates() []Template {
	return slices.Clone(r.templates)
}

// Clear removes every template, e.g. between tests.
func (r *Registered) Clear() {
	r.templates = nil
	r.Logger().Debug("templates cleared")
}

// String implements fmt.Stringer.
func (r *Registered) String() string {
	return fmt.Sprintf("<Registered %q>", r.GetIDs())
}
