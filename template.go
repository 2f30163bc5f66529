package templatest

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
)

// Template is a registered (name, template, expected) triple driving one test case.
// It is a snapshot taken at registration and is never mutated.
type Template struct {
	Name     string // test ID derived from the provider's type
	Template string // input the test works with
	Expected string // result the test should produce
}

// Provider supplies the strings for one template fixture.
// The template's name is derived from the provider's type; see NameOf.
type Provider interface {
	Template() string
	Expected() string
}

// Identifier overrides the reflected type name a provider's name is derived from.
// Useful when one Go type backs several fixtures.
type Identifier interface {
	Identifier() string
}

var capsPattern = regexp.MustCompile(`[A-Z][^A-Z]*`)

// NameOf returns the registered name for p: DeriveName applied to its identifier.
// Unnamed or lowercase types derive "" and need Identifier to be registered.
func NameOf(p Provider) string {
	return DeriveName(identifierOf(p))
}

// DeriveName turns a CamelCase type identifier into a dash-separated test ID.
// Words start at capitals, digits are set apart and underscores become dashes:
// "TestTemplate_0" -> "test-template-0".
func DeriveName(identifier string) string {
	words := capsPattern.FindAllString(identifier, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	var b strings.Builder
	for _, r := range strings.Join(words, "-") {
		if unicode.IsDigit(r) {
			b.WriteByte('-')
			b.WriteRune(r)
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	name := strings.TrimSuffix(b.String(), "-")
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ReplaceAll(name, "--", "-")
}

func identifierOf(p Provider) string {
	if id, ok := p.(Identifier); ok {
		return id.Identifier()
	}
	t := reflect.TypeOf(p)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
