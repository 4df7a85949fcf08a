// Package letter renders the advocacy letters sent to representatives and
// builds the mailto links that carry them.
package letter

import (
	"fmt"
	"sort"
	"strings"

	dErrors "writeyourmep/pkg/domain-errors"
)

// Template names a built-in letter.
type Template string

const (
	AIRisk        Template = "ai_risk"
	Whistleblower Template = "whistleblower"
)

// Templates lists the built-in template names in ascending order.
func Templates() []Template {
	names := make([]Template, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseTemplate resolves a configured template name.
func ParseTemplate(name string) (Template, error) {
	t := Template(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := definitions[t]; !ok {
		return "", dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown letter template %q", name))
	}
	return t, nil
}

// Fields are interpolated verbatim into the letter body.
type Fields struct {
	FirstName string
	LastName  string
	Country   string
	MEPName   string
}

// Letter is a subject and plain-text body.
type Letter struct {
	Subject string
	Body    string
}

// Generator renders letters from the built-in templates.
type Generator struct {
	defaultTemplate Template
}

// NewGenerator returns a generator whose Generate uses t.
func NewGenerator(t Template) (*Generator, error) {
	if _, ok := definitions[t]; !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown letter template %q", t))
	}
	return &Generator{defaultTemplate: t}, nil
}

// DefaultTemplate reports the template used by Generate.
func (g *Generator) DefaultTemplate() Template {
	return g.defaultTemplate
}

// Generate renders the default template. Output is byte-identical for
// identical fields.
func (g *Generator) Generate(f Fields) Letter {
	return render(definitions[g.defaultTemplate], f)
}

// GenerateWith renders a specific template.
func (g *Generator) GenerateWith(t Template, f Fields) (Letter, error) {
	def, ok := definitions[t]
	if !ok {
		return Letter{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown letter template %q", t))
	}
	return render(def, f), nil
}

// Compose returns the custom letter verbatim when both subject and body are
// non-empty, and the generated default letter otherwise.
func (g *Generator) Compose(f Fields, customSubject, customBody string) Letter {
	if customSubject != "" && customBody != "" {
		return Letter{Subject: customSubject, Body: customBody}
	}
	return g.Generate(f)
}

func render(def definition, f Fields) Letter {
	var body strings.Builder
	// Execute cannot fail here: every referenced key exists on Fields and
	// strings.Builder never returns a write error.
	_ = def.body.Execute(&body, f)
	return Letter{Subject: def.subject, Body: body.String()}
}
