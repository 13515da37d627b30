package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a narrative template against data. State
// greetings and epilogue fragments use this to splice in character
// names and score figures.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// MustExpand is ExpandTemplate for content-authored templates that
// are validated at startup; on error it returns the raw template so a
// content typo degrades to odd text rather than losing the message.
func MustExpand(tmplStr string, data any) string {
	out, err := ExpandTemplate(tmplStr, data)
	if err != nil {
		return tmplStr
	}
	return out
}
