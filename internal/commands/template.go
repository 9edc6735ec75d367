package commands

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// placeholderPattern matches %name% placeholders in message text.
var placeholderPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// compileMessage parses message text into a template. Each %name% placeholder
// becomes a lookup of name in the map the template is executed with.
func compileMessage(id string, text string) (*template.Template, error) {
	src := placeholderPattern.ReplaceAllString(text, `{{ index . "$1" }}`)

	tmpl, err := template.New(id).Funcs(templateFuncs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// render executes tmpl against data.
func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
