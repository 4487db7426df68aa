// Package templates embeds and parses the console's HTML templates.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse builds the template set from the embedded files. Templates are named
// by base filename (run_command.html, history.html, login.html,
// forbidden.html) plus the shared header/footer partials.
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}

// Must is Parse for wiring paths where a parse error is a programming bug.
func Must() *template.Template {
	t, err := Parse()
	if err != nil {
		panic(err)
	}
	return t
}
