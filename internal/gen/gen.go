// Package gen generates the per-arity code of the lambda, tuple and
// tuplefunc packages from a single template per package.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"),
)

func hasTemplate(name string) bool {
	return templates.Lookup(name) != nil
}

// TemplateNames returns the names of the embedded templates.
func TemplateNames() []string {
	names, err := fs.Glob(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
	for i, name := range names {
		names[i] = name[len("templates/"):]
	}
	return names
}

// Arity is passed to the templates, once for each arity.
type Arity struct {
	N int
}

// params is the value the templates are executed with.
type params struct {
	Header   string
	Package  string
	MaxArity int
	Arities  []Arity
}

// Generate returns the formatted source of the file described by t.
func Generate(cfg *Config, t Target) ([]byte, error) {
	p := params{
		Header:   cfg.Header,
		Package:  t.Package,
		MaxArity: cfg.MaxArity,
	}
	for n := 0; n <= cfg.MaxArity; n++ {
		p.Arities = append(p.Arities, Arity{N: n})
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, t.Template, p); err != nil {
		return nil, fmt.Errorf("cannot execute template for %q: %w", t.Name, err)
	}
	src, err := imports.Process(cfg.OutputPath(t), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot format code for %q: %w", t.Name, err)
	}
	return src, nil
}

// Run generates the named targets, or all of them when names is empty,
// and writes each one that has changed. When dryRun is true nothing is
// written; the returned list still holds the targets that are out of
// date.
func Run(cfg *Config, names []string, dryRun bool) ([]string, error) {
	targets := cfg.Targets
	if len(names) > 0 {
		targets = nil
		for _, name := range names {
			t, ok := cfg.Target(name)
			if !ok {
				return nil, fmt.Errorf("unknown target %q", name)
			}
			targets = append(targets, t)
		}
	}
	var changed []string
	for _, t := range targets {
		path := cfg.OutputPath(t)
		log.Debugf("Generating %s from %s", path, t.Template)
		src, err := Generate(cfg, t)
		if err != nil {
			return nil, err
		}
		old, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if bytes.Equal(old, src) {
			log.Infof("%s is up to date", path)
			continue
		}
		changed = append(changed, t.Name)
		if dryRun {
			log.Infof("%s is out of date", path)
			continue
		}
		if err := os.WriteFile(path, src, 0o666); err != nil {
			return nil, fmt.Errorf("cannot write %s: %w", path, err)
		}
		log.Infof("Wrote %s (%d bytes)", path, len(src))
	}
	return changed, nil
}
