package gen_test

import (
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/arity/internal/gen"
)

func TestLoad(t *testing.T) {
	cfg, err := gen.Load(filepath.Join("testdata", "small.yaml"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.MaxArity, 2))
	qt.Assert(t, qt.Equals(cfg.Header, "// Code generated for testing; DO NOT EDIT."))
	qt.Assert(t, qt.DeepEquals(cfg.Targets, []gen.Target{{
		Name:     "tuple",
		Package:  "tuple",
		Template: "tuple.tmpl",
		Output:   "out/tuple_gen.go",
	}, {
		Name:     "tuplefunc",
		Package:  "tuplefunc",
		Template: "tuplefunc.tmpl",
		Output:   "out/tuplefunc_gen.go",
	}, {
		Name:     "fn",
		Package:  "lambda",
		Template: "lambda.tmpl",
		Output:   "out/lambda_gen.go",
	}}))

	target, ok := cfg.Target("fn")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(cfg.OutputPath(target), filepath.Join("testdata", "out", "lambda_gen.go")))

	_, ok = cfg.Target("nope")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := gen.Load(filepath.Join("testdata", "missing.yaml"))
	qt.Assert(t, qt.ErrorMatches(err, `cannot read config: .*`))
}

func TestParseDefaults(t *testing.T) {
	cfg, err := gen.Parse([]byte(`
targets:
  - name: lambda
    output: lambda_gen.go
`), "dir")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.MaxArity, gen.MaxSupportedArity))
	qt.Assert(t, qt.Equals(cfg.Header, gen.DefaultHeader))
	qt.Assert(t, qt.Equals(cfg.Targets[0].Package, "lambda"))
	qt.Assert(t, qt.Equals(cfg.Targets[0].Template, "lambda.tmpl"))
	qt.Assert(t, qt.Equals(cfg.OutputPath(cfg.Targets[0]), filepath.Join("dir", "lambda_gen.go")))
}

var parseErrorTests = []struct {
	about  string
	config string
	err    string
}{{
	about:  "no targets",
	config: `max-arity: 3`,
	err:    `no targets`,
}, {
	about: "arity too large",
	config: `
max-arity: 14
targets:
  - {name: lambda, output: x.go}
`,
	err: `max-arity 14 out of range \[1, 13\]`,
}, {
	about: "negative arity",
	config: `
max-arity: -1
targets:
  - {name: lambda, output: x.go}
`,
	err: `max-arity -1 out of range \[1, 13\]`,
}, {
	about: "duplicate target",
	config: `
targets:
  - {name: lambda, output: x.go}
  - {name: lambda, output: y.go}
`,
	err: `duplicate target "lambda"`,
}, {
	about: "missing output",
	config: `
targets:
  - {name: lambda}
`,
	err: `target "lambda" has no output`,
}, {
	about: "empty name",
	config: `
targets:
  - {output: x.go}
`,
	err: `target with empty name`,
}, {
	about: "unknown template",
	config: `
targets:
  - {name: other, output: x.go}
`,
	err: `target "other": unknown template "other.tmpl"`,
}, {
	about: "unknown field",
	config: `
maxarity: 3
targets:
  - {name: lambda, output: x.go}
`,
	err: `cannot parse config: (.|\n)*field maxarity not found(.|\n)*`,
}}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.about, func(t *testing.T) {
			_, err := gen.Parse([]byte(test.config), ".")
			qt.Assert(t, qt.ErrorMatches(err, test.err))
		})
	}
}
