package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/arity/internal/gen"
)

func loadSmall(t *testing.T) *gen.Config {
	// Copy the configuration so that generated files land in a
	// temporary directory.
	data, err := os.ReadFile(filepath.Join("testdata", "small.yaml"))
	qt.Assert(t, qt.IsNil(err))
	dir := t.TempDir()
	qt.Assert(t, qt.IsNil(os.Mkdir(filepath.Join(dir, "out"), 0o777)))
	path := filepath.Join(dir, "small.yaml")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, data, 0o666)))
	cfg, err := gen.Load(path)
	qt.Assert(t, qt.IsNil(err))
	return cfg
}

func generate(t *testing.T, cfg *gen.Config, name string) string {
	target, ok := cfg.Target(name)
	qt.Assert(t, qt.IsTrue(ok))
	src, err := gen.Generate(cfg, target)
	qt.Assert(t, qt.IsNil(err))
	return string(src)
}

func TestTemplateNames(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(gen.TemplateNames(), []string{"lambda.tmpl", "tuple.tmpl", "tuplefunc.tmpl"}))
}

func TestGenerateLambda(t *testing.T) {
	src := generate(t, loadSmall(t), "fn")
	qt.Assert(t, qt.StringContains(src, "// Code generated for testing; DO NOT EDIT.\n\npackage lambda\n"))
	qt.Assert(t, qt.StringContains(src, "const MaxArity = 2\n"))
	qt.Assert(t, qt.StringContains(src, "type Func0[R any] func() R\n"))
	qt.Assert(t, qt.StringContains(src, "type Func2[T1, T2, R any] func(T1, T2) R\n"))
	qt.Assert(t, qt.StringContains(src, "Curried() Func1[T1, Func1[T2, R]]\n"))
	qt.Assert(t, qt.StringContains(src, "Tupled() func(tuple.T1[T1]) R\n"))
	qt.Assert(t, qt.StringContains(src, "return Partial2(f, t1).Curried()\n"))
	qt.Assert(t, qt.Not(qt.StringContains(src, "Func3")))
}

func TestGenerateTuple(t *testing.T) {
	src := generate(t, loadSmall(t), "tuple")
	qt.Assert(t, qt.StringContains(src, "type T0 struct{}\n"))
	qt.Assert(t, qt.StringContains(src, "func MkT2[A0, A1 any](a0 A0, a1 A1) T2[A0, A1] {\n\treturn T2[A0, A1]{a0, a1}\n}\n"))
	qt.Assert(t, qt.StringContains(src, "func (t T1[A0]) T() A0 {\n"))
	qt.Assert(t, qt.StringContains(src, "panic(outOfRange(i, 2))"))
	qt.Assert(t, qt.Not(qt.StringContains(src, "T3")))
}

func TestGenerateTuplefunc(t *testing.T) {
	src := generate(t, loadSmall(t), "tuplefunc")
	qt.Assert(t, qt.StringContains(src, `import "github.com/rogpeppe/arity/tuple"`))
	qt.Assert(t, qt.StringContains(src, "func ToA_2[A0, A1, R any](f func(A0, A1) R) func(tuple.T2[A0, A1]) R {\n"))
	qt.Assert(t, qt.StringContains(src, "return f(tuple.MkT2(a0, a1))\n"))
}

func TestRun(t *testing.T) {
	cfg := loadSmall(t)

	changed, err := gen.Run(cfg, nil, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(changed, []string{"tuple", "tuplefunc", "fn"}))
	target, _ := cfg.Target("fn")
	_, err = os.Stat(cfg.OutputPath(target))
	qt.Assert(t, qt.IsTrue(os.IsNotExist(err)))

	changed, err = gen.Run(cfg, []string{"fn"}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(changed, []string{"fn"}))
	data, err := os.ReadFile(cfg.OutputPath(target))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), generate(t, cfg, "fn")))

	// Nothing changes the second time round.
	changed, err = gen.Run(cfg, []string{"fn"}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(changed, 0))
}

func TestRunUnknownTarget(t *testing.T) {
	_, err := gen.Run(loadSmall(t), []string{"nope"}, true)
	qt.Assert(t, qt.ErrorMatches(err, `unknown target "nope"`))
}

// TestCheckedInFilesAreCurrent checks that the generated files in the
// repository are exactly what the templates currently produce.
// Run go generate ./... if it fails.
func TestCheckedInFilesAreCurrent(t *testing.T) {
	cfg, err := gen.Load(filepath.Join("..", "..", "genarity.yaml"))
	qt.Assert(t, qt.IsNil(err))
	for _, target := range cfg.Targets {
		t.Run(target.Name, func(t *testing.T) {
			want, err := gen.Generate(cfg, target)
			qt.Assert(t, qt.IsNil(err))
			got, err := os.ReadFile(cfg.OutputPath(target))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(got), string(want)))
		})
	}
}
