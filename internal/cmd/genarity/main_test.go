package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/arity/internal/gen"
)

func writeConfig(t *testing.T) string {
	t.Cleanup(gen.DisableLog)
	dir := t.TempDir()
	path := filepath.Join(dir, "genarity.yaml")
	err := os.WriteFile(path, []byte(`
max-arity: 3
targets:
  - name: tuple
    output: tuple_gen.go
`), 0o666)
	qt.Assert(t, qt.IsNil(err))
	return path
}

func TestRunDryRun(t *testing.T) {
	path := writeConfig(t)
	err := run(options{
		Config:   path,
		DryRun:   true,
		LogLevel: "off",
	})
	qt.Assert(t, qt.ErrorMatches(err, `out of date: tuple`))
	_, err = os.Stat(filepath.Join(filepath.Dir(path), "tuple_gen.go"))
	qt.Assert(t, qt.IsTrue(os.IsNotExist(err)))
}

func TestRunWrites(t *testing.T) {
	path := writeConfig(t)
	opts := options{
		Config:   path,
		LogLevel: "off",
	}
	qt.Assert(t, qt.IsNil(run(opts)))
	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "tuple_gen.go"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(data), "type T3[A0, A1, A2 any] struct {"))

	// A dry run now finds nothing to do.
	opts.DryRun = true
	qt.Assert(t, qt.IsNil(run(opts)))
}

func TestRunBadLogLevel(t *testing.T) {
	err := run(options{
		Config:   writeConfig(t),
		LogLevel: "loud",
	})
	qt.Assert(t, qt.ErrorMatches(err, `unknown log level "loud"`))
}

func TestRunMissingConfig(t *testing.T) {
	t.Cleanup(gen.DisableLog)
	err := run(options{
		Config:   filepath.Join(t.TempDir(), "nope.yaml"),
		LogLevel: "off",
	})
	qt.Assert(t, qt.ErrorMatches(err, `cannot read config: .*`))
}

func TestSetupLogging(t *testing.T) {
	logFile, err := os.Create(filepath.Join(t.TempDir(), "log"))
	qt.Assert(t, qt.IsNil(err))
	defer logFile.Close()

	qt.Assert(t, qt.IsNil(setupLogging(logFile, "debug")))
	cfg, err := gen.Load(writeConfig(t))
	qt.Assert(t, qt.IsNil(err))
	_, err = gen.Run(cfg, nil, false)
	qt.Assert(t, qt.IsNil(err))

	data, err := os.ReadFile(logFile.Name())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(data), "Generating "))
	qt.Assert(t, qt.StringContains(string(data), "tuple_gen.go"))
}

func TestSetupLoggingOff(t *testing.T) {
	logFile, err := os.Create(filepath.Join(t.TempDir(), "log"))
	qt.Assert(t, qt.IsNil(err))
	defer logFile.Close()

	qt.Assert(t, qt.IsNil(setupLogging(logFile, "off")))
	cfg, err := gen.Load(writeConfig(t))
	qt.Assert(t, qt.IsNil(err))
	_, err = gen.Run(cfg, nil, true)
	qt.Assert(t, qt.IsNil(err))

	data, err := os.ReadFile(logFile.Name())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), ""))
}
