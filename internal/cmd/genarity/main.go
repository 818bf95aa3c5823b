// The genarity command writes the per-arity source files of the lambda,
// tuple and tuplefunc packages. It is run by go generate:
//
//	genarity -c ../genarity.yaml -t lambda
//
// With no -t flags every target in the configuration is generated.
// The -n flag reports the targets that are out of date without
// writing anything, and exits with status 1 if there are any.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog/v2"
	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/rogpeppe/arity/internal/gen"
)

type options struct {
	Config   string   `short:"c" long:"config" description:"path to the generator configuration" default:"genarity.yaml"`
	Targets  []string `short:"t" long:"target" description:"target to generate (may be repeated; default all)"`
	DryRun   bool     `short:"n" long:"dry-run" description:"report out of date targets without writing them"`
	LogLevel string   `long:"loglevel" description:"logging level: trace, debug, info, warn, error, critical or off" default:"info"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "genarity: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := setupLogging(os.Stderr, opts.LogLevel); err != nil {
		return err
	}
	cfg, err := gen.Load(opts.Config)
	if err != nil {
		return err
	}
	changed, err := gen.Run(cfg, opts.Targets, opts.DryRun)
	if err != nil {
		return err
	}
	if opts.DryRun && len(changed) > 0 {
		return fmt.Errorf("out of date: %s", strings.Join(changed, ", "))
	}
	return nil
}

// setupLogging directs the generator's log output to w. Timestamps
// are only written when w is a terminal.
func setupLogging(w *os.File, level string) error {
	var handlerOpts []btclog.HandlerOption
	if !term.IsTerminal(int(w.Fd())) {
		handlerOpts = append(handlerOpts, btclog.WithNoTimestamp())
	}
	logger := btclog.NewSLogger(btclog.NewDefaultHandler(w, handlerOpts...))
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}
	logger.SetLevel(lvl)
	gen.UseLogger(logger.SubSystem(gen.Subsystem))
	return nil
}
