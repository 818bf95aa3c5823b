package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxSupportedArity is the largest arity the templates may be asked for.
const MaxSupportedArity = 13

// DefaultHeader is the banner written at the top of each generated file
// when the configuration does not provide one.
const DefaultHeader = "// Code generated by genarity; DO NOT EDIT."

// Config holds the generator configuration, usually read from
// genarity.yaml at the module root.
type Config struct {
	// MaxArity is the largest arity to generate code for.
	// Code is always generated for every arity from zero up to it.
	MaxArity int `yaml:"max-arity"`

	// Header is written at the top of each generated file.
	Header string `yaml:"header"`

	// Targets lists the files to generate.
	Targets []Target `yaml:"targets"`

	// dir holds the directory that relative output paths are resolved
	// against.
	dir string
}

// Target describes one generated file.
type Target struct {
	// Name identifies the target on the command line.
	Name string `yaml:"name"`

	// Package is the package clause of the generated file.
	// It defaults to Name.
	Package string `yaml:"package"`

	// Template names one of the embedded templates.
	// It defaults to Name with a ".tmpl" suffix.
	Template string `yaml:"template"`

	// Output is the path of the generated file, relative to the
	// directory holding the configuration file.
	Output string `yaml:"output"`
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration data. Relative output paths are
// resolved against dir.
func Parse(data []byte, dir string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	cfg.dir = dir
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.MaxArity == 0 {
		cfg.MaxArity = MaxSupportedArity
	}
	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Package == "" {
			t.Package = t.Name
		}
		if t.Template == "" {
			t.Template = t.Name + ".tmpl"
		}
	}
}

func (cfg *Config) validate() error {
	if cfg.MaxArity < 1 || cfg.MaxArity > MaxSupportedArity {
		return fmt.Errorf("max-arity %d out of range [1, %d]", cfg.MaxArity, MaxSupportedArity)
	}
	if len(cfg.Targets) == 0 {
		return errors.New("no targets")
	}
	seen := make(map[string]bool)
	for _, t := range cfg.Targets {
		if t.Name == "" {
			return errors.New("target with empty name")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate target %q", t.Name)
		}
		seen[t.Name] = true
		if t.Output == "" {
			return fmt.Errorf("target %q has no output", t.Name)
		}
		if !hasTemplate(t.Template) {
			return fmt.Errorf("target %q: unknown template %q", t.Name, t.Template)
		}
	}
	return nil
}

// Target returns the target with the given name.
func (cfg *Config) Target(name string) (Target, bool) {
	for _, t := range cfg.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// OutputPath returns the path that t's generated code is written to.
func (cfg *Config) OutputPath(t Target) string {
	if filepath.IsAbs(t.Output) {
		return t.Output
	}
	return filepath.Join(cfg.dir, t.Output)
}
