package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema is closed, so unknown keys in a config file are rejected.
const schema = `
target:   *"riscv64-linux" | "arm64-macos" | "x86_64-linux"
output:   *"a.out" | (string & !="")
verbose:  *false | bool
color:    *true | bool
maxSteps: *0 | (int & >=0)
`

// Config holds the settings a config file may provide.
type Config struct {
	Target   string `json:"target"`
	Output   string `json:"output"`
	Verbose  bool   `json:"verbose"`
	Color    bool   `json:"color"`
	MaxSteps int    `json:"maxSteps"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Target: "riscv64-linux",
		Output: "a.out",
		Color:  true,
	}
}

// Load reads and validates a CUE config file
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(content, path)
}

// Parse validates CUE source against the schema and decodes it, filling in defaults
func Parse(content []byte, filename string) (Config, error) {
	ctx := cuecontext.New()

	s := ctx.CompileString("close({" + schema + "})")
	if err := s.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config schema: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	unified := s.Unify(value)
	if err := unified.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", filename, err)
	}

	return cfg, nil
}
