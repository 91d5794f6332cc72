// Package config holds the tunable options of the assembler, the deck
// and the machine, and loads them from TOML or YAML files.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/cardiac/cpu"
	"github.com/ezrec/cardiac/io"
	"github.com/ezrec/cardiac/translate"
)

var f = translate.From

var (
	ErrFormat   = errors.New(f("config format unknown"))
	ErrEntry    = errors.New(f("entry address out of range"))
	ErrMaxTicks = errors.New(f("max ticks is negative"))
	ErrCapacity = errors.New(f("deck capacity is negative"))
)

// Assembler options.
type Assembler struct {
	MaxVariables int  `toml:"max_variables" yaml:"max_variables"`
	Verbose      bool `toml:"verbose" yaml:"verbose"`
}

// Deck options.
type Deck struct {
	Capacity  int           `toml:"capacity" yaml:"capacity"`
	Exhausted io.DeckPolicy `toml:"exhausted" yaml:"exhausted"`
}

// Machine options.
type Machine struct {
	Entry    int  `toml:"entry" yaml:"entry"`
	MaxTicks int  `toml:"max_ticks" yaml:"max_ticks"`
	Verbose  bool `toml:"verbose" yaml:"verbose"`
}

// Config is the complete option set.
type Config struct {
	Assembler Assembler `toml:"assembler" yaml:"assembler"`
	Deck      Deck      `toml:"deck" yaml:"deck"`
	Machine   Machine   `toml:"machine" yaml:"machine"`
}

// Default returns the options of the classic machine.
func Default() (cfg Config) {
	cfg = Config{
		Assembler: Assembler{
			MaxVariables: cpu.VARIABLE_LIMIT,
		},
		Deck: Deck{
			Capacity:  io.DECK_SIZE,
			Exhausted: io.DECK_ZERO,
		},
		Machine: Machine{
			Entry: cpu.ORIGIN,
		},
	}

	return
}

// Load reads a configuration file on top of the defaults.
// The format is chosen by the file extension.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.DecodeFile(path, &cfg)
	case ".yaml", ".yml":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return
		}
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = ErrFormat
	}
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// Validate checks the options for consistency.
func (cfg Config) Validate() (err error) {
	if cfg.Machine.Entry < 0 || cfg.Machine.Entry >= cpu.MEMORY_SIZE {
		err = ErrEntry
		return
	}
	if cfg.Machine.MaxTicks < 0 {
		err = ErrMaxTicks
		return
	}
	if cfg.Deck.Capacity < 0 {
		err = ErrCapacity
		return
	}
	if cfg.Assembler.MaxVariables < 0 || cfg.Assembler.MaxVariables > cpu.VARIABLE_LIMIT {
		err = cpu.ErrVariableLimit
		return
	}

	return
}
