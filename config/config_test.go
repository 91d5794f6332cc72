package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cardiac/cpu"
	"github.com/ezrec/cardiac/io"
)

func writeFile(t *testing.T, name string, text string) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(9, cfg.Assembler.MaxVariables)
	assert.Equal(100, cfg.Deck.Capacity)
	assert.Equal(io.DECK_ZERO, cfg.Deck.Exhausted)
	assert.Equal(cpu.ORIGIN, cfg.Machine.Entry)
	assert.Equal(0, cfg.Machine.MaxTicks)
	assert.NoError(cfg.Validate())
}

func TestLoadToml(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "cardiac.toml", `
[assembler]
max_variables = 4

[deck]
capacity = 20
exhausted = "repeat"

[machine]
entry = 0
max_ticks = 1000
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(4, cfg.Assembler.MaxVariables)
	assert.Equal(20, cfg.Deck.Capacity)
	assert.Equal(io.DECK_REPEAT, cfg.Deck.Exhausted)
	assert.Equal(0, cfg.Machine.Entry)
	assert.Equal(1000, cfg.Machine.MaxTicks)
	assert.False(cfg.Machine.Verbose)
}

func TestLoadYaml(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "cardiac.yaml", `
deck:
  exhausted: error
machine:
  max_ticks: 50
  verbose: true
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(9, cfg.Assembler.MaxVariables)
	assert.Equal(100, cfg.Deck.Capacity)
	assert.Equal(io.DECK_ERROR, cfg.Deck.Exhausted)
	assert.Equal(cpu.ORIGIN, cfg.Machine.Entry)
	assert.Equal(50, cfg.Machine.MaxTicks)
	assert.True(cfg.Machine.Verbose)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		file string
		text string
		err  error
	}){
		{"format", "cardiac.ini", "", ErrFormat},
		{"entry", "cardiac.toml", "[machine]\nentry = 100\n", ErrEntry},
		{"ticks", "cardiac.yml", "machine:\n  max_ticks: -1\n", ErrMaxTicks},
		{"capacity", "cardiac.toml", "[deck]\ncapacity = -5\n", ErrCapacity},
		{"variables", "cardiac.toml", "[assembler]\nmax_variables = 10\n", cpu.ErrVariableLimit},
	}

	for _, entry := range table {
		path := writeFile(t, entry.file, entry.text)
		_, err := Load(path)
		assert.ErrorIs(err, entry.err, entry.name)
	}

	path := writeFile(t, "policy.toml", "[deck]\nexhausted = \"sometimes\"\n")
	_, err := Load(path)
	assert.Error(err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
