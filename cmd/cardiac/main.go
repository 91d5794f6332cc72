// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command cardiac assembles and runs programs for the cardiac decimal
// computer.
//
//	cardiac asm prog.card            # print the assembled memory image
//	cardiac dump prog.card           # print the assembly listing
//	cardiac run prog.card -d deck.txt
package main

import (
	"iter"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezrec/cardiac/config"
	"github.com/ezrec/cardiac/cpu"
	"github.com/ezrec/cardiac/translate"
)

// SOURCE_EXT is the required extension of assembly source files.
const SOURCE_EXT = ".card"

var f = translate.From

// ErrSourceName is a source file without the SOURCE_EXT extension.
type ErrSourceName string

func (err ErrSourceName) Error() string {
	return f("'%v' is not a %v file", string(err), SOURCE_EXT)
}

var (
	configPath string
	language   string
	verbose    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "cardiac",
	Short: "Assembler and emulator for the cardiac decimal computer",
	Long: `Cardiac assembles mnemonic source files into the 100 word memory of
a decimal computer with ten instructions, and runs them against a deck
of input cards. Each OUT instruction writes one line to standard output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if len(language) != 0 {
			err := translate.SetLanguage(language)
			if err != nil {
				log.Fatalf("%v: %v", language, err)
			}
		}

		if len(configPath) != 0 {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				log.Fatalf("%v: %v", configPath, err)
			}
		}

		if verbose {
			cfg.Assembler.Verbose = true
			cfg.Machine.Verbose = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "message language (BCP 47 tag)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// checkSourceName rejects files that are not assembly sources.
func checkSourceName(path string) (err error) {
	if filepath.Ext(path) != SOURCE_EXT || len(filepath.Base(path)) == len(SOURCE_EXT) {
		err = ErrSourceName(path)
	}

	return
}

// assemble parses a source file, with the defines visible to its
// $(...) expressions.
func assemble(path string, defines iter.Seq2[string, int]) (prog *cpu.Program, err error) {
	err = checkSourceName(path)
	if err != nil {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{
		Verbose:      cfg.Assembler.Verbose,
		MaxVariables: cfg.Assembler.MaxVariables,
	}
	for name, value := range defines {
		asm.Predefine(name, value)
	}

	prog, err = asm.Parse(inf)

	return
}

func main() {
	log.SetFlags(0)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
