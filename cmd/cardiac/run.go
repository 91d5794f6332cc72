package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/cardiac/emulator"
	"github.com/ezrec/cardiac/io"
)

var (
	runDeck      string
	runEntry     int
	runMaxTicks  int
	runExhausted string
	runDump      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Assemble a source file and run it",
	Long: `Run assembles a .card source file, loads the input deck, and
executes the program from the entry address until it halts. Every OUT
instruction prints one line to standard output.

The deck is a list of whitespace separated integers, read from the file
given by --deck, or from standard input when the deck is '-'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()
		emu.Configure(cfg)

		flags := cmd.Flags()
		if flags.Changed("entry") {
			emu.Entry = runEntry
		}
		if flags.Changed("max-ticks") {
			emu.MaxTicks = runMaxTicks
		}
		if flags.Changed("exhausted") {
			err := emu.Deck.Exhausted.UnmarshalText([]byte(runExhausted))
			if err != nil {
				log.Fatalf("--exhausted: %v", err)
			}
		}

		prog, err := assemble(args[0], emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}
		emu.Program = prog

		switch runDeck {
		case "":
			// No deck; IN reads per the exhaustion policy.
		case "-":
			err = emu.Deck.Load(os.Stdin)
		default:
			var inf *os.File
			inf, err = os.Open(runDeck)
			if err != nil {
				log.Fatalf("%v: %v", runDeck, err)
			}
			defer inf.Close()
			err = emu.Deck.Load(inf)
		}
		if err != nil {
			log.Fatalf("%v: %v", runDeck, err)
		}

		output := bufio.NewWriter(os.Stdout)
		emu.Tape.Output = output

		err = emu.Reset()
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		err = emu.Run()
		output.Flush()
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		if emu.Verbose {
			log.Printf("%v: %v after %d ticks", args[0], emu.Cpu.Halt, emu.Ticks())
		}

		if runDump {
			fmt.Fprint(os.Stderr, emu.Cpu.String())
			fmt.Fprint(os.Stderr, emu.Cpu.Memory.String())
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&runDeck, "deck", "d", "", "input deck file, or '-' for stdin")
	runCmd.Flags().IntVar(&runEntry, "entry", 10, "address of the first instruction")
	runCmd.Flags().IntVar(&runMaxTicks, "max-ticks", 0, "stop with an error after this many ticks (0 is unlimited)")
	runCmd.Flags().StringVar(&runExhausted, "exhausted", io.DECK_ZERO.String(), "deck exhaustion policy: zero, repeat or error")
	runCmd.Flags().BoolVar(&runDump, "dump", false, "print the registers and memory grid to stderr on halt")
	rootCmd.AddCommand(runCmd)
}
