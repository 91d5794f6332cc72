package main

import (
	"fmt"
	"log"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/cardiac/emulator"
)

var asmPretty bool

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file and print its memory image",
	Long: `Asm assembles a .card source file and prints the resulting memory
image as a 10x10 grid of words, row by row from address 00.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()
		emu.Configure(cfg)

		prog, err := assemble(args[0], emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		if asmPretty {
			pp.Println(prog)
			return
		}

		fmt.Print(prog.String())
	},
}

func init() {
	asmCmd.Flags().BoolVar(&asmPretty, "pp", false, "pretty print the assembled program")
	rootCmd.AddCommand(asmCmd)
}
