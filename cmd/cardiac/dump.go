package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/cardiac/emulator"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump sourceFile",
	Short: "Assemble a source file and print its listing",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()
		emu.Configure(cfg)

		prog, err := assemble(args[0], emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		for _, st := range prog.Statements {
			fmt.Printf("%02d: %03d  %-8v ; %4d: %v\n",
				st.Address, int(st.Word), st.Word, st.LineNo, strings.Join(st.Words, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
