package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ravenscar-systems/vterm/vterm"
)

var (
	dumpCols int
	dumpRows int
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "feed a file of raw bytes through the core and print the resulting grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().IntVar(&dumpCols, "cols", 80, "terminal width")
	dumpCmd.Flags().IntVar(&dumpRows, "rows", 25, "terminal height")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("ravenvtd: read %s: %w", args[0], err)
	}

	vt, err := vterm.New(vterm.Callbacks{})
	if err != nil {
		return fmt.Errorf("ravenvtd: new terminal: %w", err)
	}
	defer vt.Shutdown()

	if err := vt.SetMode(vterm.Mode{ScrW: dumpCols, ScrH: dumpRows, Flags: vterm.ModeColor | vterm.ModeScroll}); err != nil {
		return fmt.Errorf("ravenvtd: set mode: %w", err)
	}

	vt.Write(data)

	mode := vt.Mode()
	var sb strings.Builder
	for y := 0; y < mode.ScrH; y++ {
		for x := 0; x < mode.ScrW; x++ {
			c := vt.Cell(x, y).Chr
			if c == 0 {
				c = ' '
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(cmd.OutOrStdout(), sb.String())
	log.Infow("dumped bytes through core", "file", args[0], "bytes", len(data))
	return nil
}
