// Command ravenvtd is a small host around the vterm core: run attaches a
// pty-backed shell and streams a plain-text snapshot of the live grid,
// dump feeds a file of raw bytes through the core and prints the
// resulting grid once.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	debug bool
	log   *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "ravenvtd",
	Short: "vterm host daemon",
	Long:  "ravenvtd drives the vterm terminal core against a real pty or a recorded byte stream.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var logger *zap.Logger
		var err error
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("ravenvtd: build logger: %w", err)
		}
		log = logger.Sugar()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable development logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
