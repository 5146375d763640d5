package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ravenscar-systems/vterm/config"
	"github.com/ravenscar-systems/vterm/ptybridge"
	"github.com/ravenscar-systems/vterm/vterm"
)

var (
	runCols     int
	runRows     int
	runInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "attach a pty-backed shell to the core and stream a snapshot",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runCols, "cols", 80, "terminal width")
	runCmd.Flags().IntVar(&runRows, "rows", 25, "terminal height")
	runCmd.Flags().DurationVar(&runInterval, "interval", 200*time.Millisecond, "snapshot print interval")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Warnw("loading config, falling back to defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	sess, err := ptybridge.Open(cfg, uint16(runCols), uint16(runRows), vterm.Callbacks{}, log)
	if err != nil {
		return fmt.Errorf("ravenvtd: open session: %w", err)
	}
	defer sess.Close()

	go func() {
		if err := sess.Pump(); err != nil {
			log.Debugw("pump stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			log.Infow("interrupted, shutting down")
			return nil
		case <-ticker.C:
			if sess.HasExited() {
				log.Infow("shell exited")
				return nil
			}
			printSnapshot(sess.Terminal())
		}
	}
}

// printSnapshot renders the live grid as plain text: rows joined by
// newlines, trailing NUL cells rendered as spaces.
func printSnapshot(vt *vterm.Terminal) {
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
	fmt.Print("\033[2J\033[H", sb.String())
}
