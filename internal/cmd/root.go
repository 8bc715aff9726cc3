// Package cmd implements the cz command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/config"
	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/ui"
)

// Command groups shown in help.
const (
	GroupLadder  = "ladder"
	GroupForward = "forward"
	GroupDiag    = "diag"
)

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

var (
	configPath string
	noPager    bool

	appConfig *config.Config
	runLog    *runlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cz",
	Short: "Division-ladder verification and permutation search for the Collatz map",
	Long: `cz explores the inverse Collatz tree through division ladders.

A ladder starts at a stem R, multiplies by powers of two and divides by
three while the result stays on a branch. 'cz search' evaluates every
distinct ordering of a multiset of exponents; 'cz decode' walks back
from any node to the stem and exponents that reach it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupLadder, Title: "Ladders:"},
		&cobra.Group{ID: GroupForward, Title: "Forward Sequence:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/cz/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noPager, "no-pager", false, "Do not page long output")
}

// setup loads config, applies the theme and opens the run log.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		appConfig = config.Default()
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
	}
	ui.InitTheme(appConfig.Theme)
	runLog = runlog.New(appConfig.LogFile, runlog.NewRunID())
	return nil
}

// logEvent records an event and reports (but never fails on) log errors.
func logEvent(cmd *cobra.Command, t runlog.EventType, format string, args ...any) {
	if err := runLog.Log(t, format, args...); err != nil {
		style.PrintWarning(cmd.ErrOrStderr(), "run log: %v", err)
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		if runLog != nil {
			_ = runLog.Log(runlog.EventError, "%v", err)
		}
		return ExitCode(err)
	}
	return 0
}
