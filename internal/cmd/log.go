package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
)

var (
	logTail  int
	logType  string
	logRun   string
	logSince string
	logFile  string
)

var logCmd = &cobra.Command{
	Use:     "log",
	GroupID: GroupDiag,
	Short:   "View the run log",
	Long: `View events recorded in the run log (log_file in the config, or
CZ_LOG_FILE). Each cz invocation gets a run ID; every search, eval,
decode, grow and sequence call is logged under it, as are failures.

Events:
  search  - permutation search
  eval    - single ladder evaluation
  decode  - node decoded to a path
  grow    - greedy ladder growth
  seq     - forward sequence or stopping-time range
  error   - failed invocation

Examples:
  cz log                     # Show last 20 events
  cz log -n 50               # Show last 50 events
  cz log --type search       # Show only searches
  cz log --run 1f0c          # Show events of one run
  cz log --since 1h          # Show events from the last hour`,
	Args: cobra.NoArgs,
	RunE: runLogCmd,
}

func init() {
	logCmd.Flags().IntVarP(&logTail, "tail", "n", 20, "Number of events to show (0 for all)")
	logCmd.Flags().StringVarP(&logType, "type", "t", "", "Filter by event type (search,eval,decode,grow,seq,error)")
	logCmd.Flags().StringVar(&logRun, "run", "", "Filter by run ID prefix")
	logCmd.Flags().StringVar(&logSince, "since", "", "Show events since duration (e.g., 1h, 30m, 24h)")
	logCmd.Flags().StringVar(&logFile, "file", "", "Read this log file instead of the configured one")

	rootCmd.AddCommand(logCmd)
}

func runLogCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	path := logFile
	if path == "" {
		path = appConfig.LogFile
	}
	if path == "" {
		fmt.Fprintf(out, "%s Run log is off (set log_file in the config or %s)\n", style.Dim.Render("○"), "CZ_LOG_FILE")
		return nil
	}

	events, err := runlog.ReadEvents(path)
	if err != nil {
		return fmt.Errorf("reading events: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintf(out, "%s No events in %s\n", style.Dim.Render("○"), path)
		return nil
	}

	filter := runlog.Filter{Type: runlog.EventType(logType), Run: logRun}
	if logSince != "" {
		d, err := time.ParseDuration(logSince)
		if err != nil {
			return invalidArg("invalid --since duration %q", logSince)
		}
		filter.Since = time.Now().Add(-d)
	}

	events = runlog.FilterEvents(events, filter)
	if logTail > 0 && len(events) > logTail {
		events = events[len(events)-logTail:]
	}

	if len(events) == 0 {
		fmt.Fprintf(out, "%s No events match filter\n", style.Dim.Render("○"))
		return nil
	}
	for _, e := range events {
		printEvent(out, e)
	}
	return nil
}

// printEvent prints one event with its type colour-coded.
func printEvent(w io.Writer, e runlog.Event) {
	ts := e.Timestamp.Format("2006-01-02 15:04:05")

	tag := fmt.Sprintf("[%s]", e.Type)
	switch e.Type {
	case runlog.EventSearch:
		tag = style.Info.Render(tag)
	case runlog.EventError:
		tag = style.Error.Render(tag)
	case runlog.EventGrow, runlog.EventDecode:
		tag = style.Success.Render(tag)
	default:
		tag = style.Bold.Render(tag)
	}

	fmt.Fprintf(w, "%s %s %s %s\n", style.Dim.Render(ts), tag, style.Dim.Render(e.Run), e.Context)
}
