package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
)

// Set with -ldflags "-X github.com/collatzlab/cz/internal/cmd.Version=...".
var (
	Version = "0.3.0"
	Build   = "dev"
	Commit  = ""
)

var versionJSON bool

type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit,omitempty"`
	Go      string `json:"go"`
	// MaxExponentSum is reported so bug reports show the overflow bound in use.
	MaxExponentSum int `json:"max_exponent_sum"`
}

var versionCmd = &cobra.Command{
	Use:         "version",
	GroupID:     GroupDiag,
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfig: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := currentVersion()
		if versionJSON {
			return writeJSON(cmd.OutOrStdout(), info)
		}
		line := fmt.Sprintf("cz version %s (%s", info.Version, info.Build)
		if info.Commit != "" {
			line += ": " + shortCommit(info.Commit)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line+")")
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(versionCmd)
}

func currentVersion() versionInfo {
	info := versionInfo{
		Version:        Version,
		Build:          Build,
		Commit:         Commit,
		Go:             runtime.Version(),
		MaxExponentSum: ladder.MaxExponentSum,
	}
	if info.Commit != "" {
		return info
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = s.Value
				break
			}
		}
	}
	return info
}

func shortCommit(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
