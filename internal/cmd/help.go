package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ui"
)

// helpRule restyles every match of re in help text.
type helpRule struct {
	re    *regexp.Regexp
	apply func(groups []string) string
}

var helpRules = []helpRule{
	{
		// "Ladders:" and the other group titles
		re:    regexp.MustCompile(`(?m)^([A-Z][A-Za-z ]+:)[ \t]*$`),
		apply: func(g []string) string { return ui.RenderAccent(g[1]) },
	},
	{
		re:    regexp.MustCompile(`(?m)^(Usage|Examples|Flags|Global Flags|Aliases|Available Commands|Additional Commands):`),
		apply: func(g []string) string { return ui.RenderAccent(g[1]) + ":" },
	},
	{
		// example invocations inside Long text
		re: regexp.MustCompile(`(?m)^(  )(cz(?: [^#\n]*[^ #\n])?)( *)(#.*)?$`),
		apply: func(g []string) string {
			return g[1] + ui.RenderBold(g[2]) + g[3] + ui.RenderMuted(g[4])
		},
	},
	{
		re: regexp.MustCompile(`(?m)^(  )([a-z][a-z-]*)( {2,})(.*)$`),
		apply: func(g []string) string {
			return g[1] + ui.RenderBold(g[2]) + g[3] + highlightHints(g[4])
		},
	},
	{
		re: regexp.MustCompile(`(?m)^( +)((?:-\w, )?--[\w-]+)( \w+)?( +)(.*)$`),
		apply: func(g []string) string {
			return g[1] + ui.RenderBold(g[2]) + ui.RenderMuted(g[3]) + g[4] + highlightHints(g[5])
		},
	},
}

var hintRE = regexp.MustCompile(`\(start here\)|\(default [^)]*\)|'cz [a-z ]+'`)

// highlightHints colours "(start here)", "(default ...)" and quoted
// command references inside a description.
func highlightHints(desc string) string {
	return hintRE.ReplaceAllStringFunc(desc, func(m string) string {
		switch {
		case strings.HasPrefix(m, "(start"):
			return ui.RenderAccent(m)
		case strings.HasPrefix(m, "'"):
			return "'" + ui.RenderBold(m[1:len(m)-1]) + "'"
		default:
			return ui.RenderMuted(m)
		}
	})
}

// colorizeHelpOutput applies helpRules in order. Text is never added or
// dropped, only wrapped in styles.
func colorizeHelpOutput(help string) string {
	for _, rule := range helpRules {
		help = rule.re.ReplaceAllStringFunc(help, func(m string) string {
			return rule.apply(rule.re.FindStringSubmatch(m))
		})
	}
	return help
}

func helpFunc(cmd *cobra.Command, _ []string) {
	text := cmd.Long
	if text == "" {
		text = cmd.Short
	}
	var b strings.Builder
	if text != "" {
		b.WriteString(strings.TrimRight(text, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(cmd.UsageString())
	fmt.Fprint(cmd.OutOrStdout(), colorizeHelpOutput(b.String()))
}

func init() {
	rootCmd.SetHelpFunc(helpFunc)
}
