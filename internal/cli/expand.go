package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhaeguard/pfx"
)

type expansionResult struct {
	Pattern  string `json:"pattern"`
	Expanded string `json:"expanded"`
}

func newExpandCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "expand [pattern...]",
		Short: "Insert explicit concatenation markers",
		Long: `Print each pattern with '·' inserted wherever concatenation is implicit,
e.g. "a(b|c)*d" becomes "a·(b|c)*·d". No validation is performed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := collectPatterns(cmd, args, file)
			if err != nil {
				return err
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no patterns given")
			}

			results := make([]expansionResult, 0, len(patterns))
			for _, pattern := range patterns {
				expanded := pfx.Expand(pattern)
				opts.log.WithField("pattern", pattern).WithField("expanded", expanded).Debug("expanded")
				results = append(results, expansionResult{Pattern: pattern, Expanded: expanded})
			}

			if opts.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), r.Expanded)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read one pattern per line from a file (- for stdin)")
	return cmd
}
