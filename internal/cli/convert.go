package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhaeguard/pfx"
)

type tokenView struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type conversionResult struct {
	Pattern  string      `json:"pattern"`
	Expanded string      `json:"expanded"`
	Postfix  string      `json:"postfix"`
	Tokens   []tokenView `json:"tokens,omitempty"`
	Error    string      `json:"error,omitempty"`
	Pos      *int        `json:"pos,omitempty"`
}

func convertPattern(pattern string, mode pfx.Mode) (conversionResult, error) {
	result := conversionResult{
		Pattern:  pattern,
		Expanded: pfx.Expand(pattern),
	}

	out, err := pfx.Compile(pattern, mode)
	if err != nil {
		result.Error = err.Error()
		var regexErr *pfx.RegexError
		if errors.As(err, &regexErr) {
			pos := regexErr.Pos
			result.Pos = &pos
		}
		return result, err
	}

	result.Postfix = out.String()
	for _, tok := range out {
		result.Tokens = append(result.Tokens, tokenView{
			Kind:  tok.Kind.String(),
			Value: tok.String(),
		})
	}
	return result, nil
}

func newConvertCmd(opts *options) *cobra.Command {
	var file string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert [pattern...]",
		Short: "Print the postfix form of each pattern",
		Long: `Convert each pattern to postfix notation and print one result per line.

Tokens are separated by single spaces and the concatenation operator is
rendered as '·'. For example "a(b|c)*" becomes "a b c | * ·".`,
		Example: `  pfx convert 'ab|c'
  pfx convert --lenient 'a(b'
  pfx convert -f patterns.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := collectPatterns(cmd, args, file)
			if err != nil {
				return err
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no patterns given")
			}

			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			results := make([]conversionResult, 0, len(patterns))
			failed := 0

			for _, pattern := range patterns {
				result, err := convertPattern(pattern, opts.cfg.Mode)
				results = append(results, result)

				fields := logrus.Fields{"pattern": pattern, "expanded": result.Expanded}
				if err != nil {
					failed++
					opts.log.WithFields(fields).WithError(err).Warn("conversion failed")
					if !opts.jsonOutput {
						printError(stderr, fmt.Sprintf("%q: %v", pattern, err))
					}
					continue
				}
				opts.log.WithFields(fields).WithField("postfix", result.Postfix).Debug("converted")

				if opts.jsonOutput {
					continue
				}
				if verbose {
					printLabelValue(stdout, "pattern", pattern)
					printLabelValue(stdout, "expanded", result.Expanded)
					printLabelValue(stdout, "postfix", result.Postfix)
				} else {
					_, _ = fmt.Fprintln(stdout, result.Postfix)
				}
			}

			if opts.jsonOutput {
				if err := outputJSON(stdout, results); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%s of %d failed", countNoun(failed, "pattern", "patterns"), len(patterns))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read one pattern per line from a file (- for stdin)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the expanded pattern alongside the result")
	return cmd
}
