package cli

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/rhaeguard/pfx"
)

type treeResult struct {
	Pattern string `json:"pattern"`
	Postfix string `json:"postfix"`
	Infix   string `json:"infix"`
}

func newTreeCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree <pattern>",
		Short: "Show the expression tree a pattern's postfix form encodes",
		Long: `Evaluate the postfix form of a pattern on a stack machine and print the
resulting expression tree.

Formats:
  infix  fully parenthesised infix, e.g. "abc" prints "((a·b)·c)"
  dot    Graphviz digraph
  dump   structural dump of the tree nodes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			out, err := pfx.Compile(pattern, opts.cfg.Mode)
			if err != nil {
				opts.log.WithField("pattern", pattern).WithError(err).Warn("conversion failed")
				return fmt.Errorf("failed to convert %q: %w", pattern, err)
			}

			root, err := out.Tree()
			if err != nil {
				opts.log.WithField("postfix", out.String()).WithError(err).Warn("tree assembly failed")
				return fmt.Errorf("failed to build tree for %q: %w", pattern, err)
			}

			stdout := cmd.OutOrStdout()
			switch format {
			case "infix":
				infix := ""
				if root != nil {
					infix = root.String()
				}
				if opts.jsonOutput {
					return outputJSON(stdout, treeResult{Pattern: pattern, Postfix: out.String(), Infix: infix})
				}
				if root == nil {
					printDim(stdout, "(empty)")
					return nil
				}
				_, _ = fmt.Fprintln(stdout, infix)
			case "dot":
				return pfx.WriteDot(stdout, root)
			case "dump":
				printer := pp.New()
				printer.SetOutput(stdout)
				printer.SetColoringEnabled(false)
				_, err := printer.Println(root)
				return err
			default:
				return fmt.Errorf("unknown format %q (want infix, dot or dump)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "infix", "Output format: infix, dot or dump")
	return cmd
}
