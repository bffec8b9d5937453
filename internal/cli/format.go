package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	errorColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgWhite, color.Bold)
	valueColor = color.New(color.FgCyan)
	dimColor   = color.New(color.FgHiBlack)
)

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// FormatError is formatError for the binary's entry point.
func FormatError(err error) string {
	return formatError(err)
}

// printError prints a failure message with a cross
func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printLabelValue prints a label-value pair with proper formatting
func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %-9s", label+":")
	_, _ = valueColor.Fprintln(w, value)
}

// printDim prints a de-emphasised line
func printDim(w io.Writer, msg string) {
	_, _ = dimColor.Fprintln(w, msg)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func countNoun(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
