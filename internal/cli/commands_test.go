package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertCommand(t *testing.T) {
	out, _, err := run(t, "", "convert", "ab", "a|b|c", "a(b|c)*")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "a b ·\na b | c |\na b c | * ·\n"
	if out != want {
		t.Errorf("convert output = %q, want %q", out, want)
	}
}

func TestConvertCommand_Verbose(t *testing.T) {
	out, _, err := run(t, "", "convert", "-v", "ab*")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"a·b*", "a b * ·"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output %q should contain %q", out, want)
		}
	}
}

func TestConvertCommand_StrictFailure(t *testing.T) {
	out, errOut, err := run(t, "", "convert", "ab", "(a")
	if err == nil {
		t.Fatal("expected error for unbalanced pattern")
	}
	if !strings.Contains(err.Error(), "1 pattern of 2 failed") {
		t.Errorf("unexpected error %v", err)
	}
	if out != "a b ·\n" {
		t.Errorf("stdout = %q, want the successful conversion only", out)
	}
	if !strings.Contains(errOut, "MalformedPattern") {
		t.Errorf("stderr %q should report MalformedPattern", errOut)
	}
}

func TestConvertCommand_Lenient(t *testing.T) {
	out, _, err := run(t, "", "convert", "--lenient", "(a", "a.b")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "a (\na b\n" {
		t.Errorf("lenient output = %q", out)
	}
}

func TestConvertCommand_LenientFromEnv(t *testing.T) {
	t.Setenv("PFX_MODE", "lenient")

	cmd := NewRootCmd()
	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"convert", "a)"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if buf.String() != "a\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestConvertCommand_JSONOutput(t *testing.T) {
	out, _, err := run(t, "", "--json", "convert", "ab", "a|")
	if err == nil {
		t.Fatal("expected error for dangling union")
	}

	var results []conversionResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v, output: %q", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Postfix != "a b ·" || results[0].Expanded != "a·b" {
		t.Errorf("unexpected first result %+v", results[0])
	}
	if len(results[0].Tokens) != 3 || results[0].Tokens[2].Kind != "Concat" {
		t.Errorf("unexpected tokens %+v", results[0].Tokens)
	}

	if results[1].Error == "" || results[1].Pos == nil || *results[1].Pos != 1 {
		t.Errorf("unexpected second result %+v", results[1])
	}
}

func TestConvertCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	if err := os.WriteFile(path, []byte("ab\n\nab|c\r\n"), 0644); err != nil {
		t.Fatalf("failed to write patterns: %v", err)
	}

	out, _, err := run(t, "", "convert", "-f", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "a b ·\na b · c |\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConvertCommand_FromStdin(t *testing.T) {
	out, _, err := run(t, "abc\na*b\n", "convert", "-f", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "a b · c ·\na * b ·\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConvertCommand_NoPatterns(t *testing.T) {
	if _, _, err := run(t, "", "convert"); err == nil {
		t.Error("expected error when no patterns are given")
	}
}

func TestConvertCommand_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pfx.log")

	_, _, err := run(t, "", "--log-level", "debug", "--log-file", logPath, "convert", "ab")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"converted"`) {
		t.Errorf("log file %q should contain the conversion entry", data)
	}
}

func TestExpandCommand(t *testing.T) {
	out, _, err := run(t, "", "expand", "a(b|c)*d", "a|b")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "a·(b|c)*·d\na|b\n" {
		t.Errorf("expand output = %q", out)
	}
}

func TestExpandCommand_JSONOutput(t *testing.T) {
	out, _, err := run(t, "", "--json", "expand", "ab")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []expansionResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(results) != 1 || results[0].Expanded != "a·b" {
		t.Errorf("unexpected results %+v", results)
	}
}

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"infix", []string{"tree", "abcd"}, "(((a·b)·c)·d)\n"},
		{"union chain", []string{"tree", "a|b|c"}, "((a|b)|c)\n"},
		{"dot", []string{"tree", "--format", "dot", "a*"}, "digraph G {\nn0 [label=\"*\"]\nn1 [label=\"a\"]\nn1 [peripheries=2]\nn0 -> n1\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestTreeCommand_Dump(t *testing.T) {
	out, _, err := run(t, "", "tree", "--format", "dump", "ab")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Binary", "Leaf", "Value"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump %q should contain %q", out, want)
		}
	}
}

func TestTreeCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"malformed", []string{"tree", "(a"}},
		{"unknown format", []string{"tree", "--format", "svg", "a"}},
		{"lenient leftover paren", []string{"--lenient", "tree", "(a"}},
		{"missing argument", []string{"tree"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, "", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
