package main

import (
	"bytes"
	"strings"
	"testing"

	mc "github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("maze %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestGenAndLight(t *testing.T) {
	text := execute(t, "", "gen", "--seed", "42", "--size", "15", "--log-level", "error")

	m, err := mc.ParseText(text)
	if err != nil {
		t.Fatalf("gen output does not parse: %v\n%s", err, text)
	}
	if m.Size() != 15 {
		t.Errorf("Expected size 15, got %d", m.Size())
	}
	if again := execute(t, "", "gen", "--seed", "42", "--size", "15", "--log-level", "error"); again != text {
		t.Error("Expected the same seed to print the same maze")
	}

	light := execute(t, text, "light", "-", "--dir", "S", "--power", "20", "--log-level", "error")
	lines := strings.Split(strings.TrimRight(light, "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("Expected 15 light rows, got %d", len(lines))
	}
	row := []rune(lines[m.Start().Y])
	if row[m.Start().X] != '█' {
		t.Errorf("Expected the origin at full brightness, got %q", row[m.Start().X])
	}
}

func TestGenRejectsBadParams(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"gen", "--size", "5", "--log-level", "error"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected an error for a 5x5 maze")
	}
	genParams.Size = mc.DefaultGenParams().Size
}
