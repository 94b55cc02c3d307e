package model

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return g
}

func mustEngine(t *testing.T, text string, workers int) *Engine {
	t.Helper()
	e, err := NewEngine(mustParse(t, text), workers)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func assertGrid(t *testing.T, got *Grid, want string) {
	t.Helper()
	if got.String() != want {
		t.Fatalf("grid mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
