package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestRendering(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"header", Header("Björk", "Joga"), "Björk - Joga"},
		{"success", Success("saved %d plays", 3), "✓ saved 3 plays"},
		{"warning", Warning("no lyrics for %s", "Joga"), "no lyrics for Joga"},
		{"failure", Failure(errors.New("boom")), "Error: boom"},
		{"hint", Hint("run %s", "lyrx setup"), "run lyrx setup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("got %q, want it to contain %q", tt.got, tt.want)
			}
		})
	}
}
