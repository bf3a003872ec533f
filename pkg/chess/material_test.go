package chess_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen      string
		expected bool
	}{
		{"8/8/8/4k3/8/8/4K3/8 w - - 0 1", true},                 // K v K
		{"8/8/8/4k3/8/8/4KB2/8 w - - 0 1", true},                 // K+B v K
		{"8/8/8/4kn2/8/8/4K3/8 w - - 0 1", true},                 // K v K+N
		{"8/8/8/4k3/8/8/4KP2/8 w - - 0 1", false},                // K+P v K
		{"8/8/8/4k3/8/8/3QK3/8 w - - 0 1", false},                // K+Q v K
		{"7b/8/8/4k3/8/8/4K3/B7 w - - 0 1", true},                // same-colored bishops (a1/h8)
		{"b7/8/8/4k3/8/8/4K3/B7 w - - 0 1", false},               // opposite-colored bishops (a1/a8)
	}

	for _, tt := range tests {
		p, err := chess.ParseFEN(tt.fen)
		require.NoError(t, err, tt.fen)
		assert.Equal(t, tt.expected, p.InsufficientMaterial(), tt.fen)
	}
}
