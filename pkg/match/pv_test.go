package match_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePVStopsAtFirstQuietMove(t *testing.T) {
	p, err := chess.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var warnings []string
	warn := func(format string, args ...any) { warnings = append(warnings, format) }

	resolved := match.ResolvePV(p, []string{"e4d5", "e8d8"}, warn)

	assert.Empty(t, warnings)
	_, piece, ok := resolved.Square(chess.D5)
	require.True(t, ok)
	assert.Equal(t, chess.Pawn, piece)
	assert.Equal(t, chess.Black, resolved.Turn()) // after White's capture, Black is to move
}

func TestResolvePVWarnsOnIllegalMove(t *testing.T) {
	p := chess.NewDefaultPosition()

	var warnings []string
	warn := func(format string, args ...any) { warnings = append(warnings, format) }

	// d1d7 is a capture (tactical), so it reaches the legality check, but the queen is
	// blocked by its own pawn on d2.
	resolved := match.ResolvePV(p, []string{"d1d7"}, warn)

	assert.NotEmpty(t, warnings)
	assert.Equal(t, p.FEN(), resolved.FEN())
}

func TestResolvePVEmptyPVReturnsStart(t *testing.T) {
	// With no PV to walk, the start position is the resolved position.
	p, err := chess.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	resolved := match.ResolvePV(p, nil, func(string, ...any) {})
	assert.Equal(t, p.FEN(), resolved.FEN())
}
