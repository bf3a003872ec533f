package chess_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTranspositionIndependent(t *testing.T) {
	p1 := chess.NewDefaultPosition()
	for _, l := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		m, err := p1.LANToMove(l)
		require.NoError(t, err)
		p1 = p1.Move(m)
	}

	p2 := chess.NewDefaultPosition()
	for _, l := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		m, err := p2.LANToMove(l)
		require.NoError(t, err)
		p2 = p2.Move(m)
	}

	assert.Equal(t, p1.Key(), p2.Key())
}

func TestKeyDiffersOnCastlingRights(t *testing.T) {
	p1, err := chess.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p2, err := chess.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1")
	require.NoError(t, err)

	assert.NotEqual(t, p1.Key(), p2.Key())
}
