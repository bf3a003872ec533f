package chess_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRoundTrip(t *testing.T) {
	tests := []string{
		chess.StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkb1r/ppp1pppp/5n2/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 3",
		"8/8/8/3k4/8/8/3K4/8 b - - 99 120",
	}

	for _, tt := range tests {
		p, err := chess.ParseFEN(tt)
		require.NoError(t, err, tt)

		buf := p.Pack()
		assert.Len(t, buf, chess.PackedSize)

		got, err := chess.Unpack(buf)
		require.NoError(t, err, tt)
		assert.Equal(t, p.FEN(), got.FEN())
	}
}

func TestUnpackRejectsShortBuffer(t *testing.T) {
	_, err := chess.Unpack(make([]byte, chess.PackedSize-1))
	assert.Error(t, err)
}
