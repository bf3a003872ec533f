package match_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameFromFEN(t *testing.T, fen string) *match.Game {
	t.Helper()
	p, err := chess.ParseFEN(fen)
	require.NoError(t, err)
	return match.NewGame(0, 0, p, "white-engine", "black-engine")
}

func TestEvaluateCheckmate(t *testing.T) {
	// Fool's mate position, black just delivered mate.
	g := newGameFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	state, legal := match.Evaluate(g)
	assert.Equal(t, match.Checkmate, state)
	assert.Empty(t, legal)
}

func TestEvaluateStalemate(t *testing.T) {
	g := newGameFromFEN(t, "k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	state, legal := match.Evaluate(g)
	assert.Equal(t, match.Stalemate, state)
	assert.Empty(t, legal)
}

func TestEvaluateFiftyMoves(t *testing.T) {
	g := newGameFromFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 100 80")
	state, _ := match.Evaluate(g)
	assert.Equal(t, match.FiftyMoves, state)
}

func TestEvaluateInsufficientMaterial(t *testing.T) {
	g := newGameFromFEN(t, "4k3/8/8/8/8/8/4KB2/8 w - - 0 1")
	state, _ := match.Evaluate(g)
	assert.Equal(t, match.InsufficientMaterial, state)
}

func TestEvaluateThreefold(t *testing.T) {
	g := newGameFromFEN(t, chess.StartFEN)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, l := range shuffle {
		m, err := g.Current().LANToMove(l)
		require.NoError(t, err)
		g.Append(m, match.PlyInfo{})
	}

	state, _ := match.Evaluate(g)
	assert.Equal(t, match.Threefold, state)
}

func TestEvaluateNoneInMidgame(t *testing.T) {
	g := newGameFromFEN(t, chess.StartFEN)
	state, legal := match.Evaluate(g)
	assert.Equal(t, match.None, state)
	assert.Len(t, legal, 20)
}
