package pgn_test

import (
	"strings"
	"testing"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/match"
	"github.com/herohde/gauntlet/pkg/pgn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playFoolsMate(t *testing.T) *match.Game {
	t.Helper()
	g := match.NewGame(0, 0, chess.NewDefaultPosition(), "white-engine", "black-engine")
	for _, l := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := g.Current().LANToMove(l)
		require.NoError(t, err)
		g.Append(m, match.PlyInfo{Depth: 1, Score: 0})
	}
	g.State = match.Checkmate
	return g
}

func TestWriteFoolsMatePGN(t *testing.T) {
	g := playFoolsMate(t)
	out := pgn.Write(g, pgn.V1)

	assert.Contains(t, out, `[Result "0-1"]`)
	assert.Contains(t, out, `[Termination "checkmate"]`)
	assert.Contains(t, out, "1. f3 e5 2. g4 Qh4#")
	assert.True(t, strings.HasSuffix(out, "0-1\n\n"))
}

func TestWriteUnterminatedGame(t *testing.T) {
	g := match.NewGame(0, 0, chess.NewDefaultPosition(), "a", "b")
	out := pgn.Write(g, pgn.V1)
	assert.Contains(t, out, `[Result "*"]`)
	assert.True(t, strings.HasSuffix(out, "*\n\n"))
}

func TestWriteVerboseComments(t *testing.T) {
	g := playFoolsMate(t)
	out := pgn.Write(g, pgn.V2)
	assert.Contains(t, out, "{0/1}")
}

func TestWriteMovetextNumberingMatchesCustomFENFullmove(t *testing.T) {
	// Starting fullmove is 41, not 1, as produced by pkg/openings when a game is seeded
	// from an arbitrary FEN rather than the default starting position.
	start, err := chess.ParseFEN("8/8/8/4k3/8/8/4P3/4K3 w - - 0 41")
	require.NoError(t, err)

	g := match.NewGame(0, 0, start, "white-engine", "black-engine")
	m, err := g.Current().LANToMove("e2e4")
	require.NoError(t, err)
	g.Append(m, match.PlyInfo{Depth: 1, Score: 0})

	out := pgn.Write(g, pgn.V1)
	assert.Contains(t, out, `[FEN "8/8/8/4k3/8/8/4P3/4K3 w - - 0 41"]`)
	assert.Contains(t, out, "41. e4")
}
