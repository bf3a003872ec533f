package chess_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesStartingPosition(t *testing.T) {
	p := chess.NewDefaultPosition()
	moves := p.LegalMoves()
	assert.Len(t, moves, 20)
}

func TestLegalMovesKiwipete(t *testing.T) {
	// A standard perft-divide fixture (depth 1 = 48 moves), including both castling moves
	// for the side to move.
	p, err := chess.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	moves := p.LegalMoves()
	assert.Len(t, moves, 48)
}

func TestFoolsMate(t *testing.T) {
	p := chess.NewDefaultPosition()

	lan := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, l := range lan {
		m, err := p.LANToMove(l)
		require.NoError(t, err, l)
		p = p.Move(m)
	}

	assert.True(t, p.InCheck())
	assert.Empty(t, p.LegalMoves())
}

func TestCastlingGeneratedMoveMatchesResolve(t *testing.T) {
	p, err := chess.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var castle chess.Move
	found := false
	for _, m := range p.LegalMoves() {
		if m.IsCastle() && m.From == chess.E1 {
			castle = m
			found = true
			break
		}
	}
	require.True(t, found)

	resolved, err := p.ResolveMove(chess.Move{From: castle.From, To: castle.To})
	require.NoError(t, err)
	assert.Equal(t, castle.Type, resolved.Type)
	assert.Equal(t, castle.To, resolved.To)
}

func TestLegalMovesLoneKingAndPawnExactSet(t *testing.T) {
	// A small, fully-enumerable position: a field-by-field diff on mismatch is much more
	// useful here than testify's default %+v dump of the whole Move slice.
	p, err := chess.ParseFEN("8/8/8/8/8/3k4/P7/3K4 w - - 0 1")
	require.NoError(t, err)

	want := []chess.Move{
		{Type: chess.Push, Piece: chess.Pawn, From: chess.A2, To: chess.A3},
		{Type: chess.Jump, Piece: chess.Pawn, From: chess.A2, To: chess.A4},
		{Type: chess.Normal, Piece: chess.King, From: chess.D1, To: chess.C1},
		{Type: chess.Normal, Piece: chess.King, From: chess.D1, To: chess.E1},
	}

	got := p.LegalMoves()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b chess.Move) bool {
		return a.String() < b.String()
	})); diff != "" {
		t.Errorf("LegalMoves() mismatch (-want +got):\n%v", diff)
	}
}

func TestEnPassantCapture(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)

	m, err := p.LANToMove("d4e3")
	require.NoError(t, err)
	assert.Equal(t, chess.EnPassant, m.Type)

	next := p.Move(m)
	_, _, ok := next.Square(chess.E4)
	assert.False(t, ok, "captured pawn must be removed")
}
