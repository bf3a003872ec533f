package uciproto_test

import (
	"testing"
	"time"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/uciproto"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pos []chess.Position
}

func (s *fakeSource) Ply() int                           { return len(s.pos) - 1 }
func (s *fakeSource) PositionAt(ply int) chess.Position { return s.pos[ply] }

func newFakeSource(t *testing.T, lan ...string) *fakeSource {
	t.Helper()
	p := chess.NewDefaultPosition()
	pos := []chess.Position{p}
	for _, l := range lan {
		m, err := p.LANToMove(l)
		require.NoError(t, err)
		p = p.Move(m)
		pos = append(pos, p)
	}
	return &fakeSource{pos: pos}
}

func TestBuildPositionNoMoves(t *testing.T) {
	s := newFakeSource(t)
	assert.Equal(t, "position fen "+chess.StartFEN, uciproto.BuildPosition(s))
}

func TestBuildPositionWithMoves(t *testing.T) {
	// Knight moves do not reset rule50, so both are sent after the starting FEN.
	s := newFakeSource(t, "g1f3", "g8f6")
	assert.Equal(t, "position fen "+chess.StartFEN+" moves g1f3 g8f6", uciproto.BuildPosition(s))
}

func TestBuildGoMoveTime(t *testing.T) {
	s := newFakeSource(t)
	opts := [2]uciproto.EngineOptions{
		{MoveTime: lang.Some(500 * time.Millisecond)},
		{},
	}
	assert.Equal(t, "go movetime 500", uciproto.BuildGo(s, opts, 0, [2]time.Duration{}))
}

func TestBuildGoTimeControl(t *testing.T) {
	s := newFakeSource(t)
	opts := [2]uciproto.EngineOptions{
		{Time: lang.Some(time.Minute), Increment: lang.Some(2 * time.Second)},
		{Time: lang.Some(time.Minute), Increment: lang.Some(2 * time.Second)},
	}
	timeLeft := [2]time.Duration{45 * time.Second, 50 * time.Second}

	got := uciproto.BuildGo(s, opts, 0, timeLeft)
	assert.Equal(t, "go wtime 45000 winc 2000 btime 50000 binc 2000", got)
}

func TestBuildGoDepthAndNodes(t *testing.T) {
	s := newFakeSource(t)
	opts := [2]uciproto.EngineOptions{
		{Depth: lang.Some[uint](10), Nodes: lang.Some[uint64](100000)},
		{},
	}
	assert.Equal(t, "go nodes 100000 depth 10", uciproto.BuildGo(s, opts, 0, [2]time.Duration{}))
}
