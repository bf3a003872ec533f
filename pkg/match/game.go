package match

import (
	"time"

	"github.com/herohde/gauntlet/pkg/chess"
)

// PlyInfo is the engine telemetry captured for one ply: the depth/score/time reported by
// the engine that made that move.
type PlyInfo struct {
	Depth int
	Score int // centipawns, side-to-move POV at the time of the move; INT16 range for mate encoding
	Mate  bool
	Time  time.Duration
}

// Sample is one extracted training position.
type Sample struct {
	Pos    chess.Position
	Score  int16 // POV = Pos.Turn()
	Result Result
}

// Game is a single match record: the ordered ply history, per-ply telemetry, extracted
// samples, and the terminal state. Pos[i] is the position after i plies; Pos[0] is the
// starting position. Positions are value-typed and appended in order — this sequence
// doubles as the threefold-repetition search structure and the PGN movetext source; do
// not replace it with a linked structure (see pkg/chess.Position for why positions are
// cheap to copy).
type Game struct {
	Round, GameNum int
	Names          [2]string // indexed by chess.Color: Names[chess.White], Names[chess.Black]

	Pos     []chess.Position
	Info    []PlyInfo
	Samples []Sample
	State   State
}

// NewGame starts a game from the given position, named round/game for the scheduler's
// bookkeeping.
func NewGame(round, game int, start chess.Position, white, black string) *Game {
	return &Game{
		Round:   round,
		GameNum: game,
		Names:   [2]string{white, black},
		Pos:     []chess.Position{start},
	}
}

// Ply returns the number of plies played so far.
func (g *Game) Ply() int {
	return len(g.Pos) - 1
}

// PositionAt returns the position after the given number of plies.
func (g *Game) PositionAt(ply int) chess.Position {
	return g.Pos[ply]
}

// Current returns the position at the current ply (i.e., the position to move from next).
func (g *Game) Current() chess.Position {
	return g.Pos[g.Ply()]
}

// Append records the position reached by playing m from the current position, along with
// its telemetry. Exported for callers that already know both together (tests, replay
// tooling); the game driver uses the unexported appendPending instead, since it learns a
// ply's telemetry before it learns whether the move itself is legal.
func (g *Game) Append(m chess.Move, info PlyInfo) chess.Position {
	np := g.Current().Move(m)
	g.Pos = append(g.Pos, np)
	g.Info = append(g.Info, info)
	return np
}

// SideToMove returns the color to move in the current (last-appended) position.
func (g *Game) SideToMove() chess.Color {
	return g.Current().Turn()
}
