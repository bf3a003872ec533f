// Package uciproto builds the UCI command strings the game driver sends to an engine. The
// functions here are pure: they take position/option snapshots and return strings, with no
// I/O of their own.
package uciproto

import (
	"fmt"
	"strings"
	"time"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PositionSource is the minimal view of a game's ply history needed to build a `position`
// command: the position at each ply, up to and including ply.
type PositionSource interface {
	Ply() int
	PositionAt(ply int) chess.Position
}

// BuildPosition emits "position fen <FEN> [moves <lan1> <lan2> ...]". The FEN used is the
// position at ply0 = max(ply - pos[ply].rule50, 0); only moves since the last rule50 reset
// are appended, since no earlier move can repeat into the current search window.
func BuildPosition(g PositionSource) string {
	ply := g.Ply()
	cur := g.PositionAt(ply)

	ply0 := ply - cur.Rule50()
	if ply0 < 0 {
		ply0 = 0
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "position fen %v", g.PositionAt(ply0).FEN())

	if ply0 < ply {
		sb.WriteString(" moves")
		for i := ply0 + 1; i <= ply; i++ {
			sb.WriteRune(' ')
			sb.WriteString(g.PositionAt(i).LastMove().String())
		}
	}
	return sb.String()
}

// EngineOptions is the subset of per-engine search-limit configuration BuildGo consumes;
// it mirrors the corresponding fields of pkg/match.EngineOptions.
type EngineOptions struct {
	Nodes     lang.Optional[uint64]
	Depth     lang.Optional[uint]
	MoveTime  lang.Optional[time.Duration]
	Time      lang.Optional[time.Duration]
	Increment lang.Optional[time.Duration]
	MovesToGo lang.Optional[int]
}

// BuildGo emits "go" with whichever limits apply to the side to move, ei is the index of
// the engine about to move, and timeLeft holds each engine's remaining clock.
func BuildGo(g PositionSource, opts [2]EngineOptions, ei int, timeLeft [2]time.Duration) string {
	ply := g.Ply()
	turn := g.PositionAt(ply).Turn()
	o := opts[ei]

	var sb strings.Builder
	sb.WriteString("go")

	if n, ok := o.Nodes.V(); ok {
		fmt.Fprintf(&sb, " nodes %v", n)
	}
	if d, ok := o.Depth.V(); ok {
		fmt.Fprintf(&sb, " depth %v", d)
	}
	if mt, ok := o.MoveTime.V(); ok {
		fmt.Fprintf(&sb, " movetime %v", mt.Milliseconds())
		return sb.String()
	}

	_, hasTime := o.Time.V()
	_, hasInc := o.Increment.V()
	if hasTime || hasInc {
		// color = side to move; map (engine index, color) -> (wtime/btime).
		color := int(turn)
		white := timeLeft[ei^color]
		black := timeLeft[ei^color^1]

		wo, bo := opts[ei^color], opts[ei^color^1]
		winc, _ := wo.Increment.V()
		binc, _ := bo.Increment.V()

		fmt.Fprintf(&sb, " wtime %v winc %v btime %v binc %v",
			white.Milliseconds(), winc.Milliseconds(), black.Milliseconds(), binc.Milliseconds())
	}

	if mtg, ok := o.MovesToGo.V(); ok && mtg > 0 {
		remaining := mtg - ((ply / 2) % mtg)
		fmt.Fprintf(&sb, " movestogo %v", remaining)
	}

	return sb.String()
}
