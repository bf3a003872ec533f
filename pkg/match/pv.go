package match

import "github.com/herohde/gauntlet/pkg/chess"

// ResolvePV walks pv (the engine's claimed principal variation, first token its own best
// move) from start, stopping at the first non-tactical move, the first move not found
// among the working position's legal moves (logging via warn and stopping, never aborting
// the game), or the end of the line. It returns the deepest position reached that is not
// itself in check.
//
// Two rotating position buffers (cur/resolved) avoid allocating a position per PV token;
// Position is a small value type, so "rotating" here just means reassigning rather than
// reallocating on each step.
func ResolvePV(start chess.Position, pv []string, warn func(format string, args ...any)) chess.Position {
	cur := start
	resolved := start

	for i, tok := range pv {
		m, err := cur.LANToMove(tok)
		if err != nil {
			warn("invalid PV move %q at %v: %v", tok, i, err)
			break
		}
		if !m.MoveIsTactical() {
			break
		}

		legal := cur.LegalMoves()
		if !containsMove(legal, m) {
			warn("illegal PV move %q, remaining pv=%v", tok, pv[i:])
			break
		}

		cur = cur.Move(m)
		if !cur.InCheck() {
			resolved = cur
		}
	}
	return resolved
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, o := range moves {
		if o.Equals(m) && o.Type == m.Type {
			return true
		}
	}
	return false
}
