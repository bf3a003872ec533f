package match

import "github.com/herohde/gauntlet/pkg/chess"

// Evaluate determines the termination state of g at its current ply, per §4.3: checkmate/
// stalemate, the fifty-move rule, insufficient material, and threefold repetition, in that
// order. It also returns the legal moves of the current position, since the caller (the
// game driver) needs them regardless to validate the engine's reply.
func Evaluate(g *Game) (State, []chess.Move) {
	cur := g.Current()
	legal := cur.LegalMoves()

	if len(legal) == 0 {
		if cur.InCheck() {
			return Checkmate, legal
		}
		return Stalemate, legal
	}
	if cur.Rule50() >= 100 {
		return FiftyMoves, legal
	}
	if cur.InsufficientMaterial() {
		return InsufficientMaterial, legal
	}
	if isThreefold(g) {
		return Threefold, legal
	}
	return None, legal
}

// isThreefold scans backward for a threefold repetition, counting the current position as
// the first occurrence. Only positions with the same side to move can repeat it, so the
// scan steps by 2 plies and is bounded by rule50 (no position before the last pawn
// move/capture can repeat past it).
func isThreefold(g *Game) bool {
	ply := g.Ply()
	key := g.Current().Key()
	rule50 := g.Current().Rule50()

	count := 1
	for i := 4; i <= rule50 && i <= ply; i += 2 {
		if g.PositionAt(ply-i).Key() == key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
