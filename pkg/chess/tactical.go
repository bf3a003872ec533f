package chess

// MoveIsTactical reports whether m is a capture or promotion, the distinction
// pkg/match.ResolvePV uses to decide how far to walk a PV toward a quiescent position
// (quiescent positions are more useful training signal than a position
// mid-tactical-sequence).
func (m Move) MoveIsTactical() bool {
	return m.IsCapture() || m.IsPromotion()
}
