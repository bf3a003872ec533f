package chess

// LANToMove parses str as a LAN move and resolves it against p, returning an error if no
// piece of the side to move sits on the origin square. It does not check legality; callers
// compare against LegalMoves for that (see pkg/match's illegal-move handling).
func (p Position) LANToMove(str string) (Move, error) {
	m, err := ParseLAN(str)
	if err != nil {
		return Move{}, err
	}
	return p.ResolveMove(m)
}

// MoveToLAN renders m in pure algebraic coordinate notation.
func (p Position) MoveToLAN(m Move) string {
	return m.String()
}
