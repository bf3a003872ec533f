package chess

import (
	"fmt"
	"strings"
)

// MoveToSAN renders m in Standard Algebraic Notation relative to p (the position before m
// is applied), including check/checkmate suffixes and file/rank disambiguation.
func (p Position) MoveToSAN(m Move) string {
	if m.Type == KingSideCastle {
		return p.sanWithSuffix(m, "O-O")
	}
	if m.Type == QueenSideCastle {
		return p.sanWithSuffix(m, "O-O-O")
	}

	var sb strings.Builder
	if m.Piece != Pawn {
		sb.WriteString(strings.ToUpper(m.Piece.String()))
		sb.WriteString(p.disambiguate(m))
	} else if m.IsCapture() {
		sb.WriteString(m.From.File().String())
	}

	if m.IsCapture() {
		sb.WriteRune('x')
	}
	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteRune('=')
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}

	return p.sanWithSuffix(m, sb.String())
}

func (p Position) sanWithSuffix(m Move, san string) string {
	np := p.Move(m)
	if !np.InCheck() {
		return san
	}
	if len(np.LegalMoves()) == 0 {
		return san + "#"
	}
	return san + "+"
}

// disambiguate returns the minimal file/rank/both qualifier needed to distinguish m from
// other legal moves by the same piece type to the same destination.
func (p Position) disambiguate(m Move) string {
	var sameFile, sameRank, any bool
	for _, o := range p.LegalMoves() {
		if o.Piece != m.Piece || o.To != m.To || o.From == m.From {
			continue
		}
		any = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return fmt.Sprintf("%v%v", m.From.File(), m.From.Rank())
	}
}
