package chess

// LegalMoves returns all legal moves for the side to move. Generation is pseudo-legal
// followed by a king-safety filter (apply the move to a scratch position, reject if the
// mover's own king is left attacked) rather than a pin-aware generator; this module has no
// performance requirement, and correctness is easier to see this way.
func (p Position) LegalMoves() []Move {
	pseudo := p.pseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		np := p.Move(m)
		if attackersOf(np, np.kingSquare(p.turn), np.turn) == EmptyBitboard {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p Position) pseudoLegalMoves() []Move {
	var moves []Move
	turn := p.turn
	own, opp := p.occ[turn], p.occ[turn.Opponent()]
	all := own | opp
	rb := NewRotatedBitboard(all)

	moves = append(moves, p.pawnMoves(own, opp)...)

	for _, pc := range []Piece{Knight, Bishop, Rook, Queen, King} {
		bb := p.pieces[turn][pc]
		for bb != EmptyBitboard {
			var from Square
			from, bb = bb.NextSquare()
			targets := Attackboard(rb, from, pc) &^ own
			for targets != EmptyBitboard {
				var to Square
				to, targets = targets.NextSquare()
				moves = append(moves, p.resolveQuiet(from, to, pc, opp))
			}
		}
	}

	moves = append(moves, p.castlingMoves(all)...)
	return moves
}

func (p Position) resolveQuiet(from, to Square, pc Piece, opp Bitboard) Move {
	m := Move{From: from, To: to, Piece: pc}
	if opp&BitMask(to) != 0 {
		_, cap, _ := p.Square(to)
		m.Type = Capture
		m.Capture = cap
	}
	return m
}

func (p Position) pawnMoves(own, opp Bitboard) []Move {
	var moves []Move
	turn := p.turn
	pawns := p.pieces[turn][Pawn]
	all := own | opp
	promoRank := PawnPromotionRank(turn)

	single := PawnMoveboard(all, turn, pawns)
	for bb := single; bb != EmptyBitboard; {
		var to Square
		to, bb = bb.NextSquare()
		from := pawnPushOrigin(to, turn)
		moves = append(moves, p.makePawnAdvance(from, to, promoRank, Push)...)
	}

	jumpStart := pawns & pawnJumpRank(turn)
	jumpMid := PawnMoveboard(all, turn, jumpStart) &^ all
	jumpEnd := PawnMoveboard(all, turn, jumpMid) &^ all
	for bb := jumpEnd; bb != EmptyBitboard; {
		var to Square
		to, bb = bb.NextSquare()
		from := pawnJumpOrigin(to, turn)
		moves = append(moves, Move{From: from, To: to, Piece: Pawn, Type: Jump})
	}

	captures := PawnCaptureboard(turn, pawns) & opp
	for bb := captures; bb != EmptyBitboard; {
		var to Square
		to, bb = bb.NextSquare()
		for _, from := range pawnCaptureOrigins(to, turn) {
			if from.IsValid() && pawns.IsSet(from) {
				_, cap, _ := p.Square(to)
				moves = append(moves, p.makePawnCapture(from, to, cap, promoRank)...)
			}
		}
	}

	if ep, ok := p.EnPassant(); ok {
		for _, from := range pawnCaptureOrigins(ep, turn) {
			if from.IsValid() && pawns.IsSet(from) {
				moves = append(moves, Move{From: from, To: ep, Piece: Pawn, Type: EnPassant, Capture: Pawn})
			}
		}
	}

	return moves
}

func (p Position) makePawnAdvance(from, to Square, promoRank Bitboard, t MoveType) []Move {
	if promoRank.IsSet(to) {
		return promotionMoves(from, to, NoPiece, t)
	}
	return []Move{{From: from, To: to, Piece: Pawn, Type: t}}
}

func (p Position) makePawnCapture(from, to Square, cap Piece, promoRank Bitboard) []Move {
	if promoRank.IsSet(to) {
		return promotionMoves(from, to, cap, CapturePromotion)
	}
	return []Move{{From: from, To: to, Piece: Pawn, Type: Capture, Capture: cap}}
}

func promotionMoves(from, to Square, cap Piece, capType MoveType) []Move {
	t := Promotion
	if cap.IsValid() {
		t = capType
	}
	promos := []Piece{Queen, Rook, Bishop, Knight}
	moves := make([]Move, 0, len(promos))
	for _, promo := range promos {
		moves = append(moves, Move{From: from, To: to, Piece: Pawn, Type: t, Promotion: promo, Capture: cap})
	}
	return moves
}

func pawnPushOrigin(to Square, c Color) Square {
	if c == White {
		return to - 8
	}
	return to + 8
}

func pawnJumpOrigin(to Square, c Color) Square {
	if c == White {
		return to - 16
	}
	return to + 16
}

func pawnJumpRank(c Color) Bitboard {
	if c == White {
		return BitRank(Rank2)
	}
	return BitRank(Rank7)
}

// pawnCaptureOrigins returns the (up to two) squares a c-pawn could capture from onto to.
func pawnCaptureOrigins(to Square, c Color) [2]Square {
	if c == White {
		return [2]Square{safeSub(to, 9, to.File() != FileH), safeSub(to, 7, to.File() != FileA)}
	}
	return [2]Square{safeAdd(to, 9, to.File() != FileA), safeAdd(to, 7, to.File() != FileH)}
}

func safeSub(sq Square, d int, guard bool) Square {
	if !guard || int(sq) < d {
		return NoSquare
	}
	return sq - Square(d)
}

func safeAdd(sq Square, d int, guard bool) Square {
	if !guard || int(sq)+d >= int(NumSquares) {
		return NoSquare
	}
	return sq + Square(d)
}

func (p Position) castlingMoves(all Bitboard) []Move {
	var moves []Move
	turn := p.turn
	if p.InCheck() {
		return moves
	}
	king := p.kingHome[turn]

	tryCastle := func(kingSide bool, right Castling) {
		if !p.castling.IsAllowed(right) {
			return
		}
		rook := p.rookHome[turn][1]
		dest := kingCastleDest(turn, true)
		rookDest := NewSquare(FileF, king.Rank())
		if !kingSide {
			rook = p.rookHome[turn][0]
			dest = kingCastleDest(turn, false)
			rookDest = NewSquare(FileD, king.Rank())
		}
		if rook == NoSquare {
			return
		}
		if !castlingPathClear(all, king, rook, dest, rookDest) {
			return
		}
		if castlingPathAttacked(p, king, dest, turn.Opponent()) {
			return
		}
		t := KingSideCastle
		if !kingSide {
			t = QueenSideCastle
		}
		moves = append(moves, Move{From: king, To: dest, Piece: King, Type: t})
	}
	tryCastle(true, kingSideRight(turn))
	tryCastle(false, queenSideRight(turn))
	return moves
}

func castlingPathClear(all Bitboard, king, rook, kingDest, rookDest Square) bool {
	occupied := all &^ BitMask(king) &^ BitMask(rook)
	for _, sq := range squaresBetweenInclusive(king, kingDest) {
		if occupied.IsSet(sq) {
			return false
		}
	}
	for _, sq := range squaresBetweenInclusive(rook, rookDest) {
		if occupied.IsSet(sq) {
			return false
		}
	}
	return true
}

func castlingPathAttacked(p Position, king, dest Square, by Color) bool {
	lo, hi := king, dest
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo; sq <= hi; sq++ {
		if attackersOf(p, sq, by) != EmptyBitboard {
			return true
		}
	}
	return false
}

func squaresBetweenInclusive(a, b Square) []Square {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var sqs []Square
	for sq := lo; sq <= hi; sq++ {
		if sq != a {
			sqs = append(sqs, sq)
		}
	}
	return sqs
}
