package chess

import "fmt"

// MoveType indicates the kind of move, which determines how it updates the position and
// whether it resets the 50-move counter.
type MoveType uint8

const (
	Normal MoveType = iota
	Push            // single pawn push
	Jump            // 2-square pawn push
	EnPassant
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a fully-resolved move against a specific position: the moving piece and
// any capture are already known, so applying it never needs to re-inspect the board.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece
	Promotion Piece // desired piece for promotion, if any
	Capture   Piece // captured piece, if any
}

// ParseLAN parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The result carries only From/To/Promotion; use Position.ResolveMove to fill in Piece,
// Type and Capture against a specific position.
func ParseLAN(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from square: %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to square: %q: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion piece: %q", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}
	return Move{From: from, To: to}, nil
}

func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

func (m Move) IsCastle() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

// EnPassantCapture returns the square of the pawn captured by an en passant move.
func (m Move) EnPassantCapture() Square {
	if m.To.Rank() == Rank6 {
		return NewSquare(m.To.File(), Rank5)
	}
	return NewSquare(m.To.File(), Rank4)
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in pure algebraic coordinate notation (LAN).
func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
