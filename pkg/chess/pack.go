package chess

import "encoding/binary"

// PackedSize is the fixed size in bytes of a packed position.
const PackedSize = 32 + 1 + 1 + 2 + 2

// pieceCode packs color+piece into a nibble: 0 = empty, 1..6 = white pawn..king,
// 9..14 = black pawn..king.
func pieceCode(c Color, pc Piece) byte {
	if pc == NoPiece {
		return 0
	}
	code := byte(pc)
	if c == Black {
		code |= 0x8
	}
	return code
}

func codeToPiece(code byte) (Color, Piece) {
	if code == 0 {
		return ZeroColor, NoPiece
	}
	c := White
	if code&0x8 != 0 {
		c = Black
	}
	return c, Piece(code &^ 0x8)
}

// Pack encodes p into a fixed-size binary representation suitable for training-sample
// storage: 32 bytes of piece placement (one nibble per square, H1..A8 order), one byte of
// turn/castling/chess960 flags, one byte en passant square (NoSquare sentinel if none),
// and little-endian uint16 rule50/fullmove counters.
func (p Position) Pack() []byte {
	buf := make([]byte, PackedSize)
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		c, pc, _ := p.Square(sq)
		code := pieceCode(c, pc)
		if sq%2 == 0 {
			buf[sq/2] = code
		} else {
			buf[sq/2] |= code << 4
		}
	}

	flags := byte(p.castling)
	if p.turn == Black {
		flags |= 1 << 4
	}
	if p.chess960 {
		flags |= 1 << 5
	}
	buf[32] = flags

	buf[33] = byte(p.ep)

	binary.LittleEndian.PutUint16(buf[34:36], uint16(p.rule50))
	binary.LittleEndian.PutUint16(buf[36:38], uint16(p.fullmove))
	return buf
}

// Unpack decodes a position previously produced by Pack. Chess960 king/rook home squares
// are not recoverable from the packed form alone (Pack is a training-sample sink, not a
// round-trip game format), so Unpack only supports standard castling rook files; it is
// intended for inspection/debugging of sample files, not for resuming Chess960 games.
func Unpack(buf []byte) (Position, error) {
	if len(buf) != PackedSize {
		return Position{}, errPackedSize(len(buf))
	}

	var p Position
	p.kingHome = [NumColors]Square{NoSquare, NoSquare}
	p.rookHome[White] = [2]Square{A1, H1}
	p.rookHome[Black] = [2]Square{A8, H8}

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		var code byte
		if sq%2 == 0 {
			code = buf[sq/2] & 0xf
		} else {
			code = (buf[sq/2] >> 4) & 0xf
		}
		c, pc := codeToPiece(code)
		if pc != NoPiece {
			p = p.place(c, pc, sq)
			if pc == King {
				p.kingHome[c] = sq
			}
		}
	}

	flags := buf[32]
	p.castling = Castling(flags & 0xf)
	if flags&(1<<4) != 0 {
		p.turn = Black
	}
	p.chess960 = flags&(1<<5) != 0

	p.ep = Square(buf[33])
	p.rule50 = int(binary.LittleEndian.Uint16(buf[34:36]))
	p.fullmove = int(binary.LittleEndian.Uint16(buf[36:38]))

	p.checkers = attackersOf(p, p.kingSquare(p.turn), p.turn.Opponent())
	p.key = computeKey(p)
	return p, nil
}

type errPackedSize int

func (e errPackedSize) Error() string {
	return "chess: invalid packed position size"
}
