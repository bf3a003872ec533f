package match

// State is the game's terminal-state alphabet. States before the decisive/draw boundary
// (CHECKMATE..TIME_LOSS) are either decisive by whoever was to move, or drawn by rule;
// states from DrawAdjudication on are draws/resignations decided by adjudication rather
// than the rules of chess. See IsDecisiveByTurn.
type State uint8

const (
	None State = iota
	Checkmate
	Stalemate
	Threefold
	FiftyMoves
	InsufficientMaterial
	IllegalMove
	TimeLoss
	DrawAdjudication
	Resign
)

// IsDecisiveByTurn reports whether s is decided by which side was to move when the game
// ended (that side lost): Checkmate, IllegalMove, TimeLoss, Resign.
func (s State) IsDecisiveByTurn() bool {
	switch s {
	case Checkmate, IllegalMove, TimeLoss, Resign:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Threefold:
		return "threefold"
	case FiftyMoves:
		return "fifty_moves"
	case InsufficientMaterial:
		return "insufficient_material"
	case IllegalMove:
		return "illegal_move"
	case TimeLoss:
		return "time_loss"
	case DrawAdjudication:
		return "draw_adjudication"
	case Resign:
		return "resign"
	default:
		return "unknown"
	}
}

// Result is a game outcome from a given side's point of view.
type Result uint8

const (
	Loss Result = iota
	Draw
	Win
	Unset
)

// Flip returns the result from the opposite POV: Loss<->Win, Draw unchanged. Unset is
// returned unchanged (it is not a real outcome, only a placeholder).
func (r Result) Flip() Result {
	switch r {
	case Loss:
		return Win
	case Win:
		return Loss
	default:
		return r
	}
}

func (r Result) String() string {
	switch r {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return "unset"
	}
}
