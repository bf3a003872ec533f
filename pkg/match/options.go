package match

import (
	"time"

	"github.com/herohde/gauntlet/pkg/uciproto"
	"github.com/seekerror/stdlib/pkg/lang"
)

// EngineOptions holds the per-engine search-limit configuration that feeds pkg/uciproto's
// `go` command builder and the driver's clock policy. Every field is optional: an unset
// field means that limit does not apply. Aliased to uciproto.EngineOptions so the same
// value can be passed to BuildGo without conversion.
type EngineOptions = uciproto.EngineOptions

// MatchOptions holds the global, per-game configuration: draw/resign adjudication
// thresholds and sample-collection parameters. Unlike EngineOptions, these apply
// identically to both sides.
type MatchOptions struct {
	// DrawCount is the number of consecutive full moves (both sides) with |score| <=
	// DrawScore required to adjudicate a draw; DrawNumber is the minimum full-move number
	// at which adjudication may trigger.
	DrawCount  lang.Optional[int]
	DrawScore  lang.Optional[int]
	DrawNumber lang.Optional[int]

	// ResignScore/ResignCount/ResignNumber mirror the draw fields, but per-engine and for
	// a losing streak rather than a drawish one.
	ResignScore  lang.Optional[int]
	ResignCount  lang.Optional[int]
	ResignNumber lang.Optional[int]

	// SampleFreq is the base probability of recording a sample at a given ply; SampleDecay
	// attenuates it as rule50 grows; SampleResolve selects resolved (PV-walked) positions
	// over the literal current position, and skips positions with a mating score.
	SampleFreq    float64
	SampleDecay   float64
	SampleResolve bool

	// EngineTimeout bounds how long the driver waits for a bestmove when neither time nor
	// movetime limits apply (node/depth-only games still need a sentinel upper bound on
	// the wall-clock wait).
	EngineTimeout time.Duration
}
