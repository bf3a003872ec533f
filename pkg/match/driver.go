package match

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/uciproto"
	"github.com/seekerror/logw"
)

// Worker is the per-worker context the driver needs: an identifier (for logging and
// sample-RNG seeding) and a PRNG seeded for reproducibility. Workers are independent; the
// only state they share is the openings cursor and the output streams, both owned by the
// caller.
type Worker struct {
	ID  int
	RNG *rand.Rand
}

// NewWorker seeds a worker's PRNG from its id, so sample extraction is reproducible given
// the same seed/openings/engine behavior, per the module's reproducibility contract.
func NewWorker(id int) *Worker {
	return &Worker{ID: id, RNG: rand.New(rand.NewSource(int64(id)))}
}

// Play drives one full game between the two engine clients, starting from start, and
// returns the completed Game. reverse toggles which engine plays first from start: engine
// index `ei` begins at 0 if !reverse else 1, and Names are assigned so they are independent
// of which engine started.
//
// Play blocks until the game terminates; the only suspension points are engine I/O and
// (indirectly, via the caller) the openings cursor, matching the module's concurrency
// model: one goroutine drives one game against two subprocesses, synchronously.
func Play(ctx context.Context, w *Worker, round, gameNum int, start chess.Position, engines [2]EngineClient, names [2]string, opts [2]EngineOptions, mo MatchOptions, reverse bool) (*Game, Result, error) {
	reverseBit := chess.White
	if reverse {
		reverseBit = chess.Black
	}
	startColor := start.Turn()

	white := names[int(startColor^reverseBit)]
	black := names[int((startColor^reverseBit)^1)]

	g := NewGame(round, gameNum, start, white, black)

	for _, e := range engines {
		if start.Chess960() {
			if err := e.Writeln(ctx, "setoption name UCI_Chess960 value true"); err != nil {
				return nil, Unset, err
			}
		}
		if err := e.Writeln(ctx, "ucinewgame"); err != nil {
			return nil, Unset, err
		}
		if err := e.Sync(ctx); err != nil {
			return nil, Unset, err
		}
	}

	ei := 0
	if reverse {
		ei = 1
	}

	var timeLeft [2]time.Duration
	var drawPlyCount int
	var resignCount [2]int
	var played chess.Move
	hasPlayed := false

	for {
		if hasPlayed {
			g.appendPending(played)
		}

		state, legal := Evaluate(g)
		if state != None {
			g.State = state
			break
		}

		posCmd := uciproto.BuildPosition(g)
		if err := engines[ei].Writeln(ctx, posCmd); err != nil {
			return nil, Unset, err
		}
		if err := engines[ei].Sync(ctx); err != nil {
			return nil, Unset, err
		}

		updateClock(&timeLeft[ei], opts[ei], g.Ply())

		goCmd := uciproto.BuildGo(g, opts, ei, timeLeft)

		timeout := mo.EngineTimeout
		if _, hasMoveTime := opts[ei].MoveTime.V(); hasMoveTime || hasTimeControl(opts[ei]) {
			timeout = timeLeft[ei] + time.Second // grace for I/O scheduling jitter
		}

		ok, bestLan, info, elapsed, err := engines[ei].BestMove(ctx, goCmd, timeout)
		if err != nil {
			return nil, Unset, err
		}

		g.Info = append(g.Info, PlyInfo{Depth: info.Depth, Score: info.Score, Mate: info.Mate, Time: info.Time})

		resolved := ResolvePV(g.Current(), info.PV, func(format string, args ...any) {
			logw.Warningf(ctx, format, args...)
		})

		if hasTimeControl(opts[ei]) {
			timeLeft[ei] -= elapsed
		}

		if !ok {
			g.Info = g.Info[:len(g.Info)-1] // the failed ply never completed; undo the speculative append
			g.State = TimeLoss
			break
		}

		m, err := g.Current().LANToMove(bestLan)
		if err != nil || !containsMove(legal, m) {
			g.Info = g.Info[:len(g.Info)-1]
			g.State = IllegalMove
			break
		}

		if hasTimeControl(opts[ei]) && timeLeft[ei] < 0 {
			g.State = TimeLoss
			break
		}

		if triggered := evalDrawAdjudication(mo, &drawPlyCount, info.Score, g.Ply()); triggered {
			g.State = DrawAdjudication
			played = m
			hasPlayed = true
			g.appendPending(played)
			break
		}
		if triggered := evalResignAdjudication(mo, &resignCount[ei], ei, info.Score, g.Ply()); triggered {
			// The resigning engine's move is not played: it stays the side to move, which
			// is the side finalize and the PGN writer score as the loser.
			g.State = Resign
			break
		}

		maybeRecordSample(w, g, mo, resolved, info.Score)

		played = m
		hasPlayed = true
		ei = 1 - ei
	}

	finalize(g)

	// Result from engines[0]'s POV: decisive states are lost by whichever engine was
	// about to move (tracked directly by the loop's `ei`, not reconstructed afterward).
	result := Draw
	if g.State.IsDecisiveByTurn() {
		if ei == 0 {
			result = Loss
		} else {
			result = Win
		}
	}
	return g, result, nil
}

// appendPending applies m to the game's current position, recording the resulting ply.
// The telemetry for that ply is appended separately by the caller (it is already known
// before the move is validated), so this only updates Pos.
func (g *Game) appendPending(m chess.Move) {
	g.Pos = append(g.Pos, g.Current().Move(m))
}

func hasTimeControl(o EngineOptions) bool {
	_, hasTime := o.Time.V()
	_, hasInc := o.Increment.V()
	return hasTime || hasInc
}

// updateClock applies the clock policy (§4.5) to the mover's time budget, before `go` is
// sent.
func updateClock(tl *time.Duration, o EngineOptions, ply int) {
	if mt, ok := o.MoveTime.V(); ok {
		*tl = mt
		return
	}

	_, hasTime := o.Time.V()
	_, hasInc := o.Increment.V()
	if hasTime || hasInc {
		if inc, ok := o.Increment.V(); ok {
			*tl += inc
		}
		if mtg, ok := o.MovesToGo.V(); ok && mtg > 0 && ply > 1 && (ply/2)%mtg == 0 {
			if t, ok := o.Time.V(); ok {
				*tl += t
			}
		}
		return
	}

	*tl = 24 * time.Hour // node/depth-only: sentinel to disable time-loss detection
}

// evalDrawAdjudication updates drawPlyCount and reports whether the draw-adjudication
// threshold has just been reached.
func evalDrawAdjudication(mo MatchOptions, drawPlyCount *int, score int, ply int) bool {
	count, ok := mo.DrawCount.V()
	if !ok {
		return false
	}
	threshold, _ := mo.DrawScore.V()
	number, _ := mo.DrawNumber.V()

	if abs(score) <= threshold {
		*drawPlyCount++
	} else {
		*drawPlyCount = 0
	}

	return *drawPlyCount >= 2*count && ply/2+1 >= number
}

// evalResignAdjudication updates the per-engine resign counter and reports whether the
// resign-adjudication threshold has just been reached for engine ei.
func evalResignAdjudication(mo MatchOptions, resignCount *int, ei int, score int, ply int) bool {
	count, ok := mo.ResignCount.V()
	if !ok {
		return false
	}
	threshold, _ := mo.ResignScore.V()
	number, _ := mo.ResignNumber.V()

	if score <= -threshold {
		*resignCount++
	} else {
		*resignCount = 0
	}

	return *resignCount >= count && ply/2+1 >= number
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// maybeRecordSample implements the §4.5 probabilistic sample-extraction policy.
func maybeRecordSample(w *Worker, g *Game, mo MatchOptions, resolved chess.Position, score int) {
	if mo.SampleResolve && isMateScore(score) {
		return
	}

	prob := mo.SampleFreq * math.Exp(-mo.SampleDecay*float64(g.Current().Rule50()))
	if w.RNG.Float64() >= prob {
		return
	}

	pos := g.Current()
	if mo.SampleResolve {
		pos = resolved
		if pos.InCheck() {
			return
		}
	}

	povScore := score
	if pos.Turn() != g.Current().Turn() {
		povScore = -povScore
	}

	g.Samples = append(g.Samples, Sample{Pos: pos, Score: int16(povScore), Result: Unset})
}

func isMateScore(score int) bool {
	return score >= math.MaxInt16-1000 || score <= math.MinInt16+1000
}

// finalize decodes the terminal state into a per-sample result, per §4.5's termination
// decoding table.
func finalize(g *Game) {
	wpov := Draw
	if g.State.IsDecisiveByTurn() {
		if g.SideToMove() == chess.White {
			wpov = Loss
		} else {
			wpov = Win
		}
	}

	for i := range g.Samples {
		s := &g.Samples[i]
		if s.Pos.Turn() == chess.White {
			s.Result = wpov
		} else {
			s.Result = wpov.Flip()
		}
	}
}
