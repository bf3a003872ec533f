// Package pgn serializes a completed match.Game as Portable Game Notation text, with
// configurable comment verbosity.
package pgn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/match"
)

// Verbosity controls movetext comments: 1 emits none, 2 emits {score/depth}, 3 adds time.
type Verbosity int

const (
	V1 Verbosity = 1
	V2 Verbosity = 2
	V3 Verbosity = 3
)

// Write renders g as one PGN record, terminated by two newlines.
func Write(g *match.Game, v Verbosity) string {
	var sb strings.Builder

	result, termination := outcome(g)

	writeTag(&sb, "Round", fmt.Sprintf("%v.%v", g.Round+1, g.GameNum+1))
	writeTag(&sb, "White", g.Names[chess.White])
	writeTag(&sb, "Black", g.Names[chess.Black])
	writeTag(&sb, "Result", result)
	writeTag(&sb, "Termination", termination)
	writeTag(&sb, "FEN", g.Pos[0].FEN())
	writeTag(&sb, "PlyCount", strconv.Itoa(g.Ply()))
	if g.Pos[0].Chess960() {
		writeTag(&sb, "Variant", "Chess960")
	}
	sb.WriteRune('\n')

	if v >= 1 {
		writeMovetext(&sb, g, v)
	}
	sb.WriteString(result)
	sb.WriteString("\n\n")

	return sb.String()
}

func writeTag(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "[%v %q]\n", name, value)
}

// outcome maps g.State to the PGN Result and Termination tags, per §4.6's decoding table.
func outcome(g *match.Game) (result, termination string) {
	switch g.State {
	case match.None:
		return "*", "unterminated"
	case match.Checkmate:
		if g.SideToMove() == chess.Black {
			return "1-0", "checkmate"
		}
		return "0-1", "checkmate"
	case match.Stalemate:
		return "1/2-1/2", "stalemate"
	case match.Threefold:
		return "1/2-1/2", "3-fold repetition"
	case match.FiftyMoves:
		return "1/2-1/2", "50 moves rule"
	case match.InsufficientMaterial:
		return "1/2-1/2", "insufficient material"
	case match.IllegalMove:
		return decisiveResult(g), "rules infraction"
	case match.DrawAdjudication:
		return "1/2-1/2", "adjudication"
	case match.Resign:
		return decisiveResult(g), "adjudication"
	case match.TimeLoss:
		return decisiveResult(g), "time forfeit"
	default:
		return "*", "unknown"
	}
}

func decisiveResult(g *match.Game) string {
	if g.SideToMove() == chess.White {
		return "0-1"
	}
	return "1-0"
}

func writeMovetext(sb *strings.Builder, g *match.Game, v Verbosity) {
	pliesPerLine := 16
	switch v {
	case V2:
		pliesPerLine = 6
	case V3:
		pliesPerLine = 5
	}

	startTurn := g.Pos[0].Turn()
	onLine := 0

	for ply := 1; ply <= g.Ply(); ply++ {
		before := g.Pos[ply-1]
		move := g.Pos[ply].LastMove()

		fullmove := before.Fullmove()
		if before.Turn() == chess.White {
			fmt.Fprintf(sb, "%v. ", fullmove)
		} else if ply == 1 && startTurn == chess.Black {
			fmt.Fprintf(sb, "%v... ", fullmove)
		}

		san := before.MoveToSAN(move)
		if ply == g.Ply() && g.State == match.Checkmate {
			san = strings.TrimRight(san, "+#") + "#"
		}
		sb.WriteString(san)

		if ply-1 < len(g.Info) {
			writeComment(sb, g.Info[ply-1], v)
		}
		sb.WriteRune(' ')

		onLine++
		if onLine >= pliesPerLine {
			sb.WriteRune('\n')
			onLine = 0
		}
	}
	if onLine != 0 {
		sb.WriteRune('\n')
	}
}

func writeComment(sb *strings.Builder, info match.PlyInfo, v Verbosity) {
	if v < 2 {
		return
	}

	score := scoreString(info)
	if v == 2 {
		fmt.Fprintf(sb, " {%v/%v}", score, info.Depth)
	} else {
		fmt.Fprintf(sb, " {%v/%v %vms}", score, info.Depth, info.Time.Milliseconds())
	}
}

func scoreString(info match.PlyInfo) string {
	if !info.Mate {
		return strconv.Itoa(info.Score)
	}
	if info.Score > 0 {
		return fmt.Sprintf("M%v", 32767-info.Score)
	}
	return fmt.Sprintf("-M%v", info.Score-(-32768))
}
