package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/herohde/gauntlet/pkg/chess"
	"github.com/herohde/gauntlet/pkg/match"
	"github.com/herohde/gauntlet/pkg/openings"
	"github.com/herohde/gauntlet/pkg/pgn"
	"github.com/herohde/gauntlet/pkg/sampleio"
	"github.com/herohde/gauntlet/pkg/uciclient"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

var (
	engineFlags  stringList
	openingsPath = flag.String("openings", "", "File of starting FENs, one per line (or 'startpos')")
	random       = flag.Bool("random", false, "Shuffle the openings cursor per worker")
	games        = flag.Int("games", 1, "Number of games to play")
	concurrency  = flag.Int("concurrency", 1, "Number of concurrent worker goroutines")
	pgnOut       = flag.String("pgnout", "", "PGN output file (default: stdout)")
	sampleOut    = flag.String("sampleout", "", "Sample output file")
	sampleFormat = flag.String("sampleformat", "csv", "Sample output format: csv or bin")
	movetime     = flag.Duration("movetime", 0, "Fixed time per move, if set")
	sampleFreq   = flag.Float64("samplefreq", 0, "Sample extraction probability")
	drawCount    = flag.Int("drawcount", 0, "Consecutive low-score full moves to adjudicate a draw (0 disables)")
	drawScore    = flag.Int("drawscore", 0, "Centipawn threshold for draw adjudication")
	drawNumber   = flag.Int("drawnumber", 1, "Minimum full-move number for draw adjudication")
	engineTimeout = flag.Duration("enginetimeout", 10*time.Second, "Wall-clock bound when no time control is configured")
)

func init() {
	flag.Var(&engineFlags, "engine", "Engine binary path; repeat twice, once per side")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `gauntlet %v: run automated matches between two UCI chess engines

Usage: gauntlet -engine <path1> -engine <path2> -openings <file> [options]

Options:
`, version)
		flag.PrintDefaults()
	}
}

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	flag.Parse()
	ctx := context.Background()

	if len(engineFlags) != 2 {
		flag.Usage()
		logw.Exitf(ctx, "Exactly two -engine flags are required")
	}
	if *openingsPath == "" {
		flag.Usage()
		logw.Exitf(ctx, "-openings is required")
	}

	var pgnWriter *os.File
	if *pgnOut == "" {
		pgnWriter = os.Stdout
	} else {
		f, err := os.Create(*pgnOut)
		if err != nil {
			logw.Exitf(ctx, "Cannot create %v: %v", *pgnOut, err)
		}
		defer f.Close()
		pgnWriter = f
	}
	var pgnMu sync.Mutex

	var sw *sampleio.Writer
	if *sampleOut != "" {
		f, err := os.Create(*sampleOut)
		if err != nil {
			logw.Exitf(ctx, "Cannot create %v: %v", *sampleOut, err)
		}
		defer f.Close()
		sw = sampleio.NewWriter(f)
	}

	mo := match.MatchOptions{
		SampleFreq:    *sampleFreq,
		EngineTimeout: *engineTimeout,
	}
	if *drawCount > 0 {
		mo.DrawCount = lang.Some(*drawCount)
		mo.DrawScore = lang.Some(*drawScore)
		mo.DrawNumber = lang.Some(*drawNumber)
	}

	var eo match.EngineOptions
	if *movetime > 0 {
		eo.MoveTime = lang.Some(*movetime)
	}
	opts := [2]match.EngineOptions{eo, eo}

	var wg sync.WaitGroup
	sem := make(chan struct{}, *concurrency)
	gameCh := make(chan int, *games)
	for i := 0; i < *games; i++ {
		gameCh <- i
	}
	close(gameCh)

	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, gameCh, sem, opts, mo, pgnWriter, &pgnMu, sw)
		}(w)
	}
	wg.Wait()
}

func runWorker(ctx context.Context, workerID int, gameCh <-chan int, sem chan struct{}, opts [2]match.EngineOptions, mo match.MatchOptions, pgnWriter *os.File, pgnMu *sync.Mutex, sw *sampleio.Writer) {
	cursor, err := openings.Open(ctx, *openingsPath, *random, int64(workerID))
	if err != nil {
		logw.Exitf(ctx, "worker %v: %v", workerID, err)
	}
	defer cursor.Close()

	w := match.NewWorker(workerID)

	for gameNum := range gameCh {
		sem <- struct{}{}
		playOne(ctx, w, gameNum, cursor, opts, mo, pgnWriter, pgnMu, sw)
		<-sem
	}
}

func playOne(ctx context.Context, w *match.Worker, gameNum int, cursor *openings.Cursor, opts [2]match.EngineOptions, mo match.MatchOptions, pgnWriter *os.File, pgnMu *sync.Mutex, sw *sampleio.Writer) {
	fen, err := cursor.Next()
	if err != nil {
		logw.Exitf(ctx, "openings: %v", err)
	}
	start, err := chess.ParseFEN(fen)
	if err != nil {
		logw.Errorf(ctx, "invalid opening fen %q: %v", fen, err)
		return
	}

	var clients [2]match.EngineClient
	var names [2]string
	for i, path := range engineFlags {
		c, err := uciclient.Start(ctx, fmt.Sprintf("engine%v", i), path)
		if err != nil {
			logw.Exitf(ctx, "%v", err)
		}
		defer c.Close()
		clients[i] = c
		names[i] = path
	}

	reverse := gameNum%2 == 1
	g, _, err := match.Play(ctx, w, 0, gameNum, start, clients, names, opts, mo, reverse)
	if err != nil {
		logw.Errorf(ctx, "game %v failed: %v", gameNum, err)
		return
	}

	pgnMu.Lock()
	fmt.Fprint(pgnWriter, pgn.Write(g, pgn.V2))
	pgnMu.Unlock()

	if sw != nil && len(g.Samples) > 0 {
		if *sampleFormat == "bin" {
			_ = sw.WriteBinary(g.Samples)
		} else {
			_ = sw.WriteCSV(g.Samples)
		}
	}
}
