// Package uciclient spawns a UCI engine subprocess and exposes the small synchronous
// surface the game driver needs: write a line, block until the engine catches up
// (isready/readyok), and run one search to bestmove. Process spawning and pipe I/O are
// explicitly out of the core's scope; this package is the concrete collaborator the core
// depends on only through the EngineClient interface.
package uciclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/herohde/gauntlet/pkg/match"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Info is an alias for the shared engine-telemetry type the driver consumes.
type Info = match.EngineInfo

// Client drives one engine subprocess. Not safe for concurrent use by multiple goroutines;
// the game driver owns one Client per engine per game, matching the "exclusive per worker,
// never shared" resource policy.
type Client struct {
	iox.AsyncCloser

	name string
	cmd  *exec.Cmd
	in   io.WriteCloser
	out  *bufio.Scanner

	mu sync.Mutex
}

// Start spawns path (with args) as a UCI engine, performs the "uci"/"uciok" handshake, and
// returns a Client bound to it. name is the identifier used in logs.
func Start(ctx context.Context, name, path string, args ...string) (*Client, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("uciclient: stdin pipe for %v: %w", name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("uciclient: stdout pipe for %v: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("uciclient: start %v: %w", name, err)
	}

	c := &Client{
		AsyncCloser: iox.NewAsyncCloser(),
		name:        name,
		cmd:         cmd,
		in:          stdin,
		out:         bufio.NewScanner(stdout),
	}

	if err := c.Writeln(ctx, "uci"); err != nil {
		return nil, err
	}
	for c.out.Scan() {
		line := c.out.Text()
		logw.Debugf(ctx, "<< %v: %v", name, line)
		if line == "uciok" {
			return c, nil
		}
	}
	return nil, fmt.Errorf("uciclient: %v closed before uciok", name)
}

// SetChess960 sends the UCI_Chess960 option. Must be called, if at all, before NewGame.
func (c *Client) SetChess960(ctx context.Context) error {
	return c.Writeln(ctx, "setoption name UCI_Chess960 value true")
}

// NewGame sends ucinewgame followed by a Sync round-trip.
func (c *Client) NewGame(ctx context.Context) error {
	if err := c.Writeln(ctx, "ucinewgame"); err != nil {
		return err
	}
	return c.Sync(ctx)
}

// Writeln writes one line to the engine's stdin.
func (c *Client) Writeln(ctx context.Context, line string) error {
	logw.Debugf(ctx, ">> %v: %v", c.name, line)
	_, err := fmt.Fprintln(c.in, line)
	return err
}

// Sync blocks until the engine acknowledges an isready/readyok round trip.
func (c *Client) Sync(ctx context.Context) error {
	if err := c.Writeln(ctx, "isready"); err != nil {
		return err
	}
	for c.out.Scan() {
		line := c.out.Text()
		logw.Debugf(ctx, "<< %v: %v", c.name, line)
		if line == "readyok" {
			return nil
		}
	}
	return fmt.Errorf("uciclient: %v closed before readyok", c.name)
}

// BestMove sends cmd (a "go ..." command already built by pkg/uciproto), and reads info/
// bestmove lines until bestmove or timeout elapses. ok is false iff no bestmove arrived
// within timeout, signaling the caller to terminate the game with TIME_LOSS; the caller is
// expected to subtract the observed elapsed time from its own clock bookkeeping.
func (c *Client) BestMove(ctx context.Context, cmd string, timeout time.Duration) (ok bool, lan string, info Info, elapsed time.Duration, err error) {
	if err = c.Writeln(ctx, cmd); err != nil {
		return false, "", Info{}, 0, err
	}

	deadline := time.Now().Add(timeout)
	lines := make(chan string, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for c.out.Scan() {
			line := c.out.Text()
			select {
			case lines <- line:
			case <-done:
				return
			}
			if strings.HasPrefix(line, "bestmove") {
				return
			}
		}
	}()

	start := time.Now()
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		select {
		case line, open := <-lines:
			if !open {
				return false, "", info, time.Since(start), nil
			}
			logw.Debugf(ctx, "<< %v: %v", c.name, line)
			if strings.HasPrefix(line, "info") {
				parseInfo(line, &info)
				continue
			}
			if strings.HasPrefix(line, "bestmove") {
				fields := strings.Fields(line)
				if len(fields) >= 2 {
					lan = fields[1]
				}
				return true, lan, info, time.Since(start), nil
			}
		case <-time.After(remaining):
			return false, "", info, time.Since(start), nil
		case <-ctx.Done():
			return false, "", info, time.Since(start), ctx.Err()
		}
	}
}

// mateDistanceToScore converts a raw UCI "score mate N" distance (positive: this side
// delivers mate in N; negative: this side is mated in -N) into the INT16-sentinel range
// that pkg/pgn.scoreString and pkg/match.isMateScore assume: scores approach +/-32768 as
// the mate gets closer, with the distance recoverable as 32767-score (delivering) or
// score+32768 (being mated), matching scoreString's inverse.
func mateDistanceToScore(n int) int {
	if n >= 0 {
		return 32767 - n
	}
	return -32768 - n
}

func parseInfo(line string, info *Info) {
	fields := strings.Fields(line)
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					info.Depth = n
				}
			}
		case "score":
			if i+2 < len(fields) {
				if n, err := strconv.Atoi(fields[i+2]); err == nil {
					if fields[i+1] == "mate" {
						info.Score = mateDistanceToScore(n)
						info.Mate = true
					} else {
						info.Score = n
						info.Mate = false
					}
				}
				i++
			}
		case "time":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					info.Time = time.Duration(n) * time.Millisecond
				}
			}
		case "pv":
			info.PV = append([]string{}, fields[i+1:]...)
			return
		}
	}
}

// Close terminates the engine process. Idempotent.
func (c *Client) Close() error {
	var err error
	c.AsyncCloser.Close()
	_ = c.Writeln(context.Background(), "quit")
	_ = c.in.Close()
	if c.cmd.Process != nil {
		err = c.cmd.Process.Kill()
	}
	_ = c.cmd.Wait()
	return err
}
