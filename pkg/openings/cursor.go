// Package openings implements a thread-safe, optionally randomized cursor over a file of
// starting positions shared across worker goroutines.
package openings

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const startposToken = "startpos"

// StartFEN is the standard chess initial position, substituted for the "startpos" token.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Cursor delivers the next starting FEN to a worker on request, cycling through the
// underlying file without skipping or duplicating an entry within one pass.
type Cursor struct {
	iox.AsyncCloser

	file  *os.File
	index []int64

	mu  sync.Mutex
	pos int

	closeOnce sync.Once
}

// Open scans path once, recording the byte offset of each line, and optionally shuffles
// the resulting index with a reproducible permutation seeded from workerID (so different
// workers see different shufflings, but the same workerID always reproduces the same
// shuffle). Failure to open or an empty file is returned as an error; cmd/gauntlet treats
// it as fatal at construction.
func Open(ctx context.Context, path string, random bool, workerID int64) (*Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openings: cannot open %v: %w", path, err)
	}

	index, err := scanLineOffsets(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("openings: cannot scan %v: %w", path, err)
	}
	if len(index) == 0 {
		f.Close()
		return nil, fmt.Errorf("openings: %v is empty", path)
	}

	if random {
		r := rand.New(rand.NewSource(workerID))
		r.Shuffle(len(index), func(i, j int) {
			index[i], index[j] = index[j], index[i]
		})
	}

	logw.Infof(ctx, "Openings cursor over %v (%v entries, random=%v, worker=%v)", path, len(index), random, workerID)

	return &Cursor{
		AsyncCloser: iox.NewAsyncCloser(),
		file:        f,
		index:       index,
	}, nil
}

// scanLineOffsets records the starting byte offset of every non-empty line in f.
func scanLineOffsets(f *os.File) ([]int64, error) {
	var offsets []int64
	r := bufio.NewReader(f)

	var offset int64
	for {
		start := offset
		line, err := r.ReadString('\n')
		offset += int64(len(line))
		if strings.TrimRight(line, "\r\n") != "" {
			offsets = append(offsets, start)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}
	return offsets, nil
}

// Next returns the next FEN in the cycle, substituting StartFEN for the "startpos" token.
func (c *Cursor) Next() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	offset := c.index[c.pos]
	c.pos++
	if c.pos >= len(c.index) {
		c.pos = 0
	}

	if _, err := c.file.Seek(offset, io.SeekStart); err != nil {
		return "", fmt.Errorf("openings: seek failed: %w", err)
	}
	line, err := bufio.NewReader(c.file).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("openings: read failed: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	if line == startposToken {
		return StartFEN, nil
	}
	return line, nil
}

// Close releases the underlying file handle. Idempotent.
func (c *Cursor) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.AsyncCloser.Close()
		err = c.file.Close()
	})
	return err
}
