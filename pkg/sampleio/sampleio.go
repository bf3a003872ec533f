// Package sampleio serializes match.Game samples as CSV or a pinned little-endian packed
// binary format. Writing is atomic at the game level: each Write call holds the Writer's
// lock for the duration of one game's samples so concurrent workers' output never
// interleaves.
package sampleio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/herohde/gauntlet/pkg/match"
)

// Writer serializes samples to an underlying stream, one game at a time.
type Writer struct {
	w  io.Writer
	mu sync.Mutex
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteCSV emits one line per sample: "<FEN>,<score>,<result>\n". Holds the writer's lock
// for the whole game.
func (w *Writer) WriteCSV(samples []match.Sample) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, s := range samples {
		if _, err := fmt.Fprintf(w.w, "%v,%v,%v\n", s.Pos.FEN(), s.Score, int(s.Result)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBinary emits, per sample, the packed position (see pkg/chess.Position.Pack),
// followed by score (little-endian int16) and result (uint8). This is the pinned format
// resolving the native-width/endianness open question: little-endian score:i16, result:u8.
func (w *Writer) WriteBinary(samples []match.Sample) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, s := range samples {
		packed := s.Pos.Pack()
		if _, err := w.w.Write(packed); err != nil {
			return err
		}
		var buf [3]byte
		binary.LittleEndian.PutUint16(buf[0:2], uint16(s.Score))
		buf[2] = byte(s.Result)
		if _, err := w.w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
