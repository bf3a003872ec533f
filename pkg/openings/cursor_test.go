package openings_test

import (
	"context"
	"os"
	"testing"

	"github.com/herohde/gauntlet/pkg/openings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, lines ...string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "openings-*.txt")
	require.NoError(t, err)
	for _, l := range lines {
		_, err := f.WriteString(l + "\n")
		require.NoError(t, err)
	}
	require.NoError(t, f.Close())
	return f.Name()
}

func TestCursorCyclesWithoutSkipOrDuplicate(t *testing.T) {
	path := writeTempFile(t, "fen1", "fen2", "fen3")

	c, err := openings.Open(context.Background(), path, false, 0)
	require.NoError(t, err)
	defer c.Close()

	var seen []string
	for i := 0; i < 6; i++ {
		fen, err := c.Next()
		require.NoError(t, err)
		seen = append(seen, fen)
	}

	assert.Equal(t, []string{"fen1", "fen2", "fen3", "fen1", "fen2", "fen3"}, seen)
}

func TestCursorSubstitutesStartposToken(t *testing.T) {
	path := writeTempFile(t, "startpos")

	c, err := openings.Open(context.Background(), path, false, 0)
	require.NoError(t, err)
	defer c.Close()

	fen, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, openings.StartFEN, fen)
}

func TestOpenRejectsEmptyFile(t *testing.T) {
	path := writeTempFile(t)

	_, err := openings.Open(context.Background(), path, false, 0)
	assert.Error(t, err)
}

func TestCursorRandomIsReproduciblePerWorker(t *testing.T) {
	path := writeTempFile(t, "fen1", "fen2", "fen3", "fen4", "fen5")

	c1, err := openings.Open(context.Background(), path, true, 7)
	require.NoError(t, err)
	defer c1.Close()

	c2, err := openings.Open(context.Background(), path, true, 7)
	require.NoError(t, err)
	defer c2.Close()

	for i := 0; i < 5; i++ {
		f1, err := c1.Next()
		require.NoError(t, err)
		f2, err := c2.Next()
		require.NoError(t, err)
		assert.Equal(t, f1, f2)
	}
}
