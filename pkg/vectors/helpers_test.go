package vectors

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixturesDir returns the path to the fixtures directory (works regardless of test cwd).
func fixturesDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "fixtures")
}

// loadTestVectors loads sign.input style vectors from the fixtures directory.
func loadTestVectors(t *testing.T, filename string) []*Vector {
	t.Helper()
	parser := &LineParser{}
	vectors, err := parser.ParseVectors(filepath.Join(fixturesDir(), filename))
	require.NoError(t, err)
	return vectors
}

func quietHarness() *Harness {
	return NewHarness().WithLogger(zerolog.Nop())
}
