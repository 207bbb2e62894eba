package vectors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

func TestCheck(t *testing.T) {
	vectors := loadTestVectors(t, "sign.input")
	v := vectors[1]

	require.NoError(t, Check(v, true))

	wrongPub := *v
	wrongPub.PublicKey = vectors[0].PublicKey
	require.ErrorIs(t, Check(&wrongPub, false), ErrPublicKeyMismatch)

	wrongSig := *v
	wrongSig.Signature = vectors[0].Signature
	require.ErrorIs(t, Check(&wrongSig, false), ErrSignatureMismatch)

	shortSeed := *v
	shortSeed.Seed = v.Seed[:31]
	require.ErrorIs(t, Check(&shortSeed, false), ed25519ref.ErrInvalidLength)
}

func TestHarness_Run(t *testing.T) {
	h := quietHarness().WithConfig(DefaultConfig().WithWorkers(4))
	report, err := h.Run(context.Background(), filepath.Join(fixturesDir(), "sign.input"))
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Equal(t, 5, report.Total)
	require.Equal(t, 5, report.Passed)
	require.Empty(t, report.Failures)
}

func TestHarness_RunJSONWithCrossCheck(t *testing.T) {
	h := quietHarness().
		WithParser(&JSONParser{}).
		WithConfig(DefaultConfig().WithWorkers(2).WithCrossCheck(true))
	report, err := h.Run(context.Background(), filepath.Join(fixturesDir(), "vectors.json"))
	require.NoError(t, err)
	require.True(t, report.OK())
}

func TestHarness_ReportsFailures(t *testing.T) {
	h := quietHarness()
	report, err := h.Run(context.Background(), filepath.Join(fixturesDir(), "sign_bad.input"))
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Equal(t, 3, report.Total)
	require.Equal(t, 2, report.Passed)
	require.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	require.Equal(t, 3, report.Failures[0].Line)
	require.ErrorIs(t, report.Failures[0].Err, ErrSignatureMismatch)
}

func TestHarness_FailFast(t *testing.T) {
	vectors := loadTestVectors(t, "sign_bad.input")
	// Put the bad vector first so the single worker stops right away.
	vectors[0], vectors[2] = vectors[2], vectors[0]

	h := quietHarness().WithConfig(DefaultConfig().WithWorkers(1).WithFailFast(true))
	report, err := h.RunVectors(context.Background(), vectors)
	require.ErrorIs(t, err, ErrSignatureMismatch)
	require.Equal(t, 1, report.Failed)
	require.Less(t, report.Passed, 2)
}

func TestHarness_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := quietHarness().Run(ctx, filepath.Join(fixturesDir(), "sign.input"))
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, report.OK())
}

func TestHarness_ParseError(t *testing.T) {
	_, err := quietHarness().Run(context.Background(), filepath.Join(fixturesDir(), "nonexistent.input"))
	require.Error(t, err)
}
