package ed25519ref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify_KnownAnswer(t *testing.T) {
	for _, v := range rfc8032Vectors {
		t.Run(v.name, func(t *testing.T) {
			err := Verify(mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, v.publicKey))
			require.NoError(t, err)
			require.True(t, Valid(mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, v.publicKey)))
		})
	}
}

func TestVerify_SignRoundTrip(t *testing.T) {
	messages := [][]byte{
		nil,
		[]byte("x"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		make([]byte, 1024),
	}
	seed := H([]byte("round-trip seed"))[:SeedSize]
	pub, err := PublicKey(seed)
	require.NoError(t, err)

	for _, msg := range messages {
		sig, err := Sign(msg, seed, pub)
		require.NoError(t, err)
		require.NoError(t, Verify(sig, msg, pub), "message length %d", len(msg))
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	v := rfc8032Vectors[2]
	sig, msg, pub := mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, v.publicKey)

	// Bits 0-255 touch R, bits 256-511 touch S. The R flips chosen here all
	// still decode to curve points.
	for _, i := range []int{0, 1, 254, 255, 256, 263, 300, 400, 511} {
		err := Verify(flipBit(sig, i), msg, pub)
		require.ErrorIs(t, err, ErrVerificationFailed, "flipped signature bit %d", i)
	}
}

func TestVerify_TamperedMessage(t *testing.T) {
	v := rfc8032Vectors[2]
	sig, msg, pub := mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, v.publicKey)

	for _, i := range []int{0, 7, 8, 15} {
		err := Verify(sig, flipBit(msg, i), pub)
		require.ErrorIs(t, err, ErrVerificationFailed, "flipped message bit %d", i)
	}

	err := Verify(sig, append(msg, 0), pub)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerify_WrongPublicKey(t *testing.T) {
	v := rfc8032Vectors[2]
	err := Verify(mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, rfc8032Vectors[1].publicKey))
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerify_InvalidLength(t *testing.T) {
	v := rfc8032Vectors[0]
	sig, pub := mustHex(t, v.signature), mustHex(t, v.publicKey)

	for _, n := range []int{0, 32, 63, 65, 128} {
		err := Verify(make([]byte, n), nil, pub)
		require.ErrorIs(t, err, ErrInvalidLength, "signature length %d", n)
	}
	for _, n := range []int{0, 31, 33, 64} {
		err := Verify(sig, nil, make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidLength, "public key length %d", n)
	}

	// A bad length wins over an undecodable R.
	garbage := make([]byte, 63)
	garbage[0] = 2
	require.ErrorIs(t, Verify(garbage, nil, pub), ErrInvalidLength)
}

func TestVerify_NotOnCurve(t *testing.T) {
	v := rfc8032Vectors[2]
	sig, msg, pub := mustHex(t, v.signature), mustHex(t, v.message), mustHex(t, v.publicKey)

	t.Run("R", func(t *testing.T) {
		for _, i := range []int{7, 100} {
			err := Verify(flipBit(sig, i), msg, pub)
			require.ErrorIs(t, err, ErrNotOnCurve, "flipped signature bit %d", i)
			require.NotErrorIs(t, err, ErrVerificationFailed)
		}
	})

	t.Run("PublicKey", func(t *testing.T) {
		bad := make([]byte, 32)
		bad[0] = 2
		err := Verify(sig, msg, bad)
		require.ErrorIs(t, err, ErrNotOnCurve)
	})
}

func BenchmarkVerify(b *testing.B) {
	v := rfc8032Vectors[2]
	sig, msg, pub := mustHex(b, v.signature), mustHex(b, v.message), mustHex(b, v.publicKey)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Verify(sig, msg, pub); err != nil {
			b.Fatal(err)
		}
	}
}
