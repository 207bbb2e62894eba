package ed25519ref

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign_KnownAnswer(t *testing.T) {
	for _, v := range rfc8032Vectors {
		t.Run(v.name, func(t *testing.T) {
			sig, err := Sign(mustHex(t, v.message), mustHex(t, v.seed), mustHex(t, v.publicKey))
			require.NoError(t, err)
			require.Len(t, sig, SignatureSize)
			require.Equal(t, v.signature, hex.EncodeToString(sig))
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	v := rfc8032Vectors[2]
	seed, pub, msg := mustHex(t, v.seed), mustHex(t, v.publicKey), mustHex(t, v.message)

	first, err := Sign(msg, seed, pub)
	require.NoError(t, err)
	second, err := Sign(msg, seed, pub)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSign_SIsReduced(t *testing.T) {
	v := rfc8032Vectors[0]
	sig, err := Sign(nil, mustHex(t, v.seed), mustHex(t, v.publicKey))
	require.NoError(t, err)
	require.Negative(t, DecodeInt(sig[32:]).Cmp(l))
}

func TestSign_InvalidLength(t *testing.T) {
	v := rfc8032Vectors[0]
	_, err := Sign(nil, make([]byte, 16), mustHex(t, v.publicKey))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = Sign(nil, mustHex(t, v.seed), make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestSign_CrossCheck(t *testing.T) {
	seed := H([]byte("cross-check seed"))[:SeedSize]
	pub, err := PublicKey(seed)
	require.NoError(t, err)

	ok, err := CrossCheckPublicKey(seed, pub)
	require.NoError(t, err)
	require.True(t, ok)

	msg := []byte("signed by the big-integer implementation")
	sig, err := Sign(msg, seed, pub)
	require.NoError(t, err)

	ok, err = CrossCheckSignature(sig, msg, pub)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CrossCheckSignature(sig, []byte("another message"), pub)
	require.NoError(t, err)
	require.False(t, ok)
}

func BenchmarkSign(b *testing.B) {
	v := rfc8032Vectors[2]
	seed, pub, msg := mustHex(b, v.seed), mustHex(b, v.publicKey), mustHex(b, v.message)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(msg, seed, pub); err != nil {
			b.Fatal(err)
		}
	}
}
