package ntru

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ntru-go/ntru/ring"
	"github.com/ntru-go/ntru/sampling"
)

func testParams(t *testing.T) *ring.Params {
	t.Helper()
	prm, err := ring.NewParams(11, 3, 32)
	require.NoError(t, err)
	return prm
}

// pinnedFG is a fixed (f, g) pair for N=11, p=3, q=32, reused across tests
// that need a known-invertible f.
func pinnedFG(t *testing.T) (f, g *ring.Poly) {
	t.Helper()
	f = ring.NewPolyFromInts(11, []int64{-1, 1, 1, 0, -1, 0, 1, 0, 0, 1, -1})
	g = ring.NewPolyFromInts(11, []int64{-1, 0, 1, 1, 0, 1, 0, 0, -1, 0, -1})
	return
}

func TestCreateKeyPairPinnedVector(t *testing.T) {
	prm := testParams(t)
	f, g := pinnedFG(t)

	kp, err := CreateKeyPair(f, g, prm)
	require.NoError(t, err)

	wantPub := ring.NewPolyFromInts(11, []int64{8, 25, 22, 20, 12, 24, 15, 19, 12, 19, 16})
	require.True(t, kp.Pub.Equal(wantPub), "got %v want %v", kp.Pub.Coeffs, wantPub.Coeffs)

	wantFp := ring.NewPolyFromInts(11, []int64{1, 2, 0, 2, 2, 1, 0, 2, 1, 2, 0})
	require.True(t, kp.PrivInv.Equal(wantFp), "got %v want %v", kp.PrivInv.Coeffs, wantFp.Coeffs)
}

func TestCreateKeyPairRejectsMismatchedN(t *testing.T) {
	prm := testParams(t)
	f := ring.NewPoly(5)
	g := ring.NewPoly(5)

	_, err := CreateKeyPair(f, g, prm)
	require.ErrorIs(t, err, ring.ErrParameterMisuse)
}

func TestGenerateKeyPairRetriesOnNonInvertible(t *testing.T) {
	prm := testParams(t)
	src := sampling.NewKeyedPRNG([]byte("keygen-retry-seed"))

	kp, err := GenerateKeyPair(src, prm, 3, 3, 64)
	require.NoError(t, err)

	check := ring.NewPoly(prm.N)
	ring.StarMultiply(kp.Priv, kp.PrivInv, check, prm.P)
	one := ring.NewPoly(prm.N)
	one.SetInt64(0, 1)
	require.True(t, check.Equal(one), "f star F_p mod p must be the identity")
}

// TestGenerateKeyPairExhaustsAttempts uses df=dg=0, which makes every
// sampled f the zero polynomial: always a samplable request (0+0 <= N), and
// always non-invertible, since the zero polynomial has no multiplicative
// inverse mod 2. This drives GenerateKeyPair's retry loop through every one
// of maxAttempts tries before it gives up, rather than failing before the
// loop is ever entered.
func TestGenerateKeyPairExhaustsAttempts(t *testing.T) {
	prm := testParams(t)
	src := sampling.NewKeyedPRNG([]byte("always-fails"))

	_, err := GenerateKeyPair(src, prm, 0, 0, 5)
	require.Error(t, err)
	require.ErrorIs(t, err, ring.ErrNotInvertible)
}

// TestEncryptDecryptRoundTrip exercises the full string-level pipeline with
// the pinned key pair and a reused random polynomial r. See DESIGN.md for
// why this test asserts round-trip fidelity rather than a literal pinned
// ciphertext: it verifies the implementation is self-consistent and
// recovers the original plaintext exactly, which is the property every
// caller of EncryptString/DecryptString actually depends on.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	prm := testParams(t)
	f, g := pinnedFG(t)
	kp, err := CreateKeyPair(f, g, prm)
	require.NoError(t, err)

	r := ring.NewPolyFromInts(11, []int64{-1, 0, 1, 1, 1, -1, 0, -1, 0, 0, 0})

	msg := []byte("BLAHFASEL\n")
	ciphertext, err := EncryptString(msg, kp.Pub, r, prm)
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)

	got, err := DecryptString(ciphertext, kp.Priv, kp.PrivInv, prm)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestEncryptStringRejectsEmptyMessage(t *testing.T) {
	prm := testParams(t)
	f, g := pinnedFG(t)
	kp, err := CreateKeyPair(f, g, prm)
	require.NoError(t, err)

	r := ring.NewPolyFromInts(11, []int64{-1, 0, 1, 1, 1, -1, 0, -1, 0, 0, 0})
	_, err = EncryptString(nil, kp.Pub, r, prm)
	require.ErrorIs(t, err, ring.ErrMalformedInput)
}

func TestEncryptDecryptRoundTripMultiChunkMessage(t *testing.T) {
	prm := testParams(t)
	f, g := pinnedFG(t)
	kp, err := CreateKeyPair(f, g, prm)
	require.NoError(t, err)

	r := ring.NewPolyFromInts(11, []int64{1, 0, -1, 0, 1, 0, -1, 1, 0, -1, 0})

	msg := []byte("the quick brown fox jumps over the lazy dog")
	ciphertext, err := EncryptString(msg, kp.Pub, r, prm)
	require.NoError(t, err)

	got, err := DecryptString(ciphertext, kp.Priv, kp.PrivInv, prm)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}
