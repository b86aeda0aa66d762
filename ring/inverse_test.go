package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// coeffInts renders p's coefficients as plain int64s, the shape go-cmp can
// diff directly (big.Int carries unexported fields cmp.Diff would panic
// on comparing raw).
func coeffInts(p *Poly) []int64 {
	out := make([]int64, p.N())
	for i := range out {
		out[i] = p.Get(i).Int64()
	}
	return out
}

// f, g are a fixed ternary polynomial pair for N=11, p=3, q=32, used
// across tests that need a known-invertible f.
func pinnedFG(t *testing.T) (f, g *Poly) {
	t.Helper()
	f = NewPolyFromInts(11, []int64{-1, 1, 1, 0, -1, 0, 1, 0, 0, 1, -1})
	g = NewPolyFromInts(11, []int64{-1, 0, 1, 1, 0, 1, 0, 0, -1, 0, -1})
	return
}

func TestInvertMod2kPinnedVector(t *testing.T) {
	prm := testParams(t)
	f, _ := pinnedFG(t)

	fq, err := InvertMod2k(f, prm)
	require.NoError(t, err)

	check := NewPoly(prm.N)
	StarMultiply(f, fq, check, prm.Q)
	require.True(t, check.Equal(identity(prm.N)), "f star Fq mod q must be 1")
}

func TestInvertModPPinnedVector(t *testing.T) {
	prm := testParams(t)
	f, _ := pinnedFG(t)

	fp, err := InvertModP(f, prm)
	require.NoError(t, err)

	want := NewPolyFromInts(prm.N, []int64{1, 2, 0, 2, 2, 1, 0, 2, 1, 2, 0})
	if !fp.Equal(want) {
		t.Fatalf("F_p mismatch (-want +got):\n%s", cmp.Diff(coeffInts(want), coeffInts(fp)))
	}

	check := NewPoly(prm.N)
	StarMultiply(f, fp, check, prm.P)
	require.True(t, check.Equal(identity(prm.N)), "f star Fp mod p must be 1")
}

func TestInvertNonInvertiblePolynomial(t *testing.T) {
	prm := testParams(t)
	f := NewPolyFromInts(prm.N, []int64{0, 0, 1, 0, -1, 0, 0, 0, 0, 1, -1})

	_, err := InvertMod2k(f, prm)
	require.ErrorIs(t, err, ErrNotInvertible)
}
