package ring

import "math/big"

// almostInverse implements the NTRU Tech Report #014 "almost inverse"
// algorithm over (Z/mZ)[X], generalized to any modulus m (prime or m=2):
// both InvertMod2k's base case and InvertModP reduce to this one routine,
// parameterized by m, rather than duplicating the GCD-style loop per
// modulus.
//
// It returns the N coefficients of b(X), multiplied by f_0^-1 and rotated
// down by k positions (b_i lands at index (i - k) mod N); the callers use
// the result directly.
func almostInverse(a *Poly, N int, m *big.Int) (shifted []*big.Int, err error) {
	buf := 2*N + 4

	newRaw := func() []*big.Int {
		r := make([]*big.Int, buf)
		for i := range r {
			r[i] = new(big.Int)
		}
		return r
	}

	f, g, b, c := newRaw(), newRaw(), newRaw(), newRaw()

	for i := 0; i < N; i++ {
		f[i].Mod(a.Get(i), m)
	}
	g[0].Mod(big.NewInt(-1), m)
	g[N].SetInt64(1)
	b[0].SetInt64(1)

	allZero := func(p []*big.Int) bool {
		for _, c := range p {
			if c.Sign() != 0 {
				return false
			}
		}
		return true
	}
	degree := func(p []*big.Int) int {
		for i := len(p) - 1; i >= 0; i-- {
			if p[i].Sign() != 0 {
				return i
			}
		}
		return -1
	}
	shiftDown := func(p []*big.Int) {
		for i := 0; i < len(p)-1; i++ {
			p[i].Set(p[i+1])
		}
		p[len(p)-1].SetInt64(0)
	}
	shiftUp := func(p []*big.Int) {
		for i := len(p) - 1; i > 0; i-- {
			p[i].Set(p[i-1])
		}
		p[0].SetInt64(0)
	}

	k := 0
	for {
		for {
			if allZero(f) {
				return nil, ErrNotInvertible
			}
			if f[0].Sign() != 0 {
				break
			}
			shiftDown(f)
			shiftUp(c)
			k++
		}

		if degree(f) == 0 {
			break
		}

		if degree(f) < degree(g) {
			f, g = g, f
			b, c = c, b
		}

		g0inv := new(big.Int)
		if g0inv.ModInverse(g[0], m) == nil {
			return nil, ErrNotInvertible
		}
		u := new(big.Int).Mul(f[0], g0inv)
		u.Mod(u, m)

		t := new(big.Int)
		for i := 0; i < buf; i++ {
			t.Mul(u, g[i])
			f[i].Sub(f[i], t)
			f[i].Mod(f[i], m)

			t.Mul(u, c[i])
			b[i].Sub(b[i], t)
			b[i].Mod(b[i], m)
		}
	}

	// f is now the nonzero constant f_0; correct b by its inverse so that
	// b*a really is congruent to 1, not merely to f_0. For m=2, f_0 is
	// always 1 so this is a no-op.
	f0inv := new(big.Int)
	if f0inv.ModInverse(f[0], m) == nil {
		return nil, ErrNotInvertible
	}
	for i := range b {
		b[i].Mul(b[i], f0inv)
		b[i].Mod(b[i], m)
	}

	k = k % N
	if b[N].Sign() != 0 {
		return nil, ErrNotInvertible
	}

	shifted = make([]*big.Int, N)
	for i := range shifted {
		shifted[i] = new(big.Int)
	}
	for i := 0; i < N; i++ {
		pos := ((i-k)%N + N) % N
		shifted[pos].Set(b[i])
	}
	return shifted, nil
}

// InvertMod2k computes F_q = a^-1 in (Z/qZ)[X]/(X^N - 1), q = 2^k, via the
// almost-inverse algorithm mod 2 followed by Hensel lifting. Returns
// ErrNotInvertible if a has no inverse mod 2, or if the lifted result
// fails the final verification a (star) F_q = 1 (mod q).
func InvertMod2k(a *Poly, prm *Params) (*Poly, error) {
	if err := prm.checkN(a); err != nil {
		return nil, err
	}

	two := big.NewInt(2)
	coeffs, err := almostInverse(a, prm.N, two)
	if err != nil {
		return nil, err
	}

	fq := &Poly{Coeffs: coeffs}

	v := big.NewInt(2)
	for v.Cmp(prm.Q) < 0 {
		v = new(big.Int).Lsh(v, 1)

		aFq := NewPoly(prm.N)
		StarMultiply(a, fq, aFq, v)

		twoMinus := NewPoly(prm.N)
		ScalarMul(aFq, -1, twoMinus)
		twoMinus.Set(0, new(big.Int).Add(twoMinus.Get(0), big.NewInt(2)))
		twoMinus.ModUnsigned(v)

		next := NewPoly(prm.N)
		StarMultiply(fq, twoMinus, next, v)
		fq = next
	}
	fq.ModUnsigned(prm.Q)

	check := NewPoly(prm.N)
	StarMultiply(a, fq, check, prm.Q)
	if !check.Equal(identity(prm.N)) {
		return nil, ErrNotInvertible
	}

	return fq, nil
}

// InvertModP computes F_p = a^-1 in (Z/pZ)[X]/(X^N - 1) via the almost-inverse
// algorithm mod p.
func InvertModP(a *Poly, prm *Params) (*Poly, error) {
	if err := prm.checkN(a); err != nil {
		return nil, err
	}

	coeffs, err := almostInverse(a, prm.N, prm.P)
	if err != nil {
		return nil, err
	}
	fp := &Poly{Coeffs: coeffs}

	check := NewPoly(prm.N)
	StarMultiply(a, fp, check, prm.P)
	if !check.Equal(identity(prm.N)) {
		return nil, ErrNotInvertible
	}

	return fp, nil
}

// identity returns the multiplicative identity of R: the polynomial 1.
func identity(N int) *Poly {
	p := NewPoly(N)
	p.SetInt64(0, 1)
	return p
}
