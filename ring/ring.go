// Package ring implements arbitrary-precision modular arithmetic over the
// convolution ring R = Z[X]/(X^N - 1): cyclic-convolution star-multiply,
// balanced/unsigned coefficient reductions, and the almost-inverse algorithm
// (with Hensel lifting) used to invert a polynomial modulo 2^k or modulo a
// small prime p.
package ring

import (
	"fmt"
	"math/big"
)

// Params is the immutable (N, q, p) triple: N the polynomial degree bound, q
// a power of two, p a small integer coprime to q. Created once and read-only
// thereafter.
type Params struct {
	N int
	Q *big.Int
	P *big.Int

	q int64 // convenience caches of Q/P as plain int64, valid for typical
	p int64 // NTRU-sized parameters; the *big.Int fields remain authoritative.
}

// NewParams validates and constructs a Params triple. It fails fast if
// N <= 0, q is not a power of two, or p and q are not coprime.
func NewParams(N int, p, q int64) (*Params, error) {
	if N <= 0 {
		return nil, fmt.Errorf("%w: N must be positive, got %d", ErrParameterMisuse, N)
	}
	if q <= 0 || q&(q-1) != 0 {
		return nil, fmt.Errorf("%w: q must be a positive power of two, got %d", ErrParameterMisuse, q)
	}
	if p <= 0 {
		return nil, fmt.Errorf("%w: p must be positive, got %d", ErrParameterMisuse, p)
	}

	bp, bq := big.NewInt(p), big.NewInt(q)
	if new(big.Int).GCD(nil, nil, bp, bq).Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: p=%d and q=%d are not coprime", ErrParameterMisuse, p, q)
	}

	return &Params{N: N, Q: bq, P: bp, q: q, p: p}, nil
}

// String renders Params as "N=.. p=.. q=..", useful for test failure messages.
func (prm *Params) String() string {
	return fmt.Sprintf("N=%d p=%d q=%d", prm.N, prm.p, prm.q)
}

// NewPoly allocates a zero polynomial sized for these parameters.
func (prm *Params) NewPoly() *Poly {
	return NewPoly(prm.N)
}

// Check returns ErrParameterMisuse if any of polys does not have N
// coefficients matching prm.
func (prm *Params) Check(polys ...*Poly) error {
	for _, p := range polys {
		if p.N() != prm.N {
			return fmt.Errorf("%w: polynomial has N=%d, parameters have N=%d", ErrParameterMisuse, p.N(), prm.N)
		}
	}
	return nil
}

// checkN is the internal spelling of Check, used by this package's own
// primitives.
func (prm *Params) checkN(polys ...*Poly) error {
	return prm.Check(polys...)
}
