package ring

import (
	"math/big"
)

// Poly is a dense polynomial in R = Z[X]/(X^N - 1): N arbitrary-precision
// coefficients indexed 0..N-1, representing c_0 + c_1 X + ... + c_{N-1} X^{N-1}.
// Coefficients may be negative; a missing slot is defined to be zero.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly allocates a zero polynomial with N coefficients.
func NewPoly(N int) *Poly {
	p := &Poly{Coeffs: make([]*big.Int, N)}
	for i := range p.Coeffs {
		p.Coeffs[i] = new(big.Int)
	}
	return p
}

// NewPolyFromInts builds a polynomial of length N from a coefficient list.
// Coefficients beyond len(values) are zero. Passing more values than N is a
// programmer error (panics), since this is a construction path for literal
// test/program data, not a parser of untrusted input.
func NewPolyFromInts(N int, values []int64) *Poly {
	if len(values) > N {
		panic("ring: NewPolyFromInts: more coefficients than N")
	}
	p := NewPoly(N)
	for i, v := range values {
		p.Coeffs[i].SetInt64(v)
	}
	return p
}

// N returns the number of coefficient slots of p.
func (p *Poly) N() int {
	return len(p.Coeffs)
}

// Get returns the coefficient at index i, or zero if i is out of range.
func (p *Poly) Get(i int) *big.Int {
	if i < 0 || i >= len(p.Coeffs) {
		return new(big.Int)
	}
	return p.Coeffs[i]
}

// Set assigns the coefficient at index i to v.
func (p *Poly) Set(i int, v *big.Int) {
	p.Coeffs[i].Set(v)
}

// SetInt64 assigns the coefficient at index i to v.
func (p *Poly) SetInt64(i int, v int64) {
	p.Coeffs[i].SetInt64(v)
}

// Zero sets every coefficient of p to zero.
func (p *Poly) Zero() {
	for _, c := range p.Coeffs {
		c.SetInt64(0)
	}
}

// CopyNew returns a fresh, independent copy of p.
func (p *Poly) CopyNew() *Poly {
	q := NewPoly(p.N())
	for i, c := range p.Coeffs {
		q.Coeffs[i].Set(c)
	}
	return q
}

// Copy copies the coefficients of src into p. p and src must share the same N.
func (p *Poly) Copy(src *Poly) {
	if p == src {
		return
	}
	for i, c := range src.Coeffs {
		p.Coeffs[i].Set(c)
	}
}

// Equal reports whether p and other have identical coefficients (strict
// equality, not congruence modulo some m).
func (p *Poly) Equal(other *Poly) bool {
	if p.N() != other.N() {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(other.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Swap exchanges the contents of p and q in place (both must share N).
func Swap(p, q *Poly) {
	p.Coeffs, q.Coeffs = q.Coeffs, p.Coeffs
}

// Degree returns the index of the highest nonzero coefficient, or -1 if p is
// the zero polynomial.
func (p *Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Add sets out to a + b, coefficient-wise. Aliasing out with a or b is safe.
func Add(a, b, out *Poly) {
	n := a.N()
	tmp := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		tmp[i] = new(big.Int).Add(a.Coeffs[i], b.Coeffs[i])
	}
	out.Coeffs = tmp
}

// Sub sets out to a - b, coefficient-wise. Aliasing out with a or b is safe.
func Sub(a, b, out *Poly) {
	n := a.N()
	tmp := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		tmp[i] = new(big.Int).Sub(a.Coeffs[i], b.Coeffs[i])
	}
	out.Coeffs = tmp
}

// ScalarMul sets out to s*a, coefficient-wise. Aliasing out with a is safe.
func ScalarMul(a *Poly, s int64, out *Poly) {
	n := a.N()
	bs := big.NewInt(s)
	tmp := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		tmp[i] = new(big.Int).Mul(a.Coeffs[i], bs)
	}
	out.Coeffs = tmp
}

// ModUnsigned reduces every coefficient of p to its unique representative in
// [0, m). p is modified in place.
func (p *Poly) ModUnsigned(m *big.Int) {
	for _, c := range p.Coeffs {
		c.Mod(c, m)
	}
}

// ModUnsignedCopy returns a new polynomial equal to p reduced into [0, m);
// p itself is left untouched.
func (p *Poly) ModUnsignedCopy(m *big.Int) *Poly {
	out := p.CopyNew()
	out.ModUnsigned(m)
	return out
}

// ModBalanced reduces every coefficient of p to its unique representative in
// [-floor(m/2), ceil(m/2)): [-m/2, m/2) for even m, [-(m-1)/2, (m-1)/2] for
// odd m. p is modified in place.
func (p *Poly) ModBalanced(m *big.Int) {
	upper := new(big.Int).Add(m, big.NewInt(1))
	upper.Rsh(upper, 1)
	for _, c := range p.Coeffs {
		c.Mod(c, m)
		if c.Cmp(upper) >= 0 {
			c.Sub(c, m)
		}
	}
}

// ModBalancedCopy returns a new polynomial equal to p reduced into
// [-floor(m/2), ceil(m/2)); p itself is left untouched.
func (p *Poly) ModBalancedCopy(m *big.Int) *Poly {
	out := p.CopyNew()
	out.ModBalanced(m)
	return out
}

// StarMultiply computes the cyclic convolution out = a (star) b in R,
// reducing every output coefficient modulo m into [0, m). It tolerates
// aliasing: out may be the same Poly as a and/or b, because accumulation
// happens into a fresh buffer that is only attached to out once complete.
func StarMultiply(a, b, out *Poly, m *big.Int) {
	n := a.N()
	acc := make([]*big.Int, n)
	for k := range acc {
		acc[k] = new(big.Int)
	}

	t := new(big.Int)
	for i := 0; i < n; i++ {
		if a.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b.Coeffs[j].Sign() == 0 {
				continue
			}
			k := i + j
			if k >= n {
				k -= n
			}
			t.Mul(a.Coeffs[i], b.Coeffs[j])
			acc[k].Add(acc[k], t)
		}
	}

	for k := 0; k < n; k++ {
		acc[k].Mod(acc[k], m)
	}

	out.Coeffs = acc
}
