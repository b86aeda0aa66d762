// Package sampling supplies entropy sources and a ternary-polynomial
// sampler: uniformly distributed integers, consumed by rejection sampling
// until a requested number of +1 and -1 coefficients is placed.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/ntru-go/ntru/ring"
)

// Source supplies uniformly distributed integers in [0, n). Implementations
// must be safe to call repeatedly from a single goroutine; the package makes
// no concurrency guarantee beyond that.
type Source interface {
	Int63n(n int64) int64
}

// systemSource draws from crypto/rand, the only non-deterministic entropy
// source this package provides.
type systemSource struct{}

// NewSystemSource returns a Source backed by the operating system's CSPRNG.
func NewSystemSource() Source {
	return systemSource{}
}

func (systemSource) Int63n(n int64) int64 {
	if n <= 0 {
		panic("sampling: Int63n requires n > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(fmt.Sprintf("sampling: entropy source failed: %v", err))
	}
	return v.Int64()
}

// KeyedPRNG is a deterministic, seed-driven entropy source: clocking a
// blake2b digest forward and re-seeding it from its own output lets
// independent parties agree on shared randomness from a common seed. It
// lets tests and reproducible tooling request the same ternary polynomial
// twice from the same seed, without requiring the caller to pass a raw
// []int64 in.
type KeyedPRNG struct {
	seed    []byte
	digest  []byte // 64 bytes of blake2b-512 output, not yet consumed
	spent   int    // bytes of digest already handed out
	clock   uint64
	running []byte // accumulator fed back into the hash each clock tick
}

// NewKeyedPRNG creates a KeyedPRNG seeded with seed. Equal seeds produce
// equal sequences of Int63n calls.
func NewKeyedPRNG(seed []byte) *KeyedPRNG {
	p := &KeyedPRNG{
		seed:    append([]byte(nil), seed...),
		running: append([]byte(nil), seed...),
	}
	p.clockDigest()
	return p
}

func (p *KeyedPRNG) clockDigest() {
	sum := blake2b.Sum512(p.running)
	p.digest = sum[:]
	p.running = sum[:32]
	p.spent = 0
	p.clock++
}

func (p *KeyedPRNG) nextUint64() uint64 {
	if p.spent+8 > len(p.digest) {
		p.clockDigest()
	}
	v := binary.BigEndian.Uint64(p.digest[p.spent : p.spent+8])
	p.spent += 8
	return v
}

// Int63n returns a uniform value in [0, n) using rejection sampling over the
// digest stream so the result carries no modulo bias.
func (p *KeyedPRNG) Int63n(n int64) int64 {
	if n <= 0 {
		panic("sampling: Int63n requires n > 0")
	}
	u := uint64(n)
	lim := ((uint64(1) << 63) / u) * u
	for {
		v := p.nextUint64() &^ (1 << 63)
		if v < lim {
			return int64(v % u)
		}
	}
}

// Clock reports how many digests have been computed, the initial one from
// the seed included (so it is 1 right after NewKeyedPRNG); exposed for tests that want to assert on determinism without depending on
// internal buffering.
func (p *KeyedPRNG) Clock() uint64 {
	return p.clock
}

// Ternary draws a ternary polynomial of length N with exactly numPlusOne
// coefficients set to +1 and exactly numMinusOne set to -1, the rest 0, by
// rejection sampling over src.
func Ternary(src Source, N, numPlusOne, numMinusOne int) (*ring.Poly, error) {
	if numPlusOne+numMinusOne > N {
		return nil, fmt.Errorf("%w: %d+%d nonzero coefficients requested for a degree-%d polynomial", ring.ErrParameterMisuse, numPlusOne, numMinusOne, N)
	}

	p := ring.NewPoly(N)
	placed := make([]bool, N)

	place := func(remaining int, value int64) {
		for remaining > 0 {
			i := int(src.Int63n(int64(N)))
			if placed[i] {
				continue
			}
			placed[i] = true
			p.SetInt64(i, value)
			remaining--
		}
	}
	place(numPlusOne, 1)
	place(numMinusOne, -1)

	return p, nil
}
