// Package ntru implements the NTRUEncrypt lattice-based cryptosystem over
// the convolution ring github.com/ntru-go/ntru/ring provides: key
// generation, polynomial- and string-level encryption/decryption, and key
// import/export.
package ntru

import (
	"errors"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/ntru-go/ntru/ring"
	"github.com/ntru-go/ntru/sampling"
)

// KeyPair holds priv (f, a small ternary polynomial), priv_inv
// (F_p = f^-1 mod p), and pub (h = p . F_q . g mod q).
type KeyPair struct {
	Params  *ring.Params
	Priv    *ring.Poly // f
	PrivInv *ring.Poly // F_p
	Pub     *ring.Poly // h
}

// CreateKeyPair computes F_q, F_p, and h from sampled ternary f, g.
// Returns ring.ErrNotInvertible if either inversion fails; the
// retry-with-a-fresh-f decision belongs to GenerateKeyPair, not here.
func CreateKeyPair(f, g *ring.Poly, prm *ring.Params) (*KeyPair, error) {
	if err := prm.Check(f, g); err != nil {
		return nil, err
	}

	fq, err := ring.InvertMod2k(f, prm)
	if err != nil {
		return nil, fmt.Errorf("compute F_q: %w", err)
	}
	fp, err := ring.InvertModP(f, prm)
	if err != nil {
		return nil, fmt.Errorf("compute F_p: %w", err)
	}

	pfq := ring.NewPoly(prm.N)
	ring.ScalarMul(fq, prm.P.Int64(), pfq)
	pfq.ModUnsigned(prm.Q)

	h := ring.NewPoly(prm.N)
	ring.StarMultiply(pfq, g, h, prm.Q)

	return &KeyPair{Params: prm, Priv: f, PrivInv: fp, Pub: h}, nil
}

// GenerateKeyPair draws fresh ternary f, g from src until CreateKeyPair
// succeeds, retrying only on ring.ErrNotInvertible. f gets df coefficients
// +1 and df-1 coefficients -1 (none when df is 0): an f with equally many of
// each has f(1) = 0 and is never invertible. g gets dg coefficients of each
// sign. maxAttempts bounds the retry loop.
func GenerateKeyPair(src sampling.Source, prm *ring.Params, df, dg, maxAttempts int) (*KeyPair, error) {
	dfMinus := df - 1
	if dfMinus < 0 {
		dfMinus = 0
	}
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		f, err := sampling.Ternary(src, prm.N, df, dfMinus)
		if err != nil {
			return nil, err
		}
		g, err := sampling.Ternary(src, prm.N, dg, dg)
		if err != nil {
			return nil, err
		}

		kp, err := CreateKeyPair(f, g, prm)
		if err == nil {
			return kp, nil
		}
		if !errors.Is(err, ring.ErrNotInvertible) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("ntru: no invertible f found in %d attempts: %w", maxAttempts, lastErr)
}

// Fingerprint returns a short, human-displayable identifier for a key pair's
// public key, derived from a BLAKE3 hash of its mod-unsigned coefficient
// bytes. It has no cryptographic role in NTRUEncrypt itself; it exists so
// operators can visually confirm two parties hold the same public key
// without comparing the full exported blob (a supplemented feature, not
// present in the distilled core).
func (kp *KeyPair) Fingerprint() string {
	pub := kp.Pub.ModUnsignedCopy(kp.Params.Q)
	buf := make([]byte, 0, pub.N())
	for i := 0; i < pub.N(); i++ {
		buf = append(buf, byte(pub.Get(i).Int64()))
	}
	sum := blake3.Sum256(buf)
	return fmt.Sprintf("%x", sum[:8])
}
