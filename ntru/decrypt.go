package ntru

import (
	"github.com/ntru-go/ntru/codec"
	"github.com/ntru-go/ntru/ring"
)

// DecryptPoly recovers the plaintext polynomial from ciphertext e:
//  1. shift copies of e, f, F_p into mod-balanced q.
//  2. a <- f * e (mod q), then mod-balanced q.
//  3. out <- a * F_p (mod p), then mod-balanced p.
func DecryptPoly(out, e, f, fp *ring.Poly, prm *ring.Params) error {
	if err := prm.Check(e, f, fp); err != nil {
		return err
	}

	eBalanced := e.ModBalancedCopy(prm.Q)
	fBalanced := f.ModBalancedCopy(prm.Q)
	fpBalanced := fp.ModBalancedCopy(prm.Q)

	a := ring.NewPoly(prm.N)
	ring.StarMultiply(fBalanced, eBalanced, a, prm.Q)
	a.ModBalanced(prm.Q)

	ring.StarMultiply(a, fpBalanced, out, prm.P)
	out.ModBalanced(prm.P)
	return nil
}

// DecryptString Base64-decodes the ciphertext into a polynomial array,
// decrypts each chunk, feeds the result through the bit-ternary to ASCII
// decoder, and returns the plaintext bytes (trailing nulls from padding
// already stripped by the codec).
func DecryptString(ciphertext string, priv, privInv *ring.Poly, prm *ring.Params) ([]byte, error) {
	if err := prm.Check(priv, privInv); err != nil {
		return nil, err
	}

	chunks, err := codec.DecodeCiphertext(ciphertext, prm.N, prm.Q)
	if err != nil {
		return nil, err
	}

	for _, chunk := range chunks {
		if err := DecryptPoly(chunk, chunk, priv, privInv, prm); err != nil {
			return nil, err
		}
	}

	return codec.PolysToMessage(chunks), nil
}
