package ntru

import (
	"fmt"

	"github.com/ntru-go/ntru/codec"
	"github.com/ntru-go/ntru/ring"
)

// EncryptPoly computes e = (h * r + mBin) mod q. Aliasing out with mBin, h,
// or r is permitted (ring.Add and ring.StarMultiply are both aliasing-safe).
func EncryptPoly(out, mBin, h, r *ring.Poly, prm *ring.Params) error {
	if err := prm.Check(mBin, h, r); err != nil {
		return err
	}

	hr := ring.NewPoly(prm.N)
	ring.StarMultiply(h, r, hr, prm.Q)
	ring.Add(hr, mBin, out)
	out.ModUnsigned(prm.Q)
	return nil
}

// EncryptString chunks msg into bit-ternary polynomials, encrypts each
// chunk against the same public key and random noise r, and Base64-frames
// the result. Returns ring.ErrMalformedInput for an empty message.
func EncryptString(msg []byte, pub, r *ring.Poly, prm *ring.Params) (string, error) {
	if len(msg) == 0 {
		return "", fmt.Errorf("%w: empty message", ring.ErrMalformedInput)
	}
	if err := prm.Check(pub, r); err != nil {
		return "", err
	}

	chunks := codec.MessageToPolys(msg, prm.N)
	for _, chunk := range chunks {
		if err := EncryptPoly(chunk, chunk, pub, r, prm); err != nil {
			return "", err
		}
	}

	return codec.EncodeCiphertext(chunks, prm.Q), nil
}
