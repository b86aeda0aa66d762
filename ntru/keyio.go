package ntru

import (
	"io"

	"github.com/ntru-go/ntru/codec"
	"github.com/ntru-go/ntru/ring"
)

// ExportPublicKey writes h, mod-unsigned into [0, q), Base64-framed, to w.
// w is typically a filestore.Creator result, a *bytes.Buffer, or any other
// io.Writer.
func ExportPublicKey(w io.Writer, pub *ring.Poly, prm *ring.Params) error {
	if err := prm.Check(pub); err != nil {
		return err
	}
	_, err := io.WriteString(w, codec.EncodeKeyPoly(pub.ModUnsignedCopy(prm.Q), prm.Q))
	return err
}

// ExportPrivateKey writes f, mod-unsigned into [0, p), Base64-framed, to w,
// the same encoding ExportPublicKey applies to mod-unsigned(pub, q).
func ExportPrivateKey(w io.Writer, priv *ring.Poly, prm *ring.Params) error {
	if err := prm.Check(priv); err != nil {
		return err
	}
	_, err := io.WriteString(w, codec.EncodeKeyPoly(priv.ModUnsignedCopy(prm.P), prm.P))
	return err
}

// ImportPublicKey reads the whole of r and decodes it as a single public
// key polynomial with coefficients in [0, q). Returns
// ring.ErrMalformedInput if the decoded poly array does not hold exactly
// one polynomial of length N.
func ImportPublicKey(r io.Reader, prm *ring.Params) (*ring.Poly, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return codec.DecodeKeyPoly(string(data), prm.N, prm.Q)
}

// ImportPrivateKey reads the whole of r and decodes it as a single private
// key polynomial with coefficients in [0, p).
func ImportPrivateKey(r io.Reader, prm *ring.Params) (*ring.Poly, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return codec.DecodeKeyPoly(string(data), prm.N, prm.P)
}
