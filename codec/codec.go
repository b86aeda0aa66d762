// Package codec implements NTRU message framing: bit-level ASCII <->
// ternary-polynomial packing for the plaintext side of encryption,
// byte-level coefficient <-> polynomial packing for ciphertext and key
// material, and Base64 wire framing for persisting both.
//
// A plain Go slice of *ring.Poly carries its own length, standing in for
// the null-terminated polynomial array a C implementation would use.
package codec

import (
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/ntru-go/ntru/ring"
)

// paddingCoeff is the ternary-encoding sentinel: a bit position beyond the
// real content of the final, short chunk. It decodes to bit 0 on the way
// back out, and survives encryption and decryption unchanged since it is
// never equal to +1 or -1.
const paddingCoeff = 2

// MessageToPolys flattens msg into bits MSB-first, chunks the bit stream
// into groups of N, and returns one ternary polynomial per chunk: +1 per
// '1' bit, -1 per '0' bit, and paddingCoeff for any position beyond the
// final chunk's real bits.
func MessageToPolys(msg []byte, N int) []*ring.Poly {
	totalBits := len(msg) * 8
	if totalBits == 0 {
		return nil
	}

	numChunks := (totalBits + N - 1) / N
	polys := make([]*ring.Poly, numChunks)

	bit := 0
	for c := 0; c < numChunks; c++ {
		p := ring.NewPoly(N)
		for i := 0; i < N; i++ {
			if bit < totalBits {
				byteIdx := bit / 8
				shift := 7 - uint(bit%8)
				if (msg[byteIdx]>>shift)&1 == 1 {
					p.SetInt64(i, 1)
				} else {
					p.SetInt64(i, -1)
				}
			} else {
				p.SetInt64(i, paddingCoeff)
			}
			bit++
		}
		polys[c] = p
	}
	return polys
}

// PolysToMessage reverses MessageToPolys: +1 maps to bit 1, anything else
// (-1 or the paddingCoeff sentinel) maps to bit 0; bits are repacked
// MSB-first into bytes, and trailing all-zero bytes produced by padding are
// stripped. This is indistinguishable from a plaintext that legitimately
// ends in NUL bytes; that ambiguity is preserved here, not worked around.
func PolysToMessage(polys []*ring.Poly) []byte {
	if len(polys) == 0 {
		return nil
	}

	N := polys[0].N()
	totalBits := N * len(polys)
	nBytes := totalBits / 8

	out := make([]byte, nBytes)
	bit := 0
	for _, p := range polys {
		for i := 0; i < N; i++ {
			if bit/8 < nBytes {
				b := int64(0)
				if p.Get(i).Int64() == 1 {
					b = 1
				}
				out[bit/8] |= byte(b) << uint(7-bit%8)
			}
			bit++
		}
	}

	end := len(out)
	for end > 0 && out[end-1] == 0 {
		end--
	}
	return out[:end]
}

// PolysToBytes serializes a sequence of polynomials whose coefficients lie
// in [0, m) into N bytes per polynomial: a coefficient equal to m (the
// "no real coefficient here" sentinel) serializes as byte 0, which
// BytesToPolys reads back as coefficient 0; BytesToPolys produces the
// sentinel only for positions missing from a short final byte group.
// m must fit in a byte (m <= 256), which holds for every (p, q) pair this
// package is used with.
func PolysToBytes(polys []*ring.Poly, m *big.Int) []byte {
	if len(polys) == 0 {
		return nil
	}
	N := polys[0].N()
	out := make([]byte, 0, N*len(polys))
	for _, p := range polys {
		for i := 0; i < N; i++ {
			c := p.Get(i)
			if c.Cmp(m) == 0 {
				out = append(out, 0)
				continue
			}
			out = append(out, byte(c.Int64()))
		}
	}
	return out
}

// BytesToPolys reverses PolysToBytes: it reads N-byte groups into polynomial
// coefficients in [0, m); if the final group is short, the missing
// positions are filled with the sentinel value m rather than a real
// coefficient.
func BytesToPolys(data []byte, N int, m *big.Int) []*ring.Poly {
	if len(data) == 0 {
		return nil
	}
	numChunks := (len(data) + N - 1) / N
	polys := make([]*ring.Poly, numChunks)

	pos := 0
	for c := 0; c < numChunks; c++ {
		p := ring.NewPoly(N)
		for i := 0; i < N; i++ {
			if pos < len(data) {
				p.SetInt64(i, int64(data[pos]))
			} else {
				p.Set(i, m)
			}
			pos++
		}
		polys[c] = p
	}
	return polys
}

// EncodeDoubleBase64 applies the Base64 wire framing used to persist key
// and ciphertext blobs.
//
// The name is a holdover from an earlier double-encoding convention; every
// concrete pinned test vector decodes cleanly with a single Base64 pass
// and fails to decode a second time, so this implementation performs a
// single pass. See DESIGN.md for the investigation behind that choice.
func EncodeDoubleBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeDoubleBase64 reverses EncodeDoubleBase64.
func DecodeDoubleBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ring.ErrMalformedInput, err)
	}
	return data, nil
}

// EncodeCiphertext serializes a ciphertext's polynomial blocks (coefficients
// in [0, q)) into the Base64 wire format.
func EncodeCiphertext(polys []*ring.Poly, q *big.Int) string {
	return EncodeDoubleBase64(PolysToBytes(polys, q))
}

// DecodeCiphertext reverses EncodeCiphertext. Returns ring.ErrMalformedInput
// if s fails to decode or decodes to an empty byte stream.
func DecodeCiphertext(s string, N int, q *big.Int) ([]*ring.Poly, error) {
	data, err := DecodeDoubleBase64(s)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ring.ErrMalformedInput)
	}
	return BytesToPolys(data, N, q), nil
}

// EncodeKeyPoly serializes a single key polynomial (coefficients in [0, m))
// into the Base64 wire format.
func EncodeKeyPoly(p *ring.Poly, m *big.Int) string {
	return EncodeDoubleBase64(PolysToBytes([]*ring.Poly{p}, m))
}

// DecodeKeyPoly reverses EncodeKeyPoly, requiring the decoded byte stream to
// be exactly N bytes (one polynomial, no more, no less). A key blob whose
// decoded length doesn't correspond to exactly one polynomial is
// ring.ErrMalformedInput.
func DecodeKeyPoly(s string, N int, m *big.Int) (*ring.Poly, error) {
	data, err := DecodeDoubleBase64(s)
	if err != nil {
		return nil, err
	}
	if len(data) != N {
		return nil, fmt.Errorf("%w: key blob decodes to %d bytes, expected exactly %d", ring.ErrMalformedInput, len(data), N)
	}
	polys := BytesToPolys(data, N, m)
	return polys[0], nil
}
