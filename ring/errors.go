package ring

import "errors"

// ErrNotInvertible is returned by InvertMod2k and InvertModP when the input
// polynomial has no inverse in the target ring. Key generation returns it
// wrapped with context (errors.Is still matches); the retry-with-a-fresh-f decision belongs to the
// orchestration layer (package ntru), never to the primitives themselves.
var ErrNotInvertible = errors.New("ring: polynomial is not invertible")

// ErrMalformedInput is returned for structurally invalid input: empty
// messages, zero-length ciphertext, undecodable Base64, a key blob that
// decodes to more or fewer polynomials than expected.
var ErrMalformedInput = errors.New("ring: malformed input")

// ErrParameterMisuse marks a caller error in the (N, p, q) triple or in a
// polynomial's degree bound not matching it. Call sites that can only be
// reached through programmer error (nil Params) panic instead; this
// sentinel is for values a caller could plausibly compute at runtime.
var ErrParameterMisuse = errors.New("ring: parameter misuse")
