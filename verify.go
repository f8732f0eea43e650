package schnorr

import (
	"math/big"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// Verify checks a 64-byte signature over a 32-byte message against a
// 33-byte compressed public key. It returns nil on a valid signature, a
// length error for a message or signature of the wrong size, or else one
// of the canonical errors in errors.go — each rejection condition has a
// distinct, stable message.
func Verify(pubKeyBytes, m, sig []byte) error {
	if len(m) != messageSize {
		return errMessageLength
	}
	if len(sig) != signatureSize {
		return errSignatureLength
	}

	px, py, err := bytesToPoint(pubKeyBytes)
	if err != nil {
		return ErrPublicKeyNotOnCurve
	}

	r := bytesToInt(sig[:scalarSize])
	s := bytesToInt(sig[scalarSize:])
	if r.Cmp(curve.P) >= 0 {
		return ErrRTooLarge
	}
	if s.Cmp(curve.N) >= 0 {
		return ErrSTooLarge
	}

	e := hashChallenge(sig[:scalarSize], pubKeyBytes, m)

	sgx, sgy := curve.ScalarBaseMul(s)
	epx, epy := curve.ScalarMul(px, py, e)
	negEPy := new(big.Int).Sub(curve.P, epy)
	negEPy.Mod(negEPy, curve.P)

	rx, ry := curve.Add(sgx, sgy, epx, negEPy)

	if curve.IsInfinity(rx, ry) {
		return ErrPointAtInfinity
	}
	if curve.Jacobi(ry) != 1 {
		return ErrYNotQuadraticResidue
	}
	if rx.Cmp(r) != 0 {
		return ErrVerificationFailed
	}
	return nil
}
