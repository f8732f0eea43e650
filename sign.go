package schnorr

import (
	"math/big"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// Sign produces a 64-byte signature (Rx || s) over the 32-byte message m
// under the private scalar d. d must be in [1, n-1].
//
// Sign is deterministic: repeated calls with the same (d, m) produce
// bitwise identical output.
func Sign(d *big.Int, m []byte) (sig [signatureSize]byte, err error) {
	if len(m) != messageSize {
		return sig, errMessageLength
	}
	if d == nil || d.Sign() <= 0 || d.Cmp(curve.N) >= 0 {
		return sig, errPrivateKeyRange
	}

	dd := new(big.Int).Set(d)
	defer wipeScalar(dd)

	px, py := curve.ScalarBaseMul(dd)
	pubBytes, err := pointToBytes(px, py)
	if err != nil {
		return sig, err
	}

	k0, err := deriveNonce(dd, m)
	if err != nil {
		return sig, err
	}
	defer wipeScalar(k0)

	rx, ry := curve.ScalarBaseMul(k0)
	k := k0
	if curve.Jacobi(ry) != 1 {
		k = new(big.Int).Sub(curve.N, k0)
		rx, ry = curve.ScalarBaseMul(k)
	}
	_ = ry
	defer wipeScalar(k)

	rxBytes, err := intToBytes32(rx)
	if err != nil {
		return sig, err
	}

	e := hashChallenge(rxBytes[:], pubBytes[:], m)
	s := new(big.Int).Mul(e, dd)
	s.Add(s, k)
	s.Mod(s, curve.N)
	defer wipeScalar(s)

	sBytes, err := intToBytes32(s)
	if err != nil {
		return sig, err
	}

	copy(sig[:scalarSize], rxBytes[:])
	copy(sig[scalarSize:], sBytes[:])
	return sig, nil
}
