package schnorr

import (
	"math/big"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// PrivateKey is a secret scalar in [1, n-1], held as 32 big-endian
// bytes. It carries 33-byte compressed-point public keys rather than
// BIP-340's 32-byte x-only ones.
type PrivateKey [scalarSize]byte

// NewPrivateKey encodes d as a PrivateKey, failing if d is out of range.
func NewPrivateKey(d *big.Int) (PrivateKey, error) {
	var pk PrivateKey
	if d == nil || d.Sign() <= 0 || d.Cmp(curve.N) >= 0 {
		return pk, errPrivateKeyRange
	}
	b, err := intToBytes32(d)
	if err != nil {
		return pk, err
	}
	pk = PrivateKey(b)
	return pk, nil
}

// Scalar decodes the private key back into a *big.Int.
func (d PrivateKey) Scalar() *big.Int {
	return bytesToInt(d[:])
}

// Public derives the corresponding 33-byte compressed public key.
func (d PrivateKey) Public() (PublicKey, error) {
	var pub PublicKey
	x, y := curve.ScalarBaseMul(d.Scalar())
	b, err := pointToBytes(x, y)
	if err != nil {
		return pub, err
	}
	return PublicKey(b), nil
}

// Sign signs m under d (see Sign).
func (d PrivateKey) Sign(m []byte) ([signatureSize]byte, error) {
	return Sign(d.Scalar(), m)
}

// PublicKey is a 33-byte compressed secp256k1 point.
type PublicKey [pointSize]byte

// Point decodes the public key into curve coordinates.
func (p PublicKey) Point() (x, y *big.Int, err error) {
	return bytesToPoint(p[:])
}

// Verify checks sig over m against p (see Verify).
func (p PublicKey) Verify(m, sig []byte) error {
	return Verify(p[:], m, sig)
}
