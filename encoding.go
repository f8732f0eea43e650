package schnorr

import (
	"errors"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

const (
	scalarSize    = 32
	messageSize   = 32
	pointSize     = 33
	signatureSize = 64
)

// intToBytes32 renders x as 32 big-endian bytes. It fails when x does not
// fit (negative, or >= 2^256).
func intToBytes32(x *big.Int) ([scalarSize]byte, error) {
	var out [scalarSize]byte
	if x.Sign() < 0 || x.BitLen() > scalarSize*8 {
		return out, errors.New("integer does not fit in 32 bytes")
	}
	b := x.Bytes()
	copy(out[scalarSize-len(b):], b)
	return out, nil
}

// bytesToInt reads a non-negative big-endian integer from octets of any
// length.
func bytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// pointToBytes serialises a non-identity point as 33 bytes: a parity
// prefix (0x02 even y, 0x03 odd y) followed by the 32-byte big-endian x.
func pointToBytes(x, y *big.Int) ([pointSize]byte, error) {
	var out [pointSize]byte
	if curve.IsInfinity(x, y) {
		return out, errors.New("cannot serialise point at infinity")
	}
	xb, err := intToBytes32(x)
	if err != nil {
		return out, err
	}
	if y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1:], xb[:])
	return out, nil
}

// bytesToPoint parses a 33-byte compressed point. It rejects wrong
// length, an invalid prefix, x >= P, or an x with no curve point.
func bytesToPoint(b []byte) (x, y *big.Int, err error) {
	if len(b) != pointSize {
		return nil, nil, ErrPublicKeyNotOnCurve
	}
	prefix := b[0]
	if prefix != 0x02 && prefix != 0x03 {
		return nil, nil, ErrPublicKeyNotOnCurve
	}
	x = bytesToInt(b[1:])
	if x.Cmp(curve.P) >= 0 {
		return nil, nil, ErrPublicKeyNotOnCurve
	}
	y, ok := curve.LiftX(x)
	if !ok {
		return nil, nil, ErrPublicKeyNotOnCurve
	}
	wantOdd := prefix == 0x03
	if (y.Bit(0) == 1) != wantOdd {
		y = new(big.Int).Sub(curve.P, y)
	}
	return x, y, nil
}

// taggedHash is plain SHA-256 over the concatenation of its arguments.
// This predates BIP-340's prefixed-tag construction: no domain-
// separation tag is mixed in, matching the historical "bip-schnorr"
// pre-release convention the rest of this package follows.
func taggedHash(data ...[]byte) [32]byte {
	h := sha256simd.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// hashChallenge computes e = SHA-256(Rx || Pbytes || m) mod n.
func hashChallenge(rx32, pointBytes, m []byte) *big.Int {
	h := taggedHash(rx32, pointBytes, m)
	e := bytesToInt(h[:])
	return e.Mod(e, curve.N)
}
