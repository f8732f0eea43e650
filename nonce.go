package schnorr

import (
	"math/big"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// deriveNonce computes k' = bytes_to_int(SHA-256(int_to_bytes32(d) || m))
// mod n. It is a pure function of (d, m): two signatures of the same
// pair are bitwise identical.
func deriveNonce(d *big.Int, m []byte) (*big.Int, error) {
	db, err := intToBytes32(d)
	if err != nil {
		return nil, err
	}
	h := taggedHash(db[:], m)
	k := bytesToInt(h[:])
	k.Mod(k, curve.N)
	if k.Sign() == 0 {
		return nil, errNonceIsZero
	}
	return k, nil
}
