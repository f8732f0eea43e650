package schnorr

import (
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// NaiveKeyAggregation signs m under the sum of the given private scalars:
// d_Σ = (Σ d_i) mod n, then an ordinary Sign(d_Σ, m). The result verifies
// against (Σ d_i)·G.
//
// This construction is insecure against rogue-key attacks when
// participants choose their keys adversarially; it exists for
// compatibility with legacy test vectors. Prefer MuSigNonInteractive.
func NaiveKeyAggregation(privs []*big.Int, m []byte) ([signatureSize]byte, error) {
	var sig [signatureSize]byte
	if len(privs) == 0 {
		return sig, errEmptyAggregation
	}

	dSum := new(big.Int)
	for _, d := range privs {
		if d == nil || d.Sign() <= 0 || d.Cmp(curve.N) >= 0 {
			return sig, errPrivateKeyRange
		}
		dSum.Add(dSum, d)
		dSum.Mod(dSum, curve.N)
	}
	defer wipeScalar(dSum)

	if dSum.Sign() == 0 {
		return sig, errAggregateKeyZero
	}
	return Sign(dSum, m)
}

// MuSigNonInteractive signs m under the MuSig-weighted sum of the given
// private scalars, virtualising every signer into a single party holding
// x_Σ = Σ a_i·x_i. The result verifies with Verify against
// the aggregated public key computed by MuSigAggregatePublicKeys over
// the corresponding public keys, in the same order.
//
// Participant ordering is significant: permuting privs changes every a_i
// and therefore the aggregated key X.
func MuSigNonInteractive(privs []*big.Int, m []byte) ([signatureSize]byte, error) {
	var sig [signatureSize]byte
	u := len(privs)
	if u == 0 {
		return sig, errEmptyAggregation
	}

	pubBytes := make([][pointSize]byte, u)
	for i, x := range privs {
		if x == nil || x.Sign() <= 0 || x.Cmp(curve.N) >= 0 {
			return sig, errPrivateKeyRange
		}
		px, py := curve.ScalarBaseMul(x)
		pb, err := pointToBytes(px, py)
		if err != nil {
			return sig, err
		}
		pubBytes[i] = pb
	}

	l := musigL(pubBytes)

	xSum := new(big.Int)
	for i, x := range privs {
		a := musigCoefficient(l, pubBytes[i])
		xSum.Add(xSum, new(big.Int).Mul(a, x))
		xSum.Mod(xSum, curve.N)
	}
	defer wipeScalar(xSum)

	if xSum.Sign() == 0 {
		return sig, errAggregateKeyZero
	}
	return Sign(xSum, m)
}

// MuSigAggregatePublicKeys computes X = Σ a_i·X_i over already-known
// public keys, the operation a verifier performs without access to any
// private scalar. Ordering must match the order
// used to produce the corresponding MuSigNonInteractive signature.
func MuSigAggregatePublicKeys(pubKeys [][]byte) (out [pointSize]byte, err error) {
	u := len(pubKeys)
	if u == 0 {
		return out, errEmptyAggregation
	}

	xs := make([]*big.Int, u)
	ys := make([]*big.Int, u)
	pubBytes := make([][pointSize]byte, u)
	for i, pk := range pubKeys {
		x, y, perr := bytesToPoint(pk)
		if perr != nil {
			return out, ErrPublicKeyNotOnCurve
		}
		xs[i], ys[i] = x, y
		copy(pubBytes[i][:], pk)
	}

	l := musigL(pubBytes)

	var accX, accY *big.Int
	for i := range pubKeys {
		a := musigCoefficient(l, pubBytes[i])
		ax, ay := curve.ScalarMul(xs[i], ys[i], a)
		accX, accY = addAccumulator(accX, accY, ax, ay)
	}

	return pointToBytes(accX, accY)
}

// musigL computes L = SHA-256(P_1bytes || ... || P_ubytes).
func musigL(pubBytes [][pointSize]byte) [32]byte {
	h := sha256simd.New()
	for _, pb := range pubBytes {
		h.Write(pb[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// musigCoefficient computes a_i = bytes_to_int(SHA-256(L || P_ibytes))
// mod n.
func musigCoefficient(l [32]byte, pubBytes [pointSize]byte) *big.Int {
	h := sha256simd.New()
	h.Write(l[:])
	h.Write(pubBytes[:])
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	a := bytesToInt(digest[:])
	a.Mod(a, curve.N)
	return a
}
