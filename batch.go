package schnorr

import (
	"encoding/binary"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// BatchCoefficientSource produces the per-equation coefficient a_i for
// index i of a batch, given a digest summarising the whole batch. index
// 0 is never queried: a_0 = 1 unconditionally.
type BatchCoefficientSource func(index int, digest [32]byte) *big.Int

// DefaultBatchCoefficientSource derives a_i deterministically as
// bytes_to_int(SHA-256(i || digest)) mod n, for reproducible batch
// verification. i is encoded as a 4-byte big-endian prefix.
func DefaultBatchCoefficientSource(index int, digest [32]byte) *big.Int {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(index))
	h := sha256simd.Sum256(append(idx[:], digest[:]...))
	a := bytesToInt(h[:])
	a.Mod(a, curve.N)
	if a.Sign() == 0 {
		// A zero coefficient would drop the i'th equation from the
		// check entirely; re-hash once, over the index and the first
		// digest, rather than accept the degenerate value.
		h = sha256simd.Sum256(append(idx[:], h[:]...))
		a = bytesToInt(h[:])
		a.Mod(a, curve.N)
	}
	return a
}

func batchDigest(pubKeys, msgs, sigs [][]byte) [32]byte {
	h := sha256simd.New()
	for i := range pubKeys {
		h.Write(pubKeys[i])
		h.Write(msgs[i])
		h.Write(sigs[i])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// BatchVerify checks u signatures with a single multi-scalar equation
// using the default, deterministic coefficient source.
func BatchVerify(pubKeys, msgs, sigs [][]byte) error {
	return BatchVerifyWithSource(pubKeys, msgs, sigs, DefaultBatchCoefficientSource)
}

// BatchVerifyWithSource is BatchVerify parameterised over the
// coefficient collaborator; tests can inject a fixed sequence for
// reproducibility.
func BatchVerifyWithSource(pubKeys, msgs, sigs [][]byte, coeff BatchCoefficientSource) error {
	u := len(pubKeys)
	if u == 0 {
		return errEmptyBatch
	}
	if len(msgs) != u || len(sigs) != u {
		return errBatchLengthMismatch
	}

	digest := batchDigest(pubKeys, msgs, sigs)
	one := big.NewInt(1)

	sSum := new(big.Int)
	var accX, accY *big.Int

	for i := 0; i < u; i++ {
		if len(msgs[i]) != messageSize {
			return errMessageLength
		}
		if len(sigs[i]) != signatureSize {
			return errSignatureLength
		}

		px, py, err := bytesToPoint(pubKeys[i])
		if err != nil {
			return ErrPublicKeyNotOnCurve
		}

		r := bytesToInt(sigs[i][:scalarSize])
		s := bytesToInt(sigs[i][scalarSize:])
		if r.Cmp(curve.P) >= 0 {
			return ErrRTooLarge
		}
		if s.Cmp(curve.N) >= 0 {
			return ErrSTooLarge
		}

		ry, ok := curve.LiftX(r)
		if !ok {
			return ErrRNotOnCurve
		}
		if curve.Jacobi(ry) != 1 {
			ry = new(big.Int).Sub(curve.P, ry)
			if curve.Jacobi(ry) != 1 {
				return ErrYNotQuadraticResidue
			}
		}

		e := hashChallenge(sigs[i][:scalarSize], pubKeys[i], msgs[i])

		var a *big.Int
		if i == 0 {
			a = one
		} else {
			a = coeff(i, digest)
		}

		sSum.Add(sSum, new(big.Int).Mul(a, s))
		sSum.Mod(sSum, curve.N)

		var arx, ary *big.Int
		if a.Cmp(one) == 0 {
			arx, ary = r, ry
		} else {
			arx, ary = curve.ScalarMul(r, ry, a)
		}
		accX, accY = addAccumulator(accX, accY, arx, ary)

		ae := new(big.Int).Mul(a, e)
		ae.Mod(ae, curve.N)
		aepx, aepy := curve.ScalarMul(px, py, ae)
		accX, accY = addAccumulator(accX, accY, aepx, aepy)
	}

	lhsX, lhsY := curve.ScalarBaseMul(sSum)
	if !pointsEqual(lhsX, lhsY, accX, accY) {
		return ErrVerificationFailed
	}
	return nil
}

func addAccumulator(ax, ay, bx, by *big.Int) (*big.Int, *big.Int) {
	if ax == nil {
		return bx, by
	}
	return curve.Add(ax, ay, bx, by)
}

func pointsEqual(ax, ay, bx, by *big.Int) bool {
	aInf := curve.IsInfinity(ax, ay)
	bInf := curve.IsInfinity(bx, by)
	if aInf || bInf {
		return aInf && bInf
	}
	return ax.Cmp(bx) == 0 && ay.Cmp(by) == 0
}
