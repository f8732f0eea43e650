// Package curve adapts github.com/btcsuite/btcd/btcec/v2's secp256k1
// implementation to the minimal collaborator interface the signing core
// needs: scalar multiplication, point addition, on-curve validation,
// the Jacobi symbol, and modular square roots for x-only point recovery.
//
// The core never reimplements field or group arithmetic itself; it is a
// thin, exported-function wrapper so the rest of the module can work in
// plain *big.Int without depending on btcec's types directly.
package curve

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	secp256k1 = btcec.S256()

	// P is the secp256k1 base field modulus.
	P = secp256k1.Params().P
	// N is the secp256k1 group order.
	N = secp256k1.Params().N
	// Gx, Gy are the coordinates of the base point G.
	Gx = secp256k1.Params().Gx
	Gy = secp256k1.Params().Gy

	// sqrtExponent is (P+1)/4. secp256k1's P is congruent to 3 mod 4, so
	// a^sqrtExponent mod P is a square root of a whenever one exists.
	sqrtExponent = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(1)), 2)

	three = big.NewInt(3)
	seven = big.NewInt(7)
)

// ScalarBaseMul returns k*G.
func ScalarBaseMul(k *big.Int) (x, y *big.Int) {
	kk := new(big.Int).Mod(k, N)
	return secp256k1.ScalarBaseMult(kk.Bytes())
}

// ScalarMul returns k*(x,y).
func ScalarMul(x, y, k *big.Int) (rx, ry *big.Int) {
	kk := new(big.Int).Mod(k, N)
	return secp256k1.ScalarMult(x, y, kk.Bytes())
}

// Add returns (x1,y1)+(x2,y2).
func Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int) {
	return secp256k1.Add(x1, y1, x2, y2)
}

// IsOnCurve reports whether (x,y) lies on secp256k1.
func IsOnCurve(x, y *big.Int) bool {
	return secp256k1.IsOnCurve(x, y)
}

// IsInfinity reports whether (x,y) represents the point at infinity.
// Different elliptic.Curve implementations signal this either as
// (nil, nil) or as the conventional (0,0); both are treated as infinity.
func IsInfinity(x, y *big.Int) bool {
	if x == nil || y == nil {
		return true
	}
	return x.Sign() == 0 && y.Sign() == 0
}

// Jacobi returns the Jacobi symbol of y over the base field: -1, 0, or +1.
func Jacobi(y *big.Int) int {
	return big.Jacobi(y, P)
}

// SqrtModP returns a square root of a modulo P, if one exists.
func SqrtModP(a *big.Int) (*big.Int, bool) {
	aa := new(big.Int).Mod(a, P)
	root := new(big.Int).Exp(aa, sqrtExponent, P)
	check := new(big.Int).Exp(root, big.NewInt(2), P)
	if check.Cmp(aa) != 0 {
		return nil, false
	}
	return root, true
}

// LiftX recovers a y-coordinate for x on y^2 = x^3 + 7 (mod P), without
// regard to which of the two roots is returned; callers that care about
// Jacobi-symbol parity select between y and P-y themselves.
func LiftX(x *big.Int) (y *big.Int, ok bool) {
	if x == nil || x.Sign() < 0 || x.Cmp(P) >= 0 {
		return nil, false
	}
	rhs := new(big.Int).Exp(x, three, P)
	rhs.Add(rhs, seven)
	rhs.Mod(rhs, P)
	return SqrtModP(rhs)
}
