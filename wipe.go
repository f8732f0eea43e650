package schnorr

import "math/big"

// wipeScalar resets a locally-held secret scalar (d, k, x_Σ, s) to zero
// once it is no longer needed. math/big gives no way to zero a *big.Int's
// backing words in place the way a fixed-size byte array can be
// memcleared, so this is a best-effort discipline rather than a hard
// guarantee: SetInt64(0) truncates the word slice to length zero but
// keeps its backing array, so the old words stay in memory until it is
// reused or collected.
func wipeScalar(x *big.Int) {
	if x != nil {
		x.SetInt64(0)
	}
}
