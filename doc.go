// Package schnorr implements the historical, pre-BIP-340 bip-schnorr
// signature scheme over secp256k1: single-signer signing and
// verification, aggregated batch verification, and two multi-signer
// key-aggregation schemes (a naïve additive sum and non-interactive
// MuSig).
//
// The challenge and nonce derivations here use plain SHA-256 over a
// fixed concatenation of inputs, not BIP-340's tagged-hash construction,
// and the nonce-point R is normalised by the Jacobi symbol of its
// y-coordinate rather than by parity. Signatures produced by this
// package are not interoperable with BIP-340 implementations.
//
// Curve and field arithmetic is delegated to
// github.com/btcsuite/btcd/btcec/v2 through the internal/curve package;
// this package works exclusively in math/big integers and 32/33/64-byte
// octet strings.
package schnorr
