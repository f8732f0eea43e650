package schnorr

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/kristjank/bip-schnorr/internal/curve"
)

// referencePrivateKeys are fixed test-vector scalars shared across the
// signing, verification, batch, and aggregation tests.
var referencePrivateKeys = []string{
	"B7E151628AED2A6ABF7158809CF4F3C762E7160F38B4DA56A784D9045190CFEF",
	"C90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B14E5C7",
}

func hexScalar(t *testing.T, s string) *big.Int {
	t.Helper()
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex scalar %q", s)
	}
	return x
}

func referenceMessage(t *testing.T) []byte {
	t.Helper()
	m := hexScalar(t, "243F6A8885A308D313198A2E03707344A4093822299F31D0082EFA98EC4E6C89")
	b, err := intToBytes32(m)
	if err != nil {
		t.Fatalf("intToBytes32: %v", err)
	}
	return b[:]
}

func TestSignVerifyRoundTrip(t *testing.T) {
	m := referenceMessage(t)
	for _, hex := range referencePrivateKeys {
		d := hexScalar(t, hex)
		sig, err := Sign(d, m)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		px, py := curve.ScalarBaseMul(d)
		pub, err := pointToBytes(px, py)
		if err != nil {
			t.Fatalf("pointToBytes: %v", err)
		}
		if err := Verify(pub[:], m, sig[:]); err != nil {
			t.Errorf("Verify failed for d=%s: %v", hex, err)
		}
	}
}

func TestSignIsDeterministic(t *testing.T) {
	d := hexScalar(t, referencePrivateKeys[0])
	m := referenceMessage(t)

	sig1, err := Sign(d, m)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := Sign(d, m)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig1 != sig2 {
		t.Error("Sign is not deterministic")
	}
}

func TestSignRejectsOutOfRangePrivateKey(t *testing.T) {
	m := referenceMessage(t)
	cases := []*big.Int{
		big.NewInt(0),
		new(big.Int).Neg(big.NewInt(1)),
		curve.N,
		new(big.Int).Add(curve.N, big.NewInt(1)),
	}
	for _, d := range cases {
		if _, err := Sign(d, m); err == nil {
			t.Errorf("Sign(%v): expected error", d)
		}
	}
}

func TestSignRejectsWrongMessageLength(t *testing.T) {
	d := hexScalar(t, referencePrivateKeys[0])
	if _, err := Sign(d, bytes.Repeat([]byte{1}, 31)); err == nil {
		t.Error("expected error for 31-byte message")
	}
	if _, err := Sign(d, bytes.Repeat([]byte{1}, 33)); err == nil {
		t.Error("expected error for 33-byte message")
	}
}

func TestSignatureRIsJacobiPositive(t *testing.T) {
	// The nonce-point R produced by Sign must have a Jacobi-positive y,
	// regardless of which raw k the nonce function produced. Exercise
	// enough distinct messages that, absent the normalisation step,
	// roughly half would otherwise fail.
	d := hexScalar(t, referencePrivateKeys[1])
	px, py := curve.ScalarBaseMul(d)
	pub, err := pointToBytes(px, py)
	if err != nil {
		t.Fatalf("pointToBytes: %v", err)
	}
	for i := byte(0); i < 8; i++ {
		m := bytes.Repeat([]byte{i}, messageSize)
		sig, err := Sign(d, m)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		rx := bytesToInt(sig[:scalarSize])
		if _, ok := curve.LiftX(rx); !ok {
			t.Fatalf("signature Rx does not lift to a curve point")
		}
		// Recover the k Sign used from s = k + e·d and inspect R = k·G
		// itself: every Rx has one Jacobi-positive root, so checking the
		// roots of Rx alone would not detect a missing normalisation.
		e := hashChallenge(sig[:scalarSize], pub[:], m)
		k := new(big.Int).Mul(e, d)
		k.Sub(bytesToInt(sig[scalarSize:]), k)
		k.Mod(k, curve.N)
		kx, ky := curve.ScalarBaseMul(k)
		if kx.Cmp(rx) != 0 || curve.Jacobi(ky) != 1 {
			t.Fatalf("R = k·G is not the Jacobi-positive point with x = Rx")
		}
	}
}
