package schnorr

import (
	"bytes"
	"math/big"
	"testing"
)

func TestPrivateKeyPublicSignVerify(t *testing.T) {
	d, err := NewPrivateKey(big.NewInt(555))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pub, err := d.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}

	m := bytes.Repeat([]byte{0x42}, messageSize)
	sig, err := d.Sign(m)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := pub.Verify(m, sig[:]); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestNewPrivateKeyRejectsZero(t *testing.T) {
	if _, err := NewPrivateKey(big.NewInt(0)); err != errPrivateKeyRange {
		t.Errorf("expected %v, got %v", errPrivateKeyRange, err)
	}
}

func TestPrivateKeyScalarRoundTrip(t *testing.T) {
	want := big.NewInt(123456789)
	d, err := NewPrivateKey(want)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	if d.Scalar().Cmp(want) != 0 {
		t.Errorf("Scalar() = %v, want %v", d.Scalar(), want)
	}
}
