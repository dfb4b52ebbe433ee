package cryptovault

import (
	"bytes"
	"testing"
)

func fastParams() KDFParams {
	p, _ := ParamsForProfile(ProfileFast)
	return p
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, saltSize)
	params := fastParams()

	k1, err := deriveKey([]byte("hunter2"), salt, params)
	if err != nil {
		t.Fatalf("deriveKey() error = %v", err)
	}
	defer k1.Destroy()

	k2, err := deriveKey([]byte("hunter2"), salt, params)
	if err != nil {
		t.Fatalf("deriveKey() error = %v", err)
	}
	defer k2.Destroy()

	if !bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatalf("deriveKey() is not deterministic for identical inputs")
	}
	if len(k1.Bytes()) != keySize {
		t.Fatalf("derived key length = %d, want %d", len(k1.Bytes()), keySize)
	}
}

func TestDeriveKeyDifferentSaltDifferentKey(t *testing.T) {
	params := fastParams()
	saltA := bytes.Repeat([]byte{0x01}, saltSize)
	saltB := bytes.Repeat([]byte{0x02}, saltSize)

	kA, err := deriveKey([]byte("hunter2"), saltA, params)
	if err != nil {
		t.Fatalf("deriveKey() error = %v", err)
	}
	defer kA.Destroy()

	kB, err := deriveKey([]byte("hunter2"), saltB, params)
	if err != nil {
		t.Fatalf("deriveKey() error = %v", err)
	}
	defer kB.Destroy()

	if bytes.Equal(kA.Bytes(), kB.Bytes()) {
		t.Fatalf("different salts produced the same key")
	}
}

func TestDeriveKeyInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params KDFParams
	}{
		{"memory too low", KDFParams{MemoryCostKiB: 1024, TimeCost: 1, Parallelism: 1, OutputLength: 32}},
		{"time zero", KDFParams{MemoryCostKiB: 4096, TimeCost: 0, Parallelism: 1, OutputLength: 32}},
		{"parallelism zero", KDFParams{MemoryCostKiB: 4096, TimeCost: 1, Parallelism: 0, OutputLength: 32}},
		{"wrong output length", KDFParams{MemoryCostKiB: 4096, TimeCost: 1, Parallelism: 1, OutputLength: 16}},
	}
	salt := bytes.Repeat([]byte{0x01}, saltSize)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriveKey([]byte("pw"), salt, tt.params)
			if KindOf(err) != KindInvalidParameters {
				t.Fatalf("deriveKey() kind = %v, want KindInvalidParameters", KindOf(err))
			}
		})
	}
}

func TestDeriveKeyBadSaltSize(t *testing.T) {
	_, err := deriveKey([]byte("pw"), []byte("too-short"), fastParams())
	if KindOf(err) != KindInvalidParameters {
		t.Fatalf("deriveKey() kind = %v, want KindInvalidParameters", KindOf(err))
	}
}

func TestGenerateSaltAndNonceSizes(t *testing.T) {
	salt, err := generateSalt()
	if err != nil {
		t.Fatalf("generateSalt() error = %v", err)
	}
	if len(salt) != saltSize {
		t.Fatalf("generateSalt() length = %d, want %d", len(salt), saltSize)
	}

	nonce, err := generateNonce()
	if err != nil {
		t.Fatalf("generateNonce() error = %v", err)
	}
	if len(nonce) != nonceSize {
		t.Fatalf("generateNonce() length = %d, want %d", len(nonce), nonceSize)
	}
}

// TestSaltAndNonceUniqueness exercises invariant 4: across many sequential
// generations, all observed pairs are distinct.
func TestSaltAndNonceUniqueness(t *testing.T) {
	const n = 2000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		salt, err := generateSalt()
		if err != nil {
			t.Fatalf("generateSalt() error = %v", err)
		}
		nonce, err := generateNonce()
		if err != nil {
			t.Fatalf("generateNonce() error = %v", err)
		}
		key := string(salt) + "|" + string(nonce)
		if seen[key] {
			t.Fatalf("duplicate (salt, nonce) pair observed at iteration %d", i)
		}
		seen[key] = true
	}
}
