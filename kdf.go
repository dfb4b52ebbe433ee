package cryptovault

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 32
	nonceSize = 12
	tagSize   = 16
	keySize   = 32
)

// deriveKey turns a passphrase and salt into a 32-byte symmetric key using
// Argon2id with the given cost parameters. Deterministic: identical inputs
// produce identical output bytes, with no hidden global state and no
// randomness consumed here.
func deriveKey(passphrase, salt []byte, params KDFParams) (*SecretBuffer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(salt) != saltSize {
		return nil, ErrInvalidParametersErr("salt must be 32 bytes")
	}
	if params.Parallelism > 255 {
		return nil, ErrInvalidParametersErr("parallelism must fit in a byte")
	}

	key, err := argon2Derive(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	return &SecretBuffer{buf: key}, nil
}

// argon2Derive is split out from deriveKey so the one spot that can fail
// from the underlying primitive (as opposed to invalid input, already
// checked by the caller) is easy to locate and wrap as DerivationFailed.
// argon2.IDKey panics rather than returning an error on pathological inputs
// (e.g. a memory cost that overflows its internal allocation); recover
// converts that into our taxonomy instead of crashing the caller.
func argon2Derive(passphrase, salt []byte, params KDFParams) (key []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = ErrDerivationFailed
		}
	}()
	key = argon2.IDKey(passphrase, salt, params.TimeCost, params.MemoryCostKiB, uint8(params.Parallelism), params.OutputLength)
	if key == nil {
		return nil, ErrDerivationFailed
	}
	return key, nil
}

// generateSalt draws 32 fresh random bytes from the OS CSPRNG.
func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, ErrRandomnessFailure
	}
	return salt, nil
}

// generateNonce draws 12 fresh random bytes from the OS CSPRNG.
func generateNonce() ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, ErrRandomnessFailure
	}
	return nonce, nil
}
