package cryptovault

import (
	"golang.org/x/crypto/chacha20poly1305"
)

// sealChunk encrypts plaintext with key and nonce, binding aad into the
// authentication tag, and returns ciphertext with the 16-byte tag appended
// (the standard AEAD.Seal convention). The key must be 32 bytes and the
// nonce 12 bytes.
func sealChunk(key, nonce, aad, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrInvalidParametersErr("key must be 32 bytes for ChaCha20-Poly1305")
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrInvalidParametersErr("nonce must be 12 bytes for ChaCha20-Poly1305")
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// openChunk authenticates and decrypts ciphertext (with its trailing tag)
// using key, nonce, and aad. Any failure — wrong key, tampered aad, or
// tampered ciphertext — surfaces as the single ErrAuthenticationFailed so a
// caller cannot distinguish a wrong passphrase from a corrupted container.
func openChunk(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrInvalidParametersErr("key must be 32 bytes for ChaCha20-Poly1305")
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrInvalidParametersErr("nonce must be 12 bytes for ChaCha20-Poly1305")
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
