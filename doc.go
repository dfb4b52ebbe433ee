// Package cryptovault implements a local, zero-configuration file
// encryption engine: given a plaintext file and a passphrase, it produces a
// self-contained encrypted container on disk, and reverses the operation
// given the same passphrase.
//
// # Overview
//
// cryptovault combines three concerns with sharp individual failure modes
// into one pipeline:
//
//   - Password-based key derivation (Argon2id) with tunable cost
//     parameters persisted alongside the ciphertext.
//   - Authenticated encryption (ChaCha20-Poly1305) binding every stored
//     parameter into the authentication tag as associated data.
//   - Atomic, backup-aware file I/O so a crash never leaves a
//     half-written container on disk.
//
// # Basic usage
//
//	engine := cryptovault.New()
//	pass := cryptovault.SecretBufferFromBytes([]byte("correct horse battery staple"))
//	defer pass.Destroy()
//
//	dst, err := engine.EncryptFile("secrets.env", pass, cryptovault.EncryptOptions{
//	    Profile: cryptovault.ProfileBalanced,
//	})
//
// # Container format
//
// Encrypted files use the following fixed layout (little-endian except
// where noted):
//
//	offset  size  field
//	0       4     magic       = "CGCR"
//	4       2     version     = 0x0001 (big-endian: bytes 00 01)
//	6       1     kdf_id      = 1 (Argon2id)
//	7       1     aead_id     = 1 (ChaCha20-Poly1305)
//	8       4     mem_cost_kib
//	12      4     time_cost
//	16      4     parallelism
//	20      32    salt
//	52      12    nonce
//	64      16    tag
//	80      N     ciphertext
//
// Bytes 0..64 (magic through nonce) are the AEAD's associated data, so
// tampering with any stored parameter is detected on decrypt even though
// those bytes are not themselves encrypted.
//
// # Performance profiles
//
//	Profile    mem_kib   time  par  Intended use
//	Fast       4096      1     8    tests, CI
//	Balanced   65536     3     4    default
//	Secure     262144    4     4    sensitive
//	Paranoid   1048576   10    4    max
//
// Decryption never consults the profile table — cost parameters always
// come from the container being read.
//
// # Security considerations
//
// Protected against: unauthorized access to encrypted files at rest, data
// tampering and corruption (authenticated encryption), offline brute-force
// attacks (memory-hard KDF).
//
// Not protected against: an attacker with live process memory access,
// forward secrecy across sessions, streaming encryption of files larger
// than available RAM — cryptovault reads an entire file into memory.
package cryptovault
