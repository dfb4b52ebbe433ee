package cryptovault

import "strings"

// encryptedSuffix is appended verbatim to a source path's full filename —
// no extension parsing, no file-stem logic. ".env" becomes ".env.enc", not
// "..enc".
const encryptedSuffix = ".enc"

// backupSuffix names the transient copy of the original plaintext kept
// when EncryptOptions.KeepBackup is set.
const backupSuffix = ".backup"

// encryptedName computes the encrypted path for a source path by literal
// suffix append.
func encryptedName(src string) string {
	return src + encryptedSuffix
}

// decryptedName strips the ".enc" suffix from an encrypted path. A path
// that does not end in ".enc" is rejected with ErrNotAContainer.
func decryptedName(encPath string) (string, error) {
	if !strings.HasSuffix(encPath, encryptedSuffix) {
		return "", ErrNotAContainer
	}
	return strings.TrimSuffix(encPath, encryptedSuffix), nil
}

// validatePassphrase rejects empty passphrases at the boundary, per the
// data model's invariant that passphrase length must be > 0.
func validatePassphrase(pass *SecretBuffer) error {
	if pass == nil || pass.Len() == 0 {
		return ErrEmptyPassphrase
	}
	return nil
}
