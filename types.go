package cryptovault

// KDFParams are the Argon2id cost parameters persisted in every container
// so decryption can reproduce the key without any external state.
type KDFParams struct {
	MemoryCostKiB uint32 // memory cost in KiB, minimum 4096
	TimeCost      uint32 // number of passes, minimum 1
	Parallelism   uint32 // degree of parallelism, minimum 1
	OutputLength  uint32 // derived key length in bytes; must be 32
}

// Validate checks the parameters against the invariants in the container
// format: memory_cost_kib >= 4096, time_cost >= 1, parallelism >= 1,
// output_length == 32.
func (p KDFParams) Validate() error {
	if p.MemoryCostKiB < 4096 {
		return ErrInvalidParametersErr("memory_cost_kib must be >= 4096")
	}
	if p.TimeCost < 1 {
		return ErrInvalidParametersErr("time_cost must be >= 1")
	}
	if p.Parallelism < 1 {
		return ErrInvalidParametersErr("parallelism must be >= 1")
	}
	if p.OutputLength != 32 {
		return ErrInvalidParametersErr("output_length must be 32")
	}
	return nil
}

// Profile names a performance preset mapping to KDF cost parameters.
type Profile string

const (
	ProfileFast     Profile = "fast"
	ProfileBalanced Profile = "balanced"
	ProfileSecure   Profile = "secure"
	ProfileParanoid Profile = "paranoid"
)

// EncryptOptions controls EncryptFile behavior. At most one of KeepBackup or
// SecureDelete takes effect: KeepBackup wins when both are set, and when
// neither is set the original is unlinked without being overwritten first.
type EncryptOptions struct {
	Profile       Profile    // ignored if Params is non-nil; default ProfileBalanced
	Params        *KDFParams // explicit KDF parameters; overrides Profile
	KeepBackup    bool       // rename original to "*.backup" instead of deleting it
	SecureDelete  bool       // overwrite original with zeros before unlink; ignored if KeepBackup
	Overwrite     bool       // if false, refuse when the ".enc" target already exists
}

// DecryptOptions controls DecryptFile behavior.
type DecryptOptions struct {
	Overwrite        bool // if false, refuse when the plaintext target already exists
	RemoveContainer  bool // delete the ".enc" file after a successful decrypt
}

// ContainerInfo reports a container's header fields without requiring the
// passphrase, returned by InspectContainer.
type ContainerInfo struct {
	Version       uint16
	KDFID         uint8
	AEADID        uint8
	Params        KDFParams
	CiphertextLen int64
	TotalSize     int64
}
