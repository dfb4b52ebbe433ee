package cryptovault

import (
	"os"
	"sync"
	"time"
)

// Engine is a stateless facade over the key deriver, AEAD codec, container
// codec, and file pipeline. It holds no mutable state beyond the immutable
// defaults passed to New, so it is safe to call concurrently from multiple
// goroutines provided each call's passphrase and output buffers are
// independent.
type Engine struct {
	defaultProfile Profile
}

// New returns an Engine using ProfileBalanced whenever a call does not
// specify a profile or explicit KDF parameters.
func New() *Engine {
	return &Engine{defaultProfile: DefaultProfile}
}

// resolveParams picks the KDF parameters for an encrypt call: explicit
// Params win, otherwise the named Profile (or the engine's default).
func (e *Engine) resolveParams(opts EncryptOptions) (KDFParams, error) {
	if opts.Params != nil {
		if err := opts.Params.Validate(); err != nil {
			return KDFParams{}, err
		}
		return *opts.Params, nil
	}
	profile := opts.Profile
	if profile == "" {
		profile = e.defaultProfile
	}
	return ParamsForProfile(profile)
}

// EncryptBytes encrypts plaintext with passphrase under params, returning
// the serialized container. A fresh salt and nonce are drawn from the OS
// CSPRNG for every call.
func (e *Engine) EncryptBytes(plaintext []byte, passphrase *SecretBuffer, params KDFParams) ([]byte, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}
	nonce, err := generateNonce()
	if err != nil {
		return nil, err
	}

	key, err := deriveKey(passphrase.Bytes(), salt, params)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	c := &container{
		version: currentVersion,
		kdfID:   kdfIDArgon2id,
		aeadID:  aeadIDChaCha,
		params:  params,
		salt:    salt,
		nonce:   nonce,
	}

	sealed, err := sealChunk(key.Bytes(), nonce, c.header(), plaintext)
	if err != nil {
		return nil, err
	}
	c.tag = sealed[len(sealed)-tagSize:]
	c.ciphertext = sealed[:len(sealed)-tagSize]

	return c.serialize(), nil
}

// DecryptBytes parses a container produced by EncryptBytes and recovers the
// plaintext, authenticating it against passphrase. Any failure to
// authenticate — wrong passphrase or corruption — surfaces as the single
// ErrAuthenticationFailed.
func (e *Engine) DecryptBytes(containerBytes []byte, passphrase *SecretBuffer) ([]byte, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}

	c, err := parseContainer(containerBytes)
	if err != nil {
		return nil, err
	}

	key, err := deriveKey(passphrase.Bytes(), c.salt, c.params)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	combined := make([]byte, 0, len(c.ciphertext)+tagSize)
	combined = append(combined, c.ciphertext...)
	combined = append(combined, c.tag...)

	return openChunk(key.Bytes(), c.nonce, c.header(), combined)
}

// VerifyPassphrase performs a full decrypt of containerBytes and discards
// the plaintext, returning true iff authentication succeeds. It is used by
// callers that want to gate an action without producing output.
func (e *Engine) VerifyPassphrase(containerBytes []byte, passphrase *SecretBuffer) bool {
	plaintext, err := e.DecryptBytes(containerBytes, passphrase)
	if err != nil {
		return false
	}
	ZeroBytes(plaintext)
	return true
}

// EncryptFile reads srcPath, encrypts it under passphrase and opts, and
// writes the container atomically to srcPath+".enc" (see
// spec.md §4.F step 2). It returns the produced path.
func (e *Engine) EncryptFile(srcPath string, passphrase *SecretBuffer, opts EncryptOptions) (string, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return "", err
	}
	if _, err := statRegularFile(srcPath); err != nil {
		return "", err
	}

	dstPath := encryptedName(srcPath)
	if pathExists(dstPath) && !opts.Overwrite {
		return "", ErrAlreadyEncrypted
	}

	plaintext, err := os.ReadFile(srcPath)
	if err != nil {
		return "", ErrIO(srcPath, err)
	}
	defer ZeroBytes(plaintext)

	params, err := e.resolveParams(opts)
	if err != nil {
		return "", err
	}

	containerBytes, err := e.EncryptBytes(plaintext, passphrase, params)
	if err != nil {
		return "", err
	}

	if err := atomicWriteFile(dstPath, containerBytes, 0o600); err != nil {
		return "", err
	}

	// The destination has committed; disposing of the original is a
	// best-effort secondary step per the state machine in spec.md §4.F —
	// its failure does not un-commit dstPath.
	if err := disposeOriginal(srcPath, opts.KeepBackup, opts.SecureDelete); err != nil {
		return dstPath, ErrIO(srcPath, err)
	}

	return dstPath, nil
}

// DecryptFile reads the container at srcPath (which must end in ".enc"),
// authenticates and decrypts it under passphrase, and writes the plaintext
// atomically to the path with the suffix stripped.
func (e *Engine) DecryptFile(srcPath string, passphrase *SecretBuffer, opts DecryptOptions) (string, error) {
	if err := validatePassphrase(passphrase); err != nil {
		return "", err
	}

	dstPath, err := decryptedName(srcPath)
	if err != nil {
		return "", err
	}
	if pathExists(dstPath) && !opts.Overwrite {
		return "", ErrWouldOverwrite
	}

	containerBytes, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", ErrIO(srcPath, err)
	}

	plaintext, err := e.DecryptBytes(containerBytes, passphrase)
	if err != nil {
		return "", err
	}
	defer ZeroBytes(plaintext)

	if err := atomicWriteFile(dstPath, plaintext, 0o600); err != nil {
		return "", err
	}

	if opts.RemoveContainer {
		if err := os.Remove(srcPath); err != nil {
			return dstPath, ErrIO(srcPath, err)
		}
	}

	return dstPath, nil
}

// InspectContainer parses just the header of the container at path,
// reporting its cost parameters and sizes without requiring the
// passphrase and without attempting to derive a key or decrypt.
func (e *Engine) InspectContainer(path string) (*ContainerInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, ErrIO(path, err)
	}
	c, err := parseContainer(data)
	if err != nil {
		return nil, err
	}
	return &ContainerInfo{
		Version:       c.version,
		KDFID:         c.kdfID,
		AEADID:        c.aeadID,
		Params:        c.params,
		CiphertextLen: int64(len(c.ciphertext)),
		TotalSize:     int64(len(data)),
	}, nil
}

// SweepStaleTempFiles removes files in dir older than grace whose name
// contains ".tmp-", such as the temp siblings left behind by a crashed prior
// operation; the text after ".tmp-" is not checked. It is a maintenance
// operation the caller invokes explicitly (e.g. the CLI's sweep command); the
// engine never calls it on its own so it can never race a concurrent
// writer. It returns the paths it removed.
func (e *Engine) SweepStaleTempFiles(dir string, grace time.Duration) ([]string, error) {
	return sweepStaleTempFiles(dir, grace)
}

// FileResult is one outcome in a batch operation produced by EncryptFiles
// or DecryptFiles.
type FileResult struct {
	SrcPath string
	DstPath string
	Err     error
}

// EncryptFiles runs EncryptFile over paths using a bounded worker pool,
// matching the concurrency model in spec.md §5: the engine has no shared
// mutable state, so independent operations on different files may run in
// parallel, with the OS serializing the renames. A panic in one worker is
// recovered and reported as that file's error rather than crashing the
// batch.
func (e *Engine) EncryptFiles(paths []string, passphrase *SecretBuffer, opts EncryptOptions, maxWorkers int) []FileResult {
	return e.runBatch(paths, maxWorkers, func(p string) (string, error) {
		return e.EncryptFile(p, passphrase, opts)
	})
}

// DecryptFiles is the decrypt-side counterpart of EncryptFiles.
func (e *Engine) DecryptFiles(paths []string, passphrase *SecretBuffer, opts DecryptOptions, maxWorkers int) []FileResult {
	return e.runBatch(paths, maxWorkers, func(p string) (string, error) {
		return e.DecryptFile(p, passphrase, opts)
	})
}

func (e *Engine) runBatch(paths []string, maxWorkers int, op func(string) (string, error)) []FileResult {
	results := make([]FileResult, len(paths))
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if maxWorkers > len(paths) {
		maxWorkers = len(paths)
	}
	if maxWorkers == 0 {
		return results
	}

	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for w := 0; w < maxWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = runOne(paths[idx], op)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// runOne executes op for a single path, recovering a panic into that
// path's FileResult.Err so one misbehaving worker cannot take down a batch
// running on other goroutines.
func runOne(path string, op func(string) (string, error)) (res FileResult) {
	res.SrcPath = path
	defer func() {
		if r := recover(); r != nil {
			res.Err = newErr(KindUnknown, path, "panic during batch operation", nil)
		}
	}()
	dst, err := op(path)
	res.DstPath = dst
	res.Err = err
	return res
}
