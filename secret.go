package cryptovault

import "crypto/subtle"

// SecretBuffer owns a byte slice holding key material or a passphrase and
// guarantees the bytes are overwritten with zeros once the caller is done
// with them. Unlike a destructor-based cleanup, Go gives us no hook that
// runs automatically on scope exit, so callers must defer Destroy.
type SecretBuffer struct {
	buf       []byte
	destroyed bool
}

// NewSecretBuffer allocates a zero-filled secret buffer of the given length.
func NewSecretBuffer(length int) *SecretBuffer {
	return &SecretBuffer{buf: make([]byte, length)}
}

// SecretBufferFromBytes copies src into a fresh secret buffer. The caller is
// responsible for zeroing src afterward if it held a temporary copy of the
// secret (the copy here does not consume or clear the source).
func SecretBufferFromBytes(src []byte) *SecretBuffer {
	buf := make([]byte, len(src))
	copy(buf, src)
	return &SecretBuffer{buf: buf}
}

// Bytes returns a read-only view of the buffer's contents. The returned
// slice aliases the buffer's memory and becomes invalid after Destroy.
func (s *SecretBuffer) Bytes() []byte {
	if s == nil || s.destroyed {
		return nil
	}
	return s.buf
}

// MutableBytes returns a writable view of the buffer's contents.
func (s *SecretBuffer) MutableBytes() []byte {
	if s == nil || s.destroyed {
		return nil
	}
	return s.buf
}

// Len reports the buffer's length in bytes.
func (s *SecretBuffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Destroy overwrites the buffer with zeros. Safe to call more than once and
// safe to call on a nil receiver.
func (s *SecretBuffer) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	zero(s.buf)
	s.destroyed = true
}

// ConstantTimeEquals reports whether the two buffers hold identical bytes,
// comparing in constant time with respect to length-equal inputs.
func (s *SecretBuffer) ConstantTimeEquals(other *SecretBuffer) bool {
	if s == nil || other == nil {
		return false
	}
	if len(s.buf) != len(other.buf) {
		return false
	}
	return subtle.ConstantTimeCompare(s.buf, other.buf) == 1
}

// String never renders the buffer's contents, even under %v or %+v.
func (s *SecretBuffer) String() string {
	return "SecretBuffer(REDACTED)"
}

// GoString matches String so %#v does not leak contents either.
func (s *SecretBuffer) GoString() string {
	return s.String()
}

// zero overwrites every byte of b with zero, in place. The Go compiler
// recognizes this range loop and emits it as a single bulk memory clear.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroBytes overwrites an arbitrary byte slice the engine does not otherwise
// own, such as a plaintext buffer read by the caller before handing it to
// EncryptBytes. Exported so the file pipeline and callers share one
// zeroization primitive.
func ZeroBytes(b []byte) {
	zero(b)
}
