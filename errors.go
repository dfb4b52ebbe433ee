package cryptovault

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the taxonomy of engine failures so callers can
// branch on category without string matching.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIO
	KindNotFound
	KindNotAFile
	KindAlreadyEncrypted
	KindWouldOverwrite
	KindNotAContainer
	KindUnsupportedVersion
	KindUnsupportedAlgorithm
	KindCorruptContainer
	KindInvalidParameters
	KindDerivationFailed
	KindAuthenticationFailed
	KindEmptyPassphrase
	KindRandomnessFailure
	KindUnknownProfile
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io_error"
	case KindNotFound:
		return "not_found"
	case KindNotAFile:
		return "not_a_file"
	case KindAlreadyEncrypted:
		return "already_encrypted"
	case KindWouldOverwrite:
		return "would_overwrite"
	case KindNotAContainer:
		return "not_a_container"
	case KindUnsupportedVersion:
		return "unsupported_version"
	case KindUnsupportedAlgorithm:
		return "unsupported_algorithm"
	case KindCorruptContainer:
		return "corrupt_container"
	case KindInvalidParameters:
		return "invalid_parameters"
	case KindDerivationFailed:
		return "derivation_failed"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindEmptyPassphrase:
		return "empty_passphrase"
	case KindRandomnessFailure:
		return "randomness_failure"
	case KindUnknownProfile:
		return "unknown_profile"
	default:
		return "unknown"
	}
}

// EngineError is the single error type the engine returns across its public
// surface. Callers discriminate on Kind rather than on message text or
// concrete type, since every failure mode funnels through here.
type EngineError struct {
	Kind    ErrorKind
	Path    string // file path, if applicable; never a passphrase or key
	Detail  string // human-readable detail; never secret bytes
	Version uint16 // populated for KindUnsupportedVersion
	Err     error  // wrapped underlying error, if any
}

func (e *EngineError) Error() string {
	switch {
	case e.Path != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Detail)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return e.Kind.String()
	}
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrAuthenticationFailed) style sentinels work
// against the Kind, without requiring callers to unwrap to *EngineError.
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, path, detail string, err error) *EngineError {
	return &EngineError{Kind: kind, Path: path, Detail: detail, Err: err}
}

// Sentinel EngineErrors for errors.Is comparisons that don't need a path.
var (
	ErrNotFound             = &EngineError{Kind: KindNotFound}
	ErrNotAFile             = &EngineError{Kind: KindNotAFile}
	ErrAlreadyEncrypted     = &EngineError{Kind: KindAlreadyEncrypted}
	ErrWouldOverwrite       = &EngineError{Kind: KindWouldOverwrite}
	ErrNotAContainer        = &EngineError{Kind: KindNotAContainer}
	ErrUnsupportedAlgorithm = &EngineError{Kind: KindUnsupportedAlgorithm}
	ErrAuthenticationFailed = &EngineError{Kind: KindAuthenticationFailed, Detail: "wrong passphrase or corrupt container"}
	ErrEmptyPassphrase      = &EngineError{Kind: KindEmptyPassphrase}
	ErrRandomnessFailure    = &EngineError{Kind: KindRandomnessFailure}
	ErrDerivationFailed     = &EngineError{Kind: KindDerivationFailed}
	ErrUnknownProfile       = &EngineError{Kind: KindUnknownProfile}
)

// ErrIO builds a KindIO error carrying the path and underlying cause.
func ErrIO(path string, err error) *EngineError {
	return newErr(KindIO, path, "", err)
}

// ErrCorruptContainer builds a KindCorruptContainer error with a detail
// string describing what failed to parse.
func ErrCorruptContainer(detail string) *EngineError {
	return newErr(KindCorruptContainer, "", detail, nil)
}

// ErrUnsupportedVersionErr builds a KindUnsupportedVersion error naming the
// version actually observed in the container.
func ErrUnsupportedVersionErr(seen uint16) *EngineError {
	return &EngineError{Kind: KindUnsupportedVersion, Version: seen, Detail: "container version not recognized, upgrade may be required"}
}

// ErrInvalidParametersErr builds a KindInvalidParameters error describing
// which KDF parameter invariant was violated.
func ErrInvalidParametersErr(detail string) *EngineError {
	return newErr(KindInvalidParameters, "", detail, nil)
}

// KindOf extracts the ErrorKind from err, returning KindUnknown if err is
// not an *EngineError.
func KindOf(err error) ErrorKind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindUnknown
}
