package cryptovault

import (
	"errors"
	"testing"
)

func TestEngineErrorMessageFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *EngineError
		want string
	}{
		{"path and detail", newErr(KindIO, "/tmp/x", "disk full", nil), "io_error: /tmp/x: disk full"},
		{"path only", newErr(KindNotFound, "/tmp/x", "", nil), "not_found: /tmp/x"},
		{"detail only", newErr(KindCorruptContainer, "", "too short", nil), "corrupt_container: too short"},
		{"neither", &EngineError{Kind: KindUnknown}, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngineErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")
	wrapped := ErrIO("/tmp/x", cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("errors.Is() did not find wrapped cause")
	}
}

func TestEngineErrorIsMatchesByKindNotIdentity(t *testing.T) {
	a := newErr(KindAuthenticationFailed, "/a", "", nil)
	if !errors.Is(a, ErrAuthenticationFailed) {
		t.Fatalf("errors.Is() did not match sentinel by kind")
	}

	b := newErr(KindNotFound, "/a", "", nil)
	if errors.Is(b, ErrAuthenticationFailed) {
		t.Fatalf("errors.Is() incorrectly matched a different kind")
	}
}

func TestKindOfNonEngineError(t *testing.T) {
	if got := KindOf(errors.New("plain error")); got != KindUnknown {
		t.Fatalf("KindOf(plain error) = %v, want KindUnknown", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf(nil) = %v, want KindUnknown", got)
	}
}

func TestErrUnsupportedVersionErrCarriesVersion(t *testing.T) {
	err := ErrUnsupportedVersionErr(7)
	if err.Version != 7 {
		t.Fatalf("Version = %d, want 7", err.Version)
	}
	if KindOf(err) != KindUnsupportedVersion {
		t.Fatalf("KindOf() = %v, want KindUnsupportedVersion", KindOf(err))
	}
}

func TestErrorKindStringCoversAllKinds(t *testing.T) {
	kinds := []ErrorKind{
		KindUnknown, KindIO, KindNotFound, KindNotAFile, KindAlreadyEncrypted,
		KindWouldOverwrite, KindNotAContainer, KindUnsupportedVersion,
		KindUnsupportedAlgorithm, KindCorruptContainer, KindInvalidParameters,
		KindDerivationFailed, KindAuthenticationFailed, KindEmptyPassphrase,
		KindRandomnessFailure, KindUnknownProfile,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" {
			t.Errorf("kind %d has empty String()", k)
		}
		if s == "unknown" && k != KindUnknown {
			t.Errorf("kind %d falls through to the default \"unknown\" string", k)
		}
		if seen[s] {
			t.Errorf("kind %d reuses string %q already seen", k, s)
		}
		seen[s] = true
	}
}
