package cryptovault

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// tempPrefix prefixes the random suffix appended to the sibling temp file a
// write passes through before the final rename. uuid.New gives us well
// over 64 bits of entropy per spec.md §5's collision-avoidance requirement.
const tempPrefix = ".tmp-"

func tempPathFor(dst string) string {
	return dst + tempPrefix + uuid.New().String()
}

// atomicWriteFile writes data to a sibling temp file, fsyncs it, and
// renames it over dst. On any failure before the rename, the temp file is
// unlinked so no partial artifact is left behind. This is the single choke
// point through which every committed write in the pipeline passes, so
// property 7 (atomicity) holds regardless of which caller invoked it.
func atomicWriteFile(dst string, data []byte, perm os.FileMode) error {
	tmp := tempPathFor(dst)

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return ErrIO(dst, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return ErrIO(dst, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return ErrIO(dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return ErrIO(dst, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return ErrIO(dst, err)
	}
	return nil
}

// statRegularFile stats path and classifies the three outcomes the
// pipeline cares about: missing, present-but-not-a-regular-file, present.
func statRegularFile(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, ErrIO(path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotAFile
	}
	return info, nil
}

// pathExists reports whether path exists, regardless of its type.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// disposeOriginal implements the three-way, mutually exclusive outcome for
// the source plaintext (or source container) after a successful commit:
// rename to a backup, secure-overwrite-then-unlink, or plain unlink. It is a
// best-effort secondary step per spec.md's state machine — the destination
// has already committed by the time this runs — so on failure the caller
// leaves the destination in place and returns its path together with the
// error.
func disposeOriginal(src string, keepBackup, secureDelete bool) error {
	if keepBackup {
		return os.Rename(src, src+backupSuffix)
	}
	if secureDelete {
		info, err := os.Stat(src)
		if err != nil {
			return err
		}
		if err := overwriteWithZeros(src, info.Size()); err != nil {
			return err
		}
	}
	return os.Remove(src)
}

// overwriteWithZeros overwrites an existing file's content with zero bytes
// of the same length before it is unlinked, so the original plaintext does
// not linger in place on disk for a forensic read of unallocated space.
func overwriteWithZeros(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	const chunkSize = 64 * 1024
	buf := make([]byte, chunkSize)
	var written int64
	for written < size {
		n := chunkSize
		if remaining := size - written; remaining < int64(chunkSize) {
			n = int(remaining)
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return err
		}
		written += int64(n)
	}
	return f.Sync()
}

// sweepStaleTempFiles removes regular files in dir whose name contains
// ".tmp-" (see indexTempSuffix) and whose modification time is older than
// grace. It is never invoked automatically by encrypt/decrypt — callers run
// it explicitly, e.g. the CLI's sweep command, per spec.md
// §4.F's "stale .tmp-* files are benign and may be cleaned up
// opportunistically on future operations in the same directory."
func sweepStaleTempFiles(dir string, grace time.Duration) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ErrIO(dir, err)
	}

	now := time.Now()
	var removed []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if idx := indexTempSuffix(name); idx < 0 {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < grace {
			continue
		}
		full := filepath.Join(dir, name)
		if err := os.Remove(full); err == nil {
			removed = append(removed, full)
		}
	}
	return removed, nil
}

// indexTempSuffix returns the index of the first occurrence of tempPrefix in
// name, or -1 if name does not contain it. The text after the prefix is not
// checked, so any name containing ".tmp-" matches, not only the
// "<name>.tmp-<uuid>" siblings that tempPathFor produces.
func indexTempSuffix(name string) int {
	for i := 0; i+len(tempPrefix) <= len(name); i++ {
		if name[i:i+len(tempPrefix)] == tempPrefix {
			return i
		}
	}
	return -1
}
