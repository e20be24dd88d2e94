package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Exists reports whether path names an existing filesystem entry.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// WriteAtomic writes data to a uniquely named temp file beside path, syncs it,
// and renames it over path. Readers never observe a partially written file.
func WriteAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	defer func() {
		_ = tmp.Close()
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return err
	}
	return nil
}

// CopyFileVerified streams src to dst, then re-reads dst from disk and checks
// its size and SHA-256 against what was read from src. Removes dst on
// mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	if _, err := io.Copy(out, io.TeeReader(in, srcHasher)); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := verifyFile(dst, srcInfo.Size(), srcHasher.Sum(nil)); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// verifyFile reads path back and compares it with the expected size and
// SHA-256 digest.
func verifyFile(path string, size int64, sum []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopen copy: %w", err)
	}
	defer f.Close()

	hasher := sha256.New()
	read, err := io.Copy(hasher, f)
	if err != nil {
		return fmt.Errorf("read back copy: %w", err)
	}
	if read != size {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", size, read)
	}
	if !bytes.Equal(hasher.Sum(nil), sum) {
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
