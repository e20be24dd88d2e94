package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"gxttool/internal/document"
	"gxttool/internal/fileutil"
	"gxttool/internal/gxt"
	"gxttool/internal/logging"
)

const (
	// ContainerExt is the extension Pack gives a defaulted destination.
	ContainerExt = ".gxt"
	// DocumentExt is the extension Unpack gives a defaulted destination when
	// Options.DocumentExt is empty.
	DocumentExt = ".toml"

	lockSuffix   = ".lock"
	backupSuffix = ".bak"
	outputMode   = 0o644
)

// Options controls a single conversion.
type Options struct {
	Platform gxt.Platform
	// Force replaces an existing destination.
	Force bool
	// Backup copies an existing destination to "<dst>.bak" before it is
	// replaced. Only meaningful with Force.
	Backup bool
	// Lock holds an exclusive flock on "<dst>.lock" while writing.
	Lock bool
	// Title is written as the document title by Unpack. Empty means the
	// source file name.
	Title string
	// DocumentExt is the extension of a defaulted Unpack destination.
	DocumentExt string
	Logger      *slog.Logger
}

// Result summarizes a completed conversion.
type Result struct {
	Source      string
	Destination string
	Platform    gxt.Platform
	Records     int
	Bytes       int
	// BackupPath is set when an existing destination was backed up.
	BackupPath string
}

// DefaultDestination swaps the extension of src for ext.
func DefaultDestination(src, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

// Pack reads the TOML document at src and writes the GXT container to dst.
// An empty dst defaults to src with a .gxt extension.
func Pack(src, dst string, opts Options) (*Result, error) {
	if strings.TrimSpace(dst) == "" {
		dst = DefaultDestination(src, ContainerExt)
	}
	return run(src, dst, opts, "packed container", func(data []byte) ([]byte, int, error) {
		_, records, err := document.Unmarshal(data)
		if err != nil {
			return nil, 0, err
		}
		out, err := gxt.Encode(records, opts.Platform)
		if err != nil {
			return nil, 0, err
		}
		return out, len(records), nil
	})
}

// Unpack reads the GXT container at src and writes the TOML document to dst.
// An empty dst defaults to src with the document extension.
func Unpack(src, dst string, opts Options) (*Result, error) {
	if strings.TrimSpace(dst) == "" {
		ext := opts.DocumentExt
		if ext == "" {
			ext = DocumentExt
		}
		dst = DefaultDestination(src, ext)
	}
	title := opts.Title
	if title == "" {
		title = filepath.Base(src)
	}
	return run(src, dst, opts, "unpacked container", func(data []byte) ([]byte, int, error) {
		records, err := gxt.Decode(data, opts.Platform)
		if err != nil {
			return nil, 0, err
		}
		out, err := document.Marshal(title, records)
		if err != nil {
			return nil, 0, err
		}
		return out, len(records), nil
	})
}

type transformFunc func(data []byte) (out []byte, records int, err error)

func run(src, dst string, opts Options, done string, transform transformFunc) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := checkDistinct(src, dst); err != nil {
		return nil, err
	}

	if opts.Lock {
		unlock, err := lockDestination(dst, logger)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	exists, err := destinationExists(dst)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, &FilesystemError{Op: "write", Path: dst, Err: ErrDestinationExists}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, &FilesystemError{Op: "read", Path: src, Err: err}
	}
	out, count, err := transform(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	result := &Result{
		Source:      src,
		Destination: dst,
		Platform:    opts.Platform,
		Records:     count,
		Bytes:       len(out),
	}

	if exists && opts.Backup {
		backup := dst + backupSuffix
		if err := fileutil.CopyFileVerified(dst, backup); err != nil {
			return nil, &FilesystemError{Op: "backup", Path: dst, Err: err}
		}
		result.BackupPath = backup
		logger.Debug("backed up destination", logging.String(logging.FieldBackup, backup))
	}

	if err := fileutil.WriteAtomic(dst, out, outputMode); err != nil {
		return nil, &FilesystemError{Op: "write", Path: dst, Err: err}
	}

	logger.Info(done,
		logging.String(logging.FieldSource, src),
		logging.String(logging.FieldDestination, dst),
		logging.String(logging.FieldPlatform, opts.Platform.String()),
		logging.Int(logging.FieldRecords, count),
		logging.Int(logging.FieldBytes, len(out)),
		logging.Bool(logging.FieldReplaced, exists),
	)
	return result, nil
}

func checkDistinct(src, dst string) error {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return &FilesystemError{Op: "resolve", Path: src, Err: err}
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return &FilesystemError{Op: "resolve", Path: dst, Err: err}
	}
	if srcAbs == dstAbs {
		return &FilesystemError{Op: "write", Path: dst, Err: errors.New("destination is the source file")}
	}
	return nil
}

func destinationExists(dst string) (bool, error) {
	exists, err := fileutil.Exists(dst)
	if err != nil {
		return false, &FilesystemError{Op: "stat", Path: dst, Err: err}
	}
	if exists {
		if info, err := os.Stat(dst); err == nil && info.IsDir() {
			return false, &FilesystemError{Op: "write", Path: dst, Err: errors.New("destination is a directory")}
		}
	}
	return exists, nil
}

func lockDestination(dst string, logger *slog.Logger) (func(), error) {
	lockPath := dst + lockSuffix
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, &FilesystemError{Op: "lock", Path: lockPath, Err: err}
	}
	if !ok {
		return nil, &FilesystemError{Op: "lock", Path: lockPath, Err: ErrDestinationLocked}
	}
	logger.Debug("acquired destination lock", logging.String(logging.FieldLock, lockPath))
	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release destination lock", logging.String(logging.FieldLock, lockPath), logging.Error(err))
			return
		}
		_ = os.Remove(lockPath)
	}, nil
}
