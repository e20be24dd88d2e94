package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"gxttool/internal/logging"
)

func TestLockDestinationReleaseOrder(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "INTRO.gxt")
	lockPath := dst + lockSuffix

	unlock, err := lockDestination(dst, logging.NewNop())
	if err != nil {
		t.Fatalf("lockDestination: %v", err)
	}

	contender := flock.New(lockPath)
	ok, err := contender.TryLock()
	if err != nil {
		t.Fatalf("contender TryLock: %v", err)
	}
	if ok {
		t.Fatal("second lock acquired while the destination lock was held")
	}
	_ = contender.Close()

	if _, err := lockDestination(dst, logging.NewNop()); !errors.Is(err, ErrDestinationLocked) {
		t.Fatalf("expected ErrDestinationLocked, got %v", err)
	}

	unlock()
	if _, err := os.Stat(lockPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected lock file removed after release, stat err = %v", err)
	}

	next, err := lockDestination(dst, logging.NewNop())
	if err != nil {
		t.Fatalf("relock after release: %v", err)
	}
	next()
}
