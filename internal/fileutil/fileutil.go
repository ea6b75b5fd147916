// Package fileutil writes build artifacts so that a failed run never leaves
// a partially written file behind.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrLocked is returned when another process holds the lock for the target.
var ErrLocked = errors.New("output file is locked by another process")

// LockPath returns the advisory lock file guarding writes to path.
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path. On any error the temporary file is removed and path
// keeps its previous content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}
	if !ok {
		return errors.Wrapf(ErrLocked, "%s", path)
	}
	// The lock file is never removed: every writer must lock the same inode.
	defer lock.Unlock()

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return errors.Wrapf(err, "create temporary file for %s", path)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s to %s", tmp, path)
	}
	return nil
}
