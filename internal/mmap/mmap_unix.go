//go:build !windows

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the first size bytes of fd read-only. A zero size yields an empty
// slice without a mapping.
func Map(fd *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}
	return b, nil
}

func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
