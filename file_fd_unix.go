// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build unix

package diskio

import (
	"io"

	"golang.org/x/sys/unix"
)

// FDFile is a File over a raw file descriptor, forwarding the
// positional calls directly to pread(2) and pwrite(2).  Since the
// kernel applies the offset atomically, FDFile honors the
// shared-access contract.
//
// FDFile takes ownership of the descriptor; Close closes it.
type FDFile[A ~int64] struct {
	fd   int
	name string
}

var (
	_ File[assertAddr]               = (*FDFile[assertAddr])(nil)
	_ SharedReadWriterAt[assertAddr] = (*FDFile[assertAddr])(nil)
)

func NewFDFile[A ~int64](fd int, name string) *FDFile[A] {
	return &FDFile[A]{
		fd:   fd,
		name: name,
	}
}

func (f *FDFile[A]) Name() string { return f.name }

func (f *FDFile[A]) Size() A {
	var st unix.Stat_t
	if err := unix.Fstat(f.fd, &st); err != nil {
		return 0
	}
	return A(st.Size)
}

func (f *FDFile[A]) Close() error {
	return unix.Close(f.fd)
}

func (f *FDFile[A]) ReadAt(dat []byte, off A) (int, error) {
	n, err := unix.Pread(f.fd, dat, int64(off))
	if n == 0 && err == nil && len(dat) > 0 {
		// pread(2) signals end-of-file with a 0 count.
		err = io.EOF
	}
	return n, err
}

func (f *FDFile[A]) WriteAt(dat []byte, off A) (int, error) {
	return unix.Pwrite(f.fd, dat, int64(off))
}
