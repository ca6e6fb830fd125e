// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !unix

package diskio

import (
	"os"
)

// FDFile is a File over a raw file descriptor.  This platform has no
// pread(2)/pwrite(2) to forward to, so the descriptor is adopted into
// an *os.File and the runtime's positional I/O is used instead.
//
// FDFile takes ownership of the descriptor; Close closes it.
type FDFile[A ~int64] struct {
	inner OSFile[A]
}

var (
	_ File[assertAddr]               = (*FDFile[assertAddr])(nil)
	_ SharedReadWriterAt[assertAddr] = (*FDFile[assertAddr])(nil)
)

func NewFDFile[A ~int64](fd int, name string) *FDFile[A] {
	return &FDFile[A]{
		inner: OSFile[A]{os.NewFile(uintptr(fd), name)},
	}
}

func (f *FDFile[A]) Name() string { return f.inner.Name() }
func (f *FDFile[A]) Size() A      { return f.inner.Size() }
func (f *FDFile[A]) Close() error { return f.inner.Close() }

func (f *FDFile[A]) ReadAt(dat []byte, off A) (int, error) {
	return f.inner.ReadAt(dat, off)
}

func (f *FDFile[A]) WriteAt(dat []byte, off A) (int, error) {
	return f.inner.WriteAt(dat, off)
}
