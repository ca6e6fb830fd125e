// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"os"
)

// OSFile is a File over an *os.File.  The positional calls go
// through the runtime's positional I/O (pread(2)/pwrite(2) where the
// platform has them), so they neither depend on nor move the file's
// own cursor, and they honor the shared-access contract.
type OSFile[A ~int64] struct {
	*os.File
}

var (
	_ File[assertAddr]               = (*OSFile[assertAddr])(nil)
	_ SharedReadWriterAt[assertAddr] = (*OSFile[assertAddr])(nil)
)

func (f *OSFile[A]) Size() A {
	fi, err := f.Stat()
	if err != nil {
		return 0
	}
	return A(fi.Size())
}

func (f *OSFile[A]) ReadAt(dat []byte, off A) (int, error) {
	return f.File.ReadAt(dat, int64(off))
}

func (f *OSFile[A]) WriteAt(dat []byte, off A) (int, error) {
	return f.File.WriteAt(dat, int64(off))
}
