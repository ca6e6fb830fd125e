// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"errors"
	"io"
	"syscall"
)

// ReadFullAt reads exactly len(p) bytes from r starting at byte
// offset off, retrying short reads by advancing the offset and
// shrinking the buffer.  Interrupted calls (syscall.EINTR) are
// retried; any other error is returned as-is.  If the medium ends
// before p is filled, ReadFullAt returns io.ErrUnexpectedEOF; if it
// ends exactly at len(p), ReadFullAt returns nil.
func ReadFullAt[A ~int64](r ReaderAt[A], p []byte, off A) error {
	for len(p) > 0 {
		n, err := r.ReadAt(p, off)
		p = p[n:]
		off += A(n)
		if err != nil {
			switch {
			case len(p) == 0:
				return nil
			case errors.Is(err, syscall.EINTR):
				continue
			case errors.Is(err, io.EOF):
				return io.ErrUnexpectedEOF
			default:
				return err
			}
		}
		if n == 0 {
			// A (0, nil) result means the medium is
			// exhausted but didn't say so; don't spin.
			return io.ErrUnexpectedEOF
		}
	}
	return nil
}

// WriteFullAt writes all of p to w starting at byte offset off,
// retrying short writes by advancing the offset and shrinking the
// remaining slice.  Interrupted calls (syscall.EINTR) are retried;
// any other error is returned as-is.  A successful zero-byte write
// means the medium can't take more, and is reported as
// io.ErrShortWrite.
func WriteFullAt[A ~int64](w WriterAt[A], p []byte, off A) error {
	for len(p) > 0 {
		n, err := w.WriteAt(p, off)
		p = p[n:]
		off += A(n)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}
