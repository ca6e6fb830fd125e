// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"io"
)

// ReaderAt is the positional-read capability, in its exclusive-access
// form: the caller must ensure that only one call is in flight at a
// time.
//
// ReadAt reads up to len(p) bytes starting at byte offset off,
// returning the number of bytes read.  Short reads are not errors; at
// the end of the medium ReadAt returns 0, io.EOF.  ReadAt never
// touches p beyond the returned count, and if the medium also has a
// cursor then ReadAt does not move it.
type ReaderAt[A ~int64] interface {
	ReadAt(p []byte, off A) (n int, err error)
}

// WriterAt is the positional-write capability, in its
// exclusive-access form.
//
// WriteAt writes up to len(p) bytes starting at byte offset off,
// returning the number of bytes written.  Short writes are not
// errors.  Like ReadAt, WriteAt does not move any cursor that the
// medium may also have.
type WriterAt[A ~int64] interface {
	WriteAt(p []byte, off A) (n int, err error)
}

// ReadWriterAt is a combined ReaderAt and WriterAt.
type ReadWriterAt[A ~int64] interface {
	ReaderAt[A]
	WriterAt[A]
}

// SharedReaderAt is the positional-read capability, in its
// shared-access form: in addition to the ReaderAt contract,
// concurrent calls are safe, and each call observes a consistent
// (non-torn) view of the medium.
//
// Go cannot express the difference in the type system; which contract
// an implementation honors is part of its documentation.  Every
// SharedReaderAt is a valid ReaderAt; the reverse direction requires
// a guard (NewMutexReaderAt).
type SharedReaderAt[A ~int64] interface {
	ReadAt(p []byte, off A) (n int, err error)
}

// SharedWriterAt is the positional-write capability, in its
// shared-access form; see SharedReaderAt.
type SharedWriterAt[A ~int64] interface {
	WriteAt(p []byte, off A) (n int, err error)
}

// SharedReadWriterAt is a combined SharedReaderAt and SharedWriterAt.
type SharedReadWriterAt[A ~int64] interface {
	SharedReaderAt[A]
	SharedWriterAt[A]
}

// File is a whole-medium handle: the positional capabilities plus the
// bookkeeping that every real medium has.  Whether a given File's
// ReadAt/WriteAt honor the shared-access contract is up to the
// implementation; NewMutexFile turns any File into one that does.
type File[A ~int64] interface {
	Name() string
	Size() A
	Close() error
	ReadAt(p []byte, off A) (n int, err error)
	WriteAt(p []byte, off A) (n int, err error)
}

var (
	_ io.ReaderAt = ReaderAt[int64](nil)
	_ io.WriterAt = WriterAt[int64](nil)
	_ io.ReaderAt = SharedReaderAt[int64](nil)
	_ io.WriterAt = SharedWriterAt[int64](nil)

	_ ReaderAt[assertAddr]     = SharedReaderAt[assertAddr](nil)
	_ WriterAt[assertAddr]     = SharedWriterAt[assertAddr](nil)
	_ ReadWriterAt[assertAddr] = SharedReadWriterAt[assertAddr](nil)
	_ ReadWriterAt[assertAddr] = File[assertAddr](nil)
)
