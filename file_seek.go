// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"fmt"
	"io"
)

// seekFile adapts a cursor-based stream into the positional
// capabilities by seeking to the requested offset before each read
// or write.
type seekFile[A ~int64] struct {
	inner io.ReadWriteSeeker
}

var _ ReadWriterAt[assertAddr] = (*seekFile[assertAddr])(nil)

// NewSeekFile wraps a cursor-based stream so that it can be used as a
// ReadWriterAt.  Each call seeks to the requested offset, performs
// one read or write, and leaves the cursor wherever that put it;
// restoring the cursor is not part of the contract.
//
// The result is exclusive-access only: the seek and the I/O are two
// separate calls on the stream, so concurrent use (including use
// racing the stream's own cursor) must be serialized by the caller,
// or the whole thing wrapped with NewMutexReadWriterAt.
func NewSeekFile[A ~int64](inner io.ReadWriteSeeker) ReadWriterAt[A] {
	return &seekFile[A]{inner: inner}
}

func (sf *seekFile[A]) ReadAt(dat []byte, off A) (int, error) {
	if err := seekTo(sf.inner, int64(off)); err != nil {
		return 0, err
	}
	return sf.inner.Read(dat)
}

func (sf *seekFile[A]) WriteAt(dat []byte, off A) (int, error) {
	if err := seekTo(sf.inner, int64(off)); err != nil {
		return 0, err
	}
	return sf.inner.Write(dat)
}

// seekReaderAt is the read-only flavor of seekFile.
type seekReaderAt[A ~int64] struct {
	inner io.ReadSeeker
}

var _ ReaderAt[assertAddr] = (*seekReaderAt[assertAddr])(nil)

// NewSeekReaderAt is NewSeekFile for streams that can only read.
func NewSeekReaderAt[A ~int64](inner io.ReadSeeker) ReaderAt[A] {
	return &seekReaderAt[A]{inner: inner}
}

func (sr *seekReaderAt[A]) ReadAt(dat []byte, off A) (int, error) {
	if err := seekTo(sr.inner, int64(off)); err != nil {
		return 0, err
	}
	return sr.inner.Read(dat)
}

func seekTo(s io.Seeker, off int64) error {
	got, err := s.Seek(off, io.SeekStart)
	if err != nil {
		return err
	}
	if got != off {
		return fmt.Errorf("diskio: seek to %v landed at %v", off, got)
	}
	return nil
}
