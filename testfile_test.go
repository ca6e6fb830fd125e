// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio_test

import (
	"io"
	"syscall"

	"git.lukeshu.com/go/diskio"
)

// memFile is a trivial in-memory File for exercising the adapters.
type memFile struct {
	name string
	dat  []byte
}

var _ diskio.File[int64] = (*memFile)(nil)

func newMemFile(name string, size int) *memFile {
	return &memFile{
		name: name,
		dat:  make([]byte, size),
	}
}

func (f *memFile) Name() string { return f.name }
func (f *memFile) Size() int64  { return int64(len(f.dat)) }
func (f *memFile) Close() error { return nil }

func (f *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(f.dat)) {
		return 0, io.EOF
	}
	n := copy(p, f.dat[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *memFile) WriteAt(p []byte, off int64) (int, error) {
	if grow := off + int64(len(p)) - int64(len(f.dat)); grow > 0 {
		f.dat = append(f.dat, make([]byte, grow)...)
	}
	return copy(f.dat[off:], p), nil
}

// chokeFile transfers at most 1 byte per call, to force the
// full-transfer helpers to loop.
type chokeFile struct {
	inner      diskio.File[int64]
	readCalls  int
	writeCalls int
}

var _ diskio.ReadWriterAt[int64] = (*chokeFile)(nil)

func (f *chokeFile) ReadAt(p []byte, off int64) (int, error) {
	f.readCalls++
	if len(p) > 1 {
		p = p[:1]
	}
	return f.inner.ReadAt(p, off)
}

func (f *chokeFile) WriteAt(p []byte, off int64) (int, error) {
	f.writeCalls++
	if len(p) > 1 {
		p = p[:1]
	}
	return f.inner.WriteAt(p, off)
}

// eintrFile fails the next .fail calls with EINTR before letting any
// I/O through.
type eintrFile struct {
	inner diskio.File[int64]
	fail  int
}

var _ diskio.ReadWriterAt[int64] = (*eintrFile)(nil)

func (f *eintrFile) ReadAt(p []byte, off int64) (int, error) {
	if f.fail > 0 {
		f.fail--
		return 0, syscall.EINTR
	}
	return f.inner.ReadAt(p, off)
}

func (f *eintrFile) WriteAt(p []byte, off int64) (int, error) {
	if f.fail > 0 {
		f.fail--
		return 0, syscall.EINTR
	}
	return f.inner.WriteAt(p, off)
}

// stuckFile reports zero-byte transfers without an error.
type stuckFile struct{}

var _ diskio.ReadWriterAt[int64] = stuckFile{}

func (stuckFile) ReadAt([]byte, int64) (int, error)  { return 0, nil }
func (stuckFile) WriteAt([]byte, int64) (int, error) { return 0, nil }
