// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"fmt"
	"io"
)

// statefulFile bolts a cursor onto a positional File: Read/Write act
// at the cursor and advance it, while the positional calls pass
// through without moving it.
type statefulFile[A ~int64] struct {
	inner File[A]
	pos   A
}

var (
	_ File[assertAddr]   = (*statefulFile[assertAddr])(nil)
	_ io.ReadWriteSeeker = (*statefulFile[assertAddr])(nil)
	_ io.ByteReader      = (*statefulFile[assertAddr])(nil)
	_ io.ByteWriter      = (*statefulFile[assertAddr])(nil)
)

// NewStatefulFile wraps a positional File with a cursor, starting at
// offset 0.  The cursor is the statefulFile's own; it does not exist
// on the inner File, and positional calls on the statefulFile do not
// move it.
func NewStatefulFile[A ~int64](file File[A]) *statefulFile[A] {
	return &statefulFile[A]{
		inner: file,
	}
}

func (sf *statefulFile[A]) Name() string                           { return sf.inner.Name() }
func (sf *statefulFile[A]) Size() A                                { return sf.inner.Size() }
func (sf *statefulFile[A]) Close() error                           { return sf.inner.Close() }
func (sf *statefulFile[A]) ReadAt(dat []byte, off A) (int, error)  { return sf.inner.ReadAt(dat, off) }
func (sf *statefulFile[A]) WriteAt(dat []byte, off A) (int, error) { return sf.inner.WriteAt(dat, off) }

func (sf *statefulFile[A]) Read(dat []byte) (n int, err error) {
	n, err = sf.ReadAt(dat, sf.pos)
	sf.pos += A(n)
	return n, err
}

func (sf *statefulFile[A]) Write(dat []byte) (n int, err error) {
	n, err = sf.WriteAt(dat, sf.pos)
	sf.pos += A(n)
	return n, err
}

func (sf *statefulFile[A]) ReadByte() (byte, error) {
	var dat [1]byte
	_, err := sf.Read(dat[:])
	return dat[0], err
}

func (sf *statefulFile[A]) WriteByte(b byte) error {
	dat := [1]byte{b}
	_, err := sf.Write(dat[:])
	return err
}

func (sf *statefulFile[A]) Seek(offset int64, whence int) (int64, error) {
	var base A
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = sf.pos
	case io.SeekEnd:
		base = sf.Size()
	default:
		return 0, fmt.Errorf("diskio: Seek: invalid whence: %v", whence)
	}
	pos := base + A(offset)
	if pos < 0 {
		return 0, fmt.Errorf("diskio: Seek: negative position: %v", pos)
	}
	sf.pos = pos
	return int64(pos), nil
}
