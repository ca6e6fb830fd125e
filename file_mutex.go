// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"sync"
)

// The mutex wrappers derive the shared-access capabilities from
// exclusive-access ones: each delegated call happens with a mutex
// held, so concurrent calls serialize and each one observes a
// consistent view.  Acquisition blocks until the mutex is free, with
// no timeout; the mutex is released on every exit path, including
// error returns.

type mutexReaderAt[A ~int64] struct {
	mu    sync.Mutex
	inner ReaderAt[A]
}

var _ SharedReaderAt[assertAddr] = (*mutexReaderAt[assertAddr])(nil)

// NewMutexReaderAt derives a SharedReaderAt from an exclusive-access
// ReaderAt.
func NewMutexReaderAt[A ~int64](inner ReaderAt[A]) SharedReaderAt[A] {
	return &mutexReaderAt[A]{inner: inner}
}

func (mr *mutexReaderAt[A]) ReadAt(dat []byte, off A) (int, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.inner.ReadAt(dat, off)
}

type mutexWriterAt[A ~int64] struct {
	mu    sync.Mutex
	inner WriterAt[A]
}

var _ SharedWriterAt[assertAddr] = (*mutexWriterAt[assertAddr])(nil)

// NewMutexWriterAt derives a SharedWriterAt from an exclusive-access
// WriterAt.
func NewMutexWriterAt[A ~int64](inner WriterAt[A]) SharedWriterAt[A] {
	return &mutexWriterAt[A]{inner: inner}
}

func (mw *mutexWriterAt[A]) WriteAt(dat []byte, off A) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.inner.WriteAt(dat, off)
}

type mutexReadWriterAt[A ~int64] struct {
	mu    sync.Mutex
	inner ReadWriterAt[A]
}

var _ SharedReadWriterAt[assertAddr] = (*mutexReadWriterAt[assertAddr])(nil)

// NewMutexReadWriterAt derives a SharedReadWriterAt from an
// exclusive-access ReadWriterAt.  Reads and writes share the one
// mutex.
func NewMutexReadWriterAt[A ~int64](inner ReadWriterAt[A]) SharedReadWriterAt[A] {
	return &mutexReadWriterAt[A]{inner: inner}
}

func (mrw *mutexReadWriterAt[A]) ReadAt(dat []byte, off A) (int, error) {
	mrw.mu.Lock()
	defer mrw.mu.Unlock()
	return mrw.inner.ReadAt(dat, off)
}

func (mrw *mutexReadWriterAt[A]) WriteAt(dat []byte, off A) (int, error) {
	mrw.mu.Lock()
	defer mrw.mu.Unlock()
	return mrw.inner.WriteAt(dat, off)
}

type mutexFile[A ~int64] struct {
	mu    sync.Mutex
	inner File[A]
}

var (
	_ File[assertAddr]               = (*mutexFile[assertAddr])(nil)
	_ SharedReadWriterAt[assertAddr] = (*mutexFile[assertAddr])(nil)
)

// NewMutexFile is NewMutexReadWriterAt for whole Files; the returned
// File's positional calls honor the shared-access contract.
func NewMutexFile[A ~int64](inner File[A]) File[A] {
	return &mutexFile[A]{inner: inner}
}

func (mf *mutexFile[A]) Name() string {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.inner.Name()
}

func (mf *mutexFile[A]) Size() A {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.inner.Size()
}

func (mf *mutexFile[A]) Close() error {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.inner.Close()
}

func (mf *mutexFile[A]) ReadAt(dat []byte, off A) (int, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.inner.ReadAt(dat, off)
}

func (mf *mutexFile[A]) WriteAt(dat []byte, off A) (int, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	return mf.inner.WriteAt(dat, off)
}
