// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"context"
	"io"
	"sync"

	"github.com/datawire/dlib/dlog"
	lru "github.com/hashicorp/golang-lru"
)

type bufferedBlock[A ~int64] struct {
	Addr  A
	Dirty bool

	// Dat is always blockSize bytes of capacity; len(Dat) is how
	// many of them are valid.
	Dat []byte
	Err error
}

// bufferedFile is a write-back block cache over an inner File.
// Exclusive-access; wrap with NewMutexFile if you need to share it.
type bufferedFile[A ~int64] struct {
	ctx       context.Context
	inner     File[A]
	blockSize A

	mu       sync.Mutex
	blocks   *lru.Cache
	pool     slicePool[byte]
	flushErr error
}

var _ File[assertAddr] = (*bufferedFile[assertAddr])(nil)

// NewBufferedFile wraps a File with an LRU cache of cacheSize blocks
// of blockSize bytes each.  Writes are buffered and reach the inner
// File when their block is evicted, or on Flush or Close; a flush
// forced by eviction has nowhere to return an error, so eviction-time
// I/O errors are logged to ctx and re-reported by the next Flush or
// Close.
func NewBufferedFile[A ~int64](ctx context.Context, file File[A], blockSize A, cacheSize int) *bufferedFile[A] {
	bf := &bufferedFile[A]{
		ctx:       ctx,
		inner:     file,
		blockSize: blockSize,
	}
	bf.blocks, _ = lru.NewWithEvict(cacheSize, bf.evict)
	return bf
}

func (bf *bufferedFile[A]) Name() string { return bf.inner.Name() }
func (bf *bufferedFile[A]) Size() A      { return bf.inner.Size() }

func (bf *bufferedFile[A]) Close() error {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	bf.blocks.Purge()
	flushErr := bf.flushErr
	bf.flushErr = nil
	closeErr := bf.inner.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Flush writes out all dirty blocks, without evicting anything.
func (bf *bufferedFile[A]) Flush() error {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	err := bf.flushErr
	bf.flushErr = nil
	for _, key := range bf.blocks.Keys() {
		cached, ok := bf.blocks.Peek(key)
		if !ok {
			continue
		}
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		if flushErr := bf.flushBlock(cached.(*bufferedBlock[A])); flushErr != nil && err == nil {
			err = flushErr
		}
	}
	return err
}

func (bf *bufferedFile[A]) ReadAt(dat []byte, off A) (int, error) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	done := 0
	for done < len(dat) {
		n, err := bf.readBlock(dat[done:], off+A(done))
		done += n
		if err != nil {
			return done, err
		}
		if n == 0 {
			return done, io.EOF
		}
	}
	return done, nil
}

func (bf *bufferedFile[A]) readBlock(dat []byte, off A) (int, error) {
	offsetWithinBlock := off % bf.blockSize
	block := bf.acquireBlock(off - offsetWithinBlock)
	if offsetWithinBlock >= A(len(block.Dat)) {
		return 0, block.Err
	}
	n := copy(dat, block.Dat[offsetWithinBlock:])
	if n < len(dat) {
		return n, block.Err
	}
	return n, nil
}

func (bf *bufferedFile[A]) WriteAt(dat []byte, off A) (int, error) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	done := 0
	for done < len(dat) {
		n, err := bf.writeBlock(dat[done:], off+A(done))
		done += n
		if err != nil {
			return done, err
		}
		if n == 0 {
			return done, io.ErrShortWrite
		}
	}
	return done, nil
}

func (bf *bufferedFile[A]) writeBlock(dat []byte, off A) (int, error) {
	offsetWithinBlock := off % bf.blockSize
	block := bf.acquireBlock(off - offsetWithinBlock)
	end := min(offsetWithinBlock+A(len(dat)), bf.blockSize)
	if grow := end - A(len(block.Dat)); grow > 0 {
		// The gap between the old end of the block and the
		// write is zero-filled; the pool hands back dirty
		// buffers.
		old := A(len(block.Dat))
		block.Dat = block.Dat[:end]
		for i := old; i < end; i++ {
			block.Dat[i] = 0
		}
	}
	n := copy(block.Dat[offsetWithinBlock:], dat)
	block.Dirty = true
	return n, nil
}

// acquireBlock returns the cached block containing blockAddr,
// reading it from the inner File on a cache miss (and possibly
// evicting, and therefore flushing, another block to make room).
func (bf *bufferedFile[A]) acquireBlock(blockAddr A) *bufferedBlock[A] {
	if cached, ok := bf.blocks.Get(blockAddr); ok {
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		return cached.(*bufferedBlock[A])
	}
	block := &bufferedBlock[A]{
		Addr: blockAddr,
		Dat:  bf.pool.Get(int(bf.blockSize)),
	}
	n, err := bf.inner.ReadAt(block.Dat[:bf.blockSize], blockAddr)
	block.Dat = block.Dat[:n]
	block.Err = err
	bf.blocks.Add(blockAddr, block)
	return block
}

func (bf *bufferedFile[A]) flushBlock(block *bufferedBlock[A]) error {
	if !block.Dirty {
		return nil
	}
	if err := WriteFullAt[A](bf.inner, block.Dat, block.Addr); err != nil {
		return err
	}
	block.Dirty = false
	return nil
}

// evict is the cache's eviction callback; it runs with bf.mu already
// held (all cache operations happen under bf.mu).
func (bf *bufferedFile[A]) evict(_, value interface{}) {
	//nolint:forcetypeassert // Typed wrapper around untyped lib.
	block := value.(*bufferedBlock[A])
	if err := bf.flushBlock(block); err != nil {
		dlog.Errorf(bf.ctx, "i/o error: write: %v", err)
		if bf.flushErr == nil {
			bf.flushErr = err
		}
	}
	bf.pool.Put(block.Dat[:cap(block.Dat)])
}
