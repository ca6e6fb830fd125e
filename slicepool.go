// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio

import (
	"git.lukeshu.com/go/typedsync"
)

// slicePool recycles the block buffers that bufferedFile churns
// through.
type slicePool[T any] struct {
	inner typedsync.Pool[[]T]
}

func (p *slicePool[T]) Get(size int) []T {
	if size == 0 {
		return nil
	}
	ret, ok := p.inner.Get()
	if ok && cap(ret) >= size {
		ret = ret[:size]
	} else {
		ret = make([]T, size)
	}
	return ret
}

func (p *slicePool[T]) Put(slice []T) {
	if slice == nil {
		return
	}
	p.inner.Put(slice)
}
