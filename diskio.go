// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package diskio implements utilities for reading and writing data at
// explicit byte offsets within a file- or block-device-like object,
// independently of any cursor that the object may also have.
//
// Capabilities come in two families: exclusive-access (ReaderAt,
// WriterAt; the caller must serialize calls) and shared-access
// (SharedReaderAt, SharedWriterAt; safe to call concurrently, each
// call observes a consistent view).  A shared-access handle may
// always be used where an exclusive-access handle is wanted; deriving
// a shared-access handle from an exclusive-access one requires a
// guard (NewMutexFile and friends).
//
// For *os.File-like media the positional calls forward to the
// platform's positional-I/O syscalls (OSFile, FDFile); for media that
// only have a cursor there is a seek-then-read adapter (NewSeekFile).
package diskio

// assertAddr is an address type for compile-time interface
// assertions.
type assertAddr int64
