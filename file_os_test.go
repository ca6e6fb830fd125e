// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package diskio_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/diskio"
)

func createOSFile(t *testing.T, size int64) *diskio.OSFile[int64] {
	t.Helper()
	fh, err := os.Create(filepath.Join(t.TempDir(), "blob.img"))
	require.NoError(t, err)
	require.NoError(t, fh.Truncate(size))
	file := &diskio.OSFile[int64]{File: fh}
	t.Cleanup(func() { assert.NoError(t, file.Close()) })
	return file
}

func TestOSFile(t *testing.T) {
	t.Parallel()
	file := createOSFile(t, 100)

	assert.Equal(t, int64(100), file.Size())

	require.NoError(t, diskio.WriteFullAt[int64](file, []byte("hello"), 50))

	buf := make([]byte, 5)
	require.NoError(t, diskio.ReadFullAt[int64](file, buf, 50))
	assert.Equal(t, []byte("hello"), buf)

	require.NoError(t, diskio.ReadFullAt[int64](file, buf, 0))
	assert.Equal(t, make([]byte, 5), buf)

	// at and past the end of the file
	for _, off := range []int64{100, 150} {
		n, err := file.ReadAt(buf, off)
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, io.EOF)
	}
}

// Positional reads must not move the file's own cursor.
func TestOSFileCursor(t *testing.T) {
	t.Parallel()
	file := createOSFile(t, 0)

	content := make([]byte, 64)
	for i := range content {
		content[i] = byte(i)
	}
	require.NoError(t, diskio.WriteFullAt[int64](file, content, 0))

	head := make([]byte, 3)
	_, err := io.ReadFull(file.File, head)
	require.NoError(t, err)
	assert.Equal(t, content[0:3], head)

	buf := make([]byte, 8)
	require.NoError(t, diskio.ReadFullAt[int64](file, buf, 50))
	assert.Equal(t, content[50:58], buf)

	// the cursor-based read picks up where it left off, not at 50
	next := make([]byte, 3)
	_, err = io.ReadFull(file.File, next)
	require.NoError(t, err)
	assert.Equal(t, content[3:6], next)
}
