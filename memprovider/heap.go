// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memprovider

import (
	"errors"
	"runtime"
	"unsafe"
)

const cacheLine = 64

// Heap acquires a region on the Go heap, over-allocated and interior-offset
// so the returned pointer is 64-byte aligned. It implements spscbuf.Provider
// for the common case of a producer and consumer sharing one process.
type Heap struct{}

// Acquire returns a size-byte region aligned to a 64-byte boundary. The
// underlying allocation is kept alive by the closure captured in release;
// release itself only needs to pin it past the point the caller is done,
// via runtime.KeepAlive, since the garbage collector otherwise has no way
// to know unsafe.Pointer arithmetic elsewhere still references raw.
func (Heap) Acquire(size uint64) (unsafe.Pointer, func(), error) {
	if size == 0 {
		return nil, nil, errors.New("memprovider: size must be > 0")
	}
	raw := make([]byte, size+cacheLine)
	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + cacheLine - 1) &^ (cacheLine - 1)
	ptr := unsafe.Pointer(uintptr(unsafe.Pointer(&raw[0])) + (aligned - base))
	release := func() { runtime.KeepAlive(raw) }
	return ptr, release, nil
}
