// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memprovider_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/spscbuf/memprovider"
)

func TestHeapAcquireIsCacheLineAligned(t *testing.T) {
	ptr, release, err := memprovider.Heap{}.Acquire(4096)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	if uintptr(ptr)%64 != 0 {
		t.Fatalf("Acquire returned unaligned pointer %p", ptr)
	}
}

func TestHeapAcquireRejectsZeroSize(t *testing.T) {
	if _, _, err := (memprovider.Heap{}).Acquire(0); err == nil {
		t.Fatal("Acquire(0) succeeded, want an error")
	}
}

func TestHeapAcquireRegionIsWritable(t *testing.T) {
	const size = 1024
	ptr, release, err := memprovider.Heap{}.Acquire(size)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	view := unsafe.Slice((*byte)(ptr), size)
	for i := range view {
		view[i] = byte(i)
	}
	for i := range view {
		if view[i] != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, view[i], byte(i))
		}
	}
}
