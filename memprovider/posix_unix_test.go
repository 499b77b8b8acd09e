// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package memprovider_test

import (
	"fmt"
	"os"
	"testing"
	"unsafe"

	"code.hybscloud.com/spscbuf/memprovider"
)

func TestPOSIXSharedCreateThenAttach(t *testing.T) {
	name := fmt.Sprintf("spscbuf-test-%d", os.Getpid())
	t.Cleanup(func() { memprovider.Unlink(name) })

	const size = 4096
	creator := memprovider.POSIXShared{Name: name, Create: true}
	ptr, release, err := creator.Acquire(size)
	if err != nil {
		t.Fatalf("Acquire(create): %v", err)
	}

	view := unsafe.Slice((*byte)(ptr), size)
	view[0] = 0xAB
	view[size-1] = 0xCD
	release()

	attacher := memprovider.POSIXShared{Name: name}
	ptr2, release2, err := attacher.Acquire(size)
	if err != nil {
		t.Fatalf("Acquire(attach): %v", err)
	}
	defer release2()

	view2 := unsafe.Slice((*byte)(ptr2), size)
	if view2[0] != 0xAB || view2[size-1] != 0xCD {
		t.Fatalf("attached view = [%x ... %x], want [ab ... cd]", view2[0], view2[size-1])
	}
}

func TestPOSIXSharedAttachWithoutCreateFails(t *testing.T) {
	name := fmt.Sprintf("spscbuf-test-missing-%d", os.Getpid())
	_, _, err := memprovider.POSIXShared{Name: name}.Acquire(1024)
	if err == nil {
		t.Fatal("Acquire(attach, no creator) succeeded, want an error")
	}
}
