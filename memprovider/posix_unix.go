// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package memprovider

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"unsafe"
)

// POSIXShared maps a named region under /dev/shm (falling back to
// os.TempDir when /dev/shm is unavailable), for a producer and consumer
// running as separate processes. Name identifies the segment; both sides
// must use the same Name.
//
// The side that creates the queue sets Create; the attaching side leaves
// it false and opens the file the creator already sized.
type POSIXShared struct {
	Name   string
	Create bool
}

// Acquire creates or opens the backing file for p.Name and mmaps it. When
// Create is set the file is opened exclusively and truncated to size;
// otherwise the file must already exist and be at least size bytes.
func (p POSIXShared) Acquire(size uint64) (unsafe.Pointer, func(), error) {
	path := shmPath(p.Name)

	var file *os.File
	var err error
	if p.Create {
		file, err = os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("memprovider: create segment %s: %w", path, err)
		}
		if err := file.Truncate(int64(size)); err != nil {
			file.Close()
			os.Remove(path)
			return nil, nil, fmt.Errorf("memprovider: resize segment %s: %w", path, err)
		}
	} else {
		file, err = os.OpenFile(path, os.O_RDWR, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("memprovider: open segment %s: %w", path, err)
		}
		info, err := file.Stat()
		if err != nil {
			file.Close()
			return nil, nil, fmt.Errorf("memprovider: stat segment %s: %w", path, err)
		}
		if uint64(info.Size()) < size {
			file.Close()
			return nil, nil, fmt.Errorf("memprovider: segment %s is %d bytes, want at least %d", path, info.Size(), size)
		}
	}

	data, err := syscall.Mmap(int(file.Fd()), 0, int(size), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		file.Close()
		if p.Create {
			os.Remove(path)
		}
		return nil, nil, fmt.Errorf("memprovider: mmap segment %s: %w", path, err)
	}
	// The fd is no longer needed once mmap'd; the mapping keeps the pages
	// alive independently of the descriptor.
	file.Close()

	ptr := unsafe.Pointer(&data[0])
	release := func() {
		syscall.Munmap(data)
	}
	return ptr, release, nil
}

func shmPath(name string) string {
	base := "spscbuf_" + name
	if isDevShmAvailable() {
		return filepath.Join("/dev/shm", base)
	}
	return filepath.Join(os.TempDir(), base)
}

func isDevShmAvailable() bool {
	info, err := os.Stat("/dev/shm")
	return err == nil && info.IsDir()
}

// Unlink removes the backing file for name, once no process still needs
// to attach to it. Safe to call after every side has released its mapping.
func Unlink(name string) error {
	err := os.Remove(shmPath(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
