// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

import "unsafe"

// Provider is the memory-provider contract: an external collaborator that
// hands the core a 64-byte-aligned writable region of the requested size,
// and accepts a release hook to be invoked exactly once when the region is
// no longer needed. Aligned heap allocation and POSIX shared-memory mapping
// are deliberately out of scope for this package; see the memprovider
// package for concrete implementations of Provider.
type Provider interface {
	// Acquire returns a region of at least size bytes whose base address
	// is 64-byte aligned, plus a release function to call exactly once
	// when the region should be freed or unmapped. release may be nil if
	// nothing needs to run.
	Acquire(size uint64) (ptr unsafe.Pointer, release func(), err error)
}

// Open acquires size bytes from p and initialises a fresh header over them.
// Convenience wrapper around Provider.Acquire and OpenFresh.
func Open(p Provider, size uint64) (*Storage, error) {
	ptr, release, err := p.Acquire(size)
	if err != nil {
		return nil, err
	}
	s, err := OpenFresh(ptr, size, release)
	if err != nil && release != nil {
		release()
	}
	return s, err
}

// OpenAttach acquires size bytes from p and attaches to the header already
// present in them. Convenience wrapper around Provider.Acquire and Attach.
func OpenAttach(p Provider, size uint64) (*Storage, error) {
	ptr, release, err := p.Acquire(size)
	if err != nil {
		return nil, err
	}
	s, err := Attach(ptr, release)
	if err != nil && release != nil {
		release()
	}
	return s, err
}
