// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

import (
	"runtime"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Layout constants for ABI version 1. These offsets are part of the wire
// format (see the package doc) and must never change; a layout change bumps
// AbiVersion and is a new, incompatible format.
const (
	// Magic is the constant stamped into a fresh region's magic field.
	Magic uint32 = 0x53505343 // "SPSC"
	// AbiVersion is the on-memory layout version this package implements.
	AbiVersion uint32 = 1

	offMagic       = 0
	offAbiVersion  = 4
	offStorageSize = 8
	offReadIx      = 64
	offWriteIx     = 128
	offMsgCount    = 192

	// HeaderSize is the size in bytes of the fixed header preceding the
	// ring buffer.
	HeaderSize = 256

	cacheLine = 64
	// minFrame is the smallest frame that can ever be written: an 8-byte
	// size header plus a 1-byte payload, padded to the next multiple of 8.
	minFrame = 16
)

// Storage owns a single contiguous byte region: a fixed header (magic, ABI
// version, total size, three cache-line-isolated atomic index cells) plus a
// ring buffer. Storage never allocates or frees the region itself; it is
// handed a pointer by a caller-chosen Provider (see the memprovider
// package) and invokes a release hook exactly once when Close runs.
//
// Storage is not safe for concurrent use by more than the two roles
// documented on Queue: the producer touches write_ix, the consumer touches
// read_ix, and both touch msg_count with atomic read-modify-write.
type Storage struct {
	base    unsafe.Pointer
	size    uint64
	release func()
	closed  bool
}

// OpenFresh initialises a new header over region and zeroes the three index
// cells. region must be non-nil and 64-byte aligned; size must be greater
// than HeaderSize and size-HeaderSize must be a multiple of 8 and at least
// large enough to hold one minimum-size frame. release is invoked exactly
// once, by Close, and may be nil.
func OpenFresh(region unsafe.Pointer, size uint64, release func()) (*Storage, error) {
	if region == nil {
		return nil, ErrNullPointer
	}
	if uintptr(region)%cacheLine != 0 {
		return nil, ErrMisalignedRegion
	}
	if size <= HeaderSize {
		return nil, ErrRegionTooSmall
	}
	buf := size - HeaderSize
	if buf%8 != 0 {
		return nil, ErrBufferNotMultipleOfEight
	}
	if buf < minFrame {
		return nil, ErrRegionTooSmall
	}

	s := &Storage{base: region, size: size, release: release}
	*s.magicPtr() = Magic
	*s.abiVersionPtr() = AbiVersion
	*s.storageSizePtr() = size
	s.readIxCell().StoreRelease(0)
	s.writeIxCell().StoreRelease(0)
	s.msgCountCell().StoreRelease(0)

	logDebugf("spscbuf: opened fresh storage size=%d buffer=%d", size, buf)
	runtime.SetFinalizer(s, (*Storage).finalize)
	return s, nil
}

// Attach binds to an already-initialised region, verifying the header
// before trusting anything else in it. It never touches read_ix, write_ix,
// or msg_count. region must be non-nil and 64-byte aligned; release is
// invoked exactly once, by Close, and may be nil.
func Attach(region unsafe.Pointer, release func()) (*Storage, error) {
	if region == nil {
		return nil, ErrNullPointer
	}
	if uintptr(region)%cacheLine != 0 {
		return nil, ErrMisalignedRegion
	}

	s := &Storage{base: region, release: release}
	size := *s.storageSizePtr()
	s.size = size

	if *s.magicPtr() != Magic {
		return nil, ErrBadMagic
	}
	if *s.abiVersionPtr() != AbiVersion {
		return nil, ErrAbiMismatch
	}
	if size <= HeaderSize {
		return nil, ErrRegionTooSmall
	}
	if (size-HeaderSize)%8 != 0 {
		return nil, ErrBufferNotMultipleOfEight
	}

	logDebugf("spscbuf: attached storage size=%d buffer=%d", size, size-HeaderSize)
	runtime.SetFinalizer(s, (*Storage).finalize)
	return s, nil
}

// Close invokes the release hook exactly once and marks the storage closed.
// The header is never read after Close. Close is idempotent: calling it a
// second time is a no-op.
func (s *Storage) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	runtime.SetFinalizer(s, nil)
	if s.release != nil {
		s.release()
	}
	logDebugf("spscbuf: closed storage size=%d", s.size)
	return nil
}

// finalize is the safety net invoked by the garbage collector if Close was
// never called. It runs the release hook so the underlying region is not
// leaked, and logs (debug builds only) because reaching this path means a
// caller forgot to Close explicitly.
func (s *Storage) finalize() {
	if s.closed {
		return
	}
	logDebugf("spscbuf: storage finalized without Close, size=%d", s.size)
	s.closed = true
	if s.release != nil {
		s.release()
	}
}

// StorageSize returns the total region size T, as stamped in the header.
func (s *Storage) StorageSize() uint64 { return s.size }

// BufferSize returns B = T - HeaderSize, the size of the ring payload area.
func (s *Storage) BufferSize() uint64 { return s.size - HeaderSize }

func (s *Storage) at(off uintptr) unsafe.Pointer {
	return unsafe.Add(s.base, off)
}

func (s *Storage) magicPtr() *uint32       { return (*uint32)(s.at(offMagic)) }
func (s *Storage) abiVersionPtr() *uint32  { return (*uint32)(s.at(offAbiVersion)) }
func (s *Storage) storageSizePtr() *uint64 { return (*uint64)(s.at(offStorageSize)) }

func (s *Storage) readIxCell() *atomix.Uint64   { return (*atomix.Uint64)(s.at(offReadIx)) }
func (s *Storage) writeIxCell() *atomix.Uint64  { return (*atomix.Uint64)(s.at(offWriteIx)) }
func (s *Storage) msgCountCell() *atomix.Uint64 { return (*atomix.Uint64)(s.at(offMsgCount)) }

// bufferPtr returns a pointer to the first byte of the ring payload area.
func (s *Storage) bufferPtr() unsafe.Pointer { return s.at(HeaderSize) }

// byteAt returns a pointer to a single byte at offset off within the ring
// buffer, wrapping is the caller's responsibility.
func (s *Storage) byteAt(off uint64) unsafe.Pointer {
	return unsafe.Add(s.bufferPtr(), off)
}
