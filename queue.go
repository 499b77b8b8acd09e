// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

import "unsafe"

// Queue is a thin, stateless binding to one Storage that implements the
// SPSC ring protocol. All mutable state lives in the Storage's shared
// cells; Queue only caches derived constants computed once from the
// buffer size.
//
// Exactly one goroutine may call Enqueue; exactly one (possibly different)
// goroutine may call DequeueBegin, DequeueCommit, and CanDequeue. Violating
// this yields undefined queue state; Queue does nothing to detect it in
// release builds (see BindProducer/BindConsumer for a debug-only check).
type Queue struct {
	storage        *Storage
	bufferSize     uint64
	maxMessageSize uint64
	maxPayloadSize uint64
	producerBound  ownershipToken
	consumerBound  ownershipToken
}

// NewQueue binds a Queue to storage and caches its derived constants.
// storage must outlive the returned Queue.
func NewQueue(storage *Storage) *Queue {
	b := storage.BufferSize()
	maxMsg := b / 2
	return &Queue{
		storage:        storage,
		bufferSize:     b,
		maxMessageSize: maxMsg,
		maxPayloadSize: maxMsg - 8,
	}
}

// BufferSize returns B, the size of the ring payload area in bytes.
func (q *Queue) BufferSize() uint64 { return q.bufferSize }

// MaxMessageSize returns the largest frame size (header + payload) that can
// ever be written: floor(B/2). A single frame can never fill the entire
// buffer, or a full ring would become indistinguishable from an empty one.
func (q *Queue) MaxMessageSize() uint64 { return q.maxMessageSize }

// MaxPayloadSize returns the largest payload Enqueue will accept:
// MaxMessageSize - 8.
func (q *Queue) MaxPayloadSize() uint64 { return q.maxPayloadSize }

// nextIndex rounds current+span up to the next multiple of 8, keeping both
// ring indices 8-byte aligned at all times.
func nextIndex(current, span uint64) uint64 {
	return (current + span + 7) &^ 7
}

// Enqueue writes payload as a new frame and advances write_ix. It returns
// (true, nil) on success, (false, nil) if the ring has no room right now,
// and (false, err) if payload violates a precondition (empty or larger
// than MaxPayloadSize). Enqueue never blocks, never retries internally, and
// makes no observable change to the ring when it returns false or an
// error. Producer-only.
func (q *Queue) Enqueue(payload []byte) (bool, error) {
	n := uint64(len(payload))
	if n == 0 {
		return false, ErrMessageEmpty
	}
	if n > q.maxPayloadSize {
		return false, ErrMessageTooLarge
	}

	s := q.storage
	read := s.readIxCell().LoadAcquire()
	write := s.writeIxCell().LoadRelaxed()
	total := 8 + n
	nextW := nextIndex(write, total)
	buf := q.bufferSize

	if nextW < buf {
		// Case A: frame fits without crossing the end of the buffer.
		if write < read && nextW >= read {
			return false, nil
		}
		copy(unsafe.Slice((*byte)(s.byteAt(write+8)), n), payload)
		*(*uint64)(s.byteAt(write)) = n
		s.writeIxCell().StoreRelease(nextW)
	} else {
		// Case B: frame would cross the end; wrap to offset 0. With
		// write < read the producer has already wrapped once and
		// [0, write) still holds unread frames, so there is no room.
		if write < read {
			return false, nil
		}
		nextW = nextIndex(0, total)
		if nextW >= read {
			return false, nil
		}
		copy(unsafe.Slice((*byte)(s.byteAt(8)), n), payload)
		*(*uint64)(s.byteAt(0)) = n
		// The sentinel publishes last: any consumer observing it must
		// also observe the valid frame already written at offset 0.
		*(*uint64)(s.byteAt(write)) = 0
		s.writeIxCell().StoreRelease(nextW)
	}

	s.msgCountCell().AddAcqRel(1)
	return true, nil
}

// DequeueBegin returns a zero-copy view of the next frame, or an empty view
// if the ring is currently empty. The view remains valid, and the memory it
// points into remains untouched by the producer, until the matching
// DequeueCommit. Consumer-only, never blocks.
func (q *Queue) DequeueBegin() MessageView {
	s := q.storage
	for {
		read := s.readIxCell().LoadRelaxed()
		write := s.writeIxCell().LoadAcquire()
		if read == write {
			return MessageView{}
		}

		size := *(*uint64)(s.byteAt(read))
		if size == 0 {
			// Wrap sentinel: the producer's release of write_ix
			// synchronizes-with this acquire load, so the frame at
			// offset 0 is guaranteed visible on the next iteration.
			s.readIxCell().StoreRelease(0)
			continue
		}

		return MessageView{
			size:    size,
			index:   read,
			storage: s,
		}
	}
}

// DequeueCommit advances read_ix past view and decrements the advisory
// message count. After DequeueCommit, view.Bytes() must not be accessed.
// Consumer-only; always succeeds on a view returned by DequeueBegin.
func (q *Queue) DequeueCommit(view MessageView) {
	if view.Empty() {
		return
	}
	s := q.storage
	next := nextIndex(view.index, view.size+8)
	s.readIxCell().StoreRelease(next)
	s.msgCountCell().AddAcqRel(^uint64(0))
}

// IsEmpty reports whether the ring is empty at the moment of the call. It
// is a best-effort snapshot: on an SPSC queue with an active peer, the
// result may already be stale by the time the caller observes it.
func (q *Queue) IsEmpty() bool {
	s := q.storage
	read := s.readIxCell().LoadAcquire()
	write := s.writeIxCell().LoadAcquire()
	return read == write
}

// CanDequeue reports whether DequeueBegin would currently return a
// non-empty view. Consumer-only (it loads read_ix with relaxed ordering,
// which is only safe for the thread that owns read_ix).
func (q *Queue) CanDequeue() bool {
	s := q.storage
	read := s.readIxCell().LoadRelaxed()
	write := s.writeIxCell().LoadAcquire()
	return read != write
}

// Length returns the advisory in-flight message count. From the producer it
// is an upper bound (the consumer may have committed more by the time the
// caller observes it); from the consumer it is a lower bound (the producer
// may have enqueued more). It is not a linearizable count: the producer
// increments it only after publishing a frame, so a consumer that commits
// that frame first briefly drives it below zero, which reads as a very
// large uint64 until the producer's increment lands.
func (q *Queue) Length() uint64 {
	return q.storage.msgCountCell().LoadAcquire()
}
