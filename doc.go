// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscbuf provides a single-producer single-consumer variable-sized
// message queue over a fixed, contiguous, cache-line-aligned memory region.
//
// The region is shaped so it can live in shared memory: one producer and one
// consumer, on the same machine but possibly in different processes, exchange
// byte-string messages without locks and without copying on the consumer
// side. The package itself never allocates or maps memory; callers supply a
// Provider (see the memprovider package) that hands back an aligned region,
// and spscbuf turns that region into a lock-free ring.
//
// # Quick Start
//
//	q, storage, err := spscbuf.New(1 << 16).WithProvider(memprovider.Heap{}).Build()
//
//	// Producer goroutine
//	ok, err := q.Enqueue([]byte("hello"))
//
//	// Consumer goroutine
//	view := q.DequeueBegin()
//	if !view.Empty() {
//	    process(view.Bytes())
//	    q.DequeueCommit(view)
//	}
//
// # Attaching from a second process
//
// A second process mapping the same bytes (via its own Provider, typically
// memprovider.POSIXShared) attaches instead of initialising:
//
//	q, storage, err := spscbuf.New(size).WithProvider(memprovider.POSIXShared{Name: "queue"}).Attach().Build()
//
// Attach verifies the on-memory header (magic, ABI version) before trusting
// the region; a region that was not produced by OpenFresh fails with
// ErrBadMagic.
//
// # Wire format
//
// The region is a 256-byte header followed by a ring buffer. Each message in
// the ring is a frame: an 8-byte host-endian size followed by that many
// payload bytes, padded to the next multiple of 8. A frame with size zero is
// a wrap sentinel telling the consumer to continue reading from offset zero.
// See Storage for the full byte layout.
//
// # Concurrency contract
//
// Exactly one goroutine (or OS thread, or process) may call Queue.Enqueue;
// exactly one may call Queue.DequeueBegin, Queue.DequeueCommit and
// Queue.CanDequeue. Calling either half of the pair from more than one
// goroutine at a time is undefined behavior — spscbuf does not detect it in
// release builds. Building with the spscbufdebug tag enables a best-effort
// ownership check (see Queue.BindProducer, Queue.BindConsumer).
//
// No operation in this package blocks. Queue.Enqueue returns false when the
// ring is full; Queue.DequeueBegin returns an empty MessageView when the
// ring is empty. Callers that want to wait build their own retry loop,
// typically with code.hybscloud.com/spin's Wait or code.hybscloud.com/iox's
// Backoff.
//
// # Non-goals
//
// This package does not support multiple producers or multiple consumers,
// dynamic resizing, message priorities, or persistence of in-flight
// messages across process restarts. It does not allocate or map memory
// itself; see the memprovider package for that.
package spscbuf
