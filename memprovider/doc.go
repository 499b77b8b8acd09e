// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memprovider supplies concrete spscbuf.Provider implementations.
//
// spscbuf's core algorithm deliberately knows nothing about where its
// bytes come from; a Provider hands it a 64-byte-aligned region and a
// release hook. This package has two:
//
//   - Heap: a process-local aligned allocation, for producer and consumer
//     running as goroutines in the same process.
//   - POSIXShared: a POSIX shared memory mapping under /dev/shm, for a
//     producer and consumer running as separate processes.
package memprovider
