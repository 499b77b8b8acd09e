// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

import "unsafe"

// MessageView is a zero-copy, borrowed view of one frame's payload,
// returned by Queue.DequeueBegin. The bytes it exposes remain valid, and
// untouched by the producer, until the matching Queue.DequeueCommit;
// calling Bytes after Commit observes undefined memory.
//
// The zero value of MessageView is the empty view: Size()==0, Empty()==true.
type MessageView struct {
	size    uint64
	index   uint64
	storage *Storage
}

// Empty reports whether the view represents "queue was empty at
// observation" rather than a real frame.
func (v MessageView) Empty() bool { return v.storage == nil }

// Size returns the payload length in bytes. Zero iff the view is empty.
func (v MessageView) Size() uint64 { return v.size }

// Index returns the byte offset within the ring buffer at which this
// frame's header begins. Useful for diagnostics; callers should not need
// it for correct use of the API.
func (v MessageView) Index() uint64 { return v.index }

// Bytes returns the payload as a slice backed directly by the ring buffer.
// It is nil for an empty view. The slice must not be retained past the
// matching DequeueCommit, and must not be written to: the producer may
// reuse that memory the instant Commit runs.
func (v MessageView) Bytes() []byte {
	if v.Empty() {
		return nil
	}
	return unsafe.Slice((*byte)(v.storage.byteAt(v.index+8)), v.size)
}
