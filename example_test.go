// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf_test

import (
	"fmt"

	"code.hybscloud.com/spscbuf"
	"code.hybscloud.com/spscbuf/memprovider"
)

// Example demonstrates a queue built over a heap-backed region: open,
// enqueue a few messages, then drain them in order.
func Example() {
	q, storage, err := spscbuf.New(1 << 12).WithProvider(memprovider.Heap{}).Build()
	if err != nil {
		fmt.Println("build error:", err)
		return
	}
	defer storage.Close()

	for _, msg := range []string{"first", "second", "third"} {
		if ok, err := q.Enqueue([]byte(msg)); err != nil || !ok {
			fmt.Println("enqueue failed:", err)
			return
		}
	}

	for q.CanDequeue() {
		view := q.DequeueBegin()
		fmt.Println(string(view.Bytes()))
		q.DequeueCommit(view)
	}

	// Output:
	// first
	// second
	// third
}
