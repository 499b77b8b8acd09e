// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package spscbuf_test

import (
	"math/rand"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"code.hybscloud.com/spscbuf"
)

// The race detector cannot see the happens-before edges the write_ix and
// read_ix release/acquire pairs establish on raw shared memory, so this
// test is skipped under -race; see race.go.
func TestProducerConsumerPreservesOrder(t *testing.T) {
	if spscbuf.RaceEnabled {
		t.Skip("race detector cannot see the write_ix/read_ix happens-before edge")
	}

	const messages = 1_000_000
	q := newQueue(t, 1<<16)

	if err := q.BindProducer(); err != nil {
		t.Fatalf("BindProducer: %v", err)
	}
	if err := q.BindConsumer(); err != nil {
		t.Fatalf("BindConsumer: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	sizes := make([]int, messages)
	for i := range sizes {
		sizes[i] = 1 + rng.Intn(64)
	}

	done := make(chan error, 1)
	go func() {
		for i, size := range sizes {
			payload := make([]byte, size)
			for j := range payload {
				payload[j] = byte(i + j)
			}
			sw := spin.Wait{}
			for {
				ok, err := q.Enqueue(payload)
				if err != nil {
					done <- err
					return
				}
				if ok {
					break
				}
				sw.Once()
			}
		}
		done <- nil
	}()

	var backoff iox.Backoff
	deadline := time.Now().Add(60 * time.Second)
	for i, size := range sizes {
		var view spscbuf.MessageView
		for {
			view = q.DequeueBegin()
			if !view.Empty() {
				break
			}
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for message %d", i)
			}
			backoff.Wait()
		}
		backoff.Reset()
		if int(view.Size()) != size {
			t.Fatalf("message %d: size = %d, want %d", i, view.Size(), size)
		}
		for j, b := range view.Bytes() {
			if b != byte(i+j) {
				t.Fatalf("message %d: byte %d = %d, want %d", i, j, b, byte(i+j))
			}
		}
		q.DequeueCommit(view)
	}

	if err := <-done; err != nil {
		t.Fatalf("producer: %v", err)
	}
	if !q.IsEmpty() {
		t.Fatal("queue not empty after full run")
	}
}
