// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

import "code.hybscloud.com/atomix"

// ownershipToken backs the debug-only SPSC ownership check. It costs one
// CAS the first time each side binds and nothing thereafter; in release
// builds (see ownership_release.go) binding is a no-op.
type ownershipToken struct {
	bound atomix.Int64
}

// BindProducer claims the producer role for the lifetime of q. Only
// enforced when the module is built with the spscbufdebug tag; see
// ownership_debug.go and ownership_release.go.
func (q *Queue) BindProducer() error { return q.producerBound.bind() }

// BindConsumer claims the consumer role for the lifetime of q. Only
// enforced when the module is built with the spscbufdebug tag; see
// ownership_debug.go and ownership_release.go.
func (q *Queue) BindConsumer() error { return q.consumerBound.bind() }
