// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build spscbufdebug

package spscbuf

import "errors"

// errAlreadyBound is returned when a second goroutine tries to bind the
// same role. It is deliberately not a *Error: this is a debug-only
// development aid, not part of the stable error-kind surface in errors.go.
var errAlreadyBound = errors.New("spscbuf: role already bound to another caller")

// bind claims the token exactly once. The intent is only to catch "two
// callers touched this role" bugs during development, not to provide any
// correctness guarantee: nothing re-checks the binding on later calls.
func (t *ownershipToken) bind() error {
	if t.bound.CompareAndSwapAcqRel(0, 1) {
		return nil
	}
	return errAlreadyBound
}
