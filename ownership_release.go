// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !spscbufdebug

package spscbuf

// bind is a no-op in release builds; the ownership check exists only to
// help catch SPSC-violation bugs during development.
func (t *ownershipToken) bind() error { return nil }
