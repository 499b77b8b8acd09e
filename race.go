// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spscbuf

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent producer/consumer tests, which trigger
// false positives: the race detector cannot see the happens-before edge
// established by the write_ix/read_ix acquire-release pair.
const RaceEnabled = true
