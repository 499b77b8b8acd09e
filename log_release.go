// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !spscbufdebug

package spscbuf

import "log/slog"

// SetDebugLogger is a no-op in release builds; the signature is kept so
// caller code compiles unchanged regardless of build tag.
func SetDebugLogger(l *slog.Logger) {}

// logDebugf is a no-op in release builds. The compiler inlines it away.
func logDebugf(format string, args ...any) {}
