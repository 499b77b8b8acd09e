// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build spscbufdebug

package spscbuf

import (
	"fmt"
	"log/slog"
	"os"
)

var debugLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetDebugLogger overrides the logger used by debug builds of this
// package. Has no effect, and is not even called, in a release build.
func SetDebugLogger(l *slog.Logger) { debugLogger = l }

// logDebugf logs a lifecycle event (Storage open/attach/close, finalizer
// firing). Never called from Enqueue/DequeueBegin/DequeueCommit hot paths.
func logDebugf(format string, args ...any) {
	debugLogger.Debug(fmt.Sprintf(format, args...))
}
