package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var current atomic.Pointer[Handler]

func init() {
	SetHandler(nil)
}

// SetHandler installs the process-wide handler. A nil h restores a
// LogHandler writing compact JSON to stderr.
func SetHandler(h Handler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&h)
}

// CurrentHandler returns the installed handler.
func CurrentHandler() Handler {
	return *current.Load()
}

// Report stamps err if needed and passes it to the installed handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err if needed and passes it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it. Call it deferred:
//
//	defer errors.Recover("events.Activate")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, r))
	}
}

// RecoverWithCallback is Recover that also hands the reported panic to
// callback, so the caller can turn it into a return value.
func RecoverWithCallback(op string, callback func(err *PanicError)) {
	if r := recover(); r != nil {
		perr := newPanic(op, r)
		ReportPanic(perr)
		if callback != nil {
			callback(perr)
		}
	}
}

func newPanic(op string, value any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame. Frames inside the runtime (panic machinery) are left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") && !strings.HasSuffix(frame.Function, "errors.CaptureStack") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
