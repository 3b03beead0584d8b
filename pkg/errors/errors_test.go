package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "config.Load",
		Kind: KindConfig,
		Err:  stderrors.New("boom"),
	}
	want := "config.Load [config]: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithView(t *testing.T) {
	err := &Error{
		Op:     "events.Activate",
		Kind:   KindDispatch,
		ViewID: "submit",
		Err:    stderrors.New("no handler"),
	}
	if got := err.Error(); !strings.Contains(got, "view=submit") {
		t.Errorf("error string %q should contain view id", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	base := stderrors.New("base")
	err := &Error{Op: "op", Err: base}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should see the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParsing, "parsing"},
		{KindDispatch, "dispatch"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic"}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "events.Activate"
	if got, want := err.Error(), "panic in events.Activate: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	base := stderrors.New("inner")
	if !stderrors.Is(&PanicError{Value: base}, base) {
		t.Error("panic carrying an error should unwrap to it")
	}
	if (&PanicError{Value: 42}).Unwrap() != nil {
		t.Error("non-error panic values should not unwrap")
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{onError: func(err *Error) { captured = err }}

	oldHandler := CurrentHandler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{Op: "test.op", Kind: KindParsing, Err: stderrors.New("bad")})
	Report(nil)

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := CurrentHandler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := CurrentHandler()
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got *PanicError
	func() {
		defer RecoverWithCallback("test.callback", func(err *PanicError) { got = err })
		panic(7)
	}()
	if got == nil || got.Value != 7 {
		t.Errorf("callback got %v", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := CurrentHandler()
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := CurrentHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", CurrentHandler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Writer: &buf}

	h.HandleError(&Error{Op: "config.Load", Kind: KindConfig, ViewID: "x", Err: stderrors.New("boom"), Timestamp: time.Now()})
	out := buf.String()
	for _, want := range []string{`"op":"config.Load"`, `"kind":"config"`, `"view":"x"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %s", out, want)
		}
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "events.Activate", Value: "oops", StackTrace: "frames"})
	if !strings.Contains(buf.String(), `"value":"oops"`) {
		t.Errorf("panic log %q missing value", buf.String())
	}
	if strings.Contains(buf.String(), "frames") {
		t.Error("stack trace should only be logged when verbose")
	}

	h.HandleError(nil)
	h.HandlePanic(nil)
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
