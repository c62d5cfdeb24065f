package httpcore

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"syscall"

	"braces.dev/errtrace"
	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
)

// Error is a classified failure.
//
// Exactly one [Category] is set; the remaining fields are filled when they apply.
// An Error is an immutable snapshot: the call stack and the source location are
// captured when it is created.
type Error struct {
	// Category is the most specific class of the failure.
	Category Category
	// Message is a free-text diagnostic, for example the reason a header is invalid.
	Message string
	// Errno is the native error code, zero if the failure has none.
	Errno syscall.Errno
	// LookupCode is the name resolution error code, zero if the failure has none.
	LookupCode int
	// API is the name of the failed platform call.
	API string
	// Status and Location describe the target of an [ErrRedirect].
	Status   Status
	Location *url.URL
	// Response is a snapshot of the response rejected with [ErrInvalidResponse].
	Response *Response
	// Source is the location where the error was created.
	Source Source

	cause error
	stack pkgerrors.StackTrace
}

func newError(c Category, msg string, cause error) *Error {
	e := &Error{Category: c, Message: msg, cause: cause}
	e.stack, e.Source = captureStack()
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteString(e.Category.String())
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Status != 0 {
		sb.WriteString(": ")
		sb.WriteString(e.Status.String())
	}
	if e.Location != nil {
		sb.WriteString(" -> ")
		sb.WriteString(e.Location.String())
	}
	if e.API != "" {
		sb.WriteString(": ")
		sb.WriteString(e.API)
	}
	if e.Errno != 0 {
		fmt.Fprintf(&sb, ": %s (errno %d)", e.Errno.Error(), uintptr(e.Errno))
	}
	if e.LookupCode != 0 {
		sb.WriteString(": lookup code ")
		sb.WriteString(strconv.Itoa(e.LookupCode))
	}
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether the error falls within the target [Category]
// or carries the target native error code.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	switch t := target.(type) {
	case Category:
		return e.Category.Within(t)
	case syscall.Errno:
		return e.Errno != 0 && e.Errno == t
	default:
		return false
	}
}

// StackTrace returns the call stack captured when the error was created.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e == nil {
		return nil
	}
	return e.stack
}

// Format implements [fmt.Formatter]. The "%+v" verb prints the error followed by
// the captured call stack.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		io.WriteString(f, e.Error()) //nolint:errcheck
		if f.Flag('+') && e != nil {
			fmt.Fprintf(f, "%+v", e.stack)
		}
	case 's':
		io.WriteString(f, e.Error()) //nolint:errcheck
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, e.Error())
	}
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 10)
	attrs = append(attrs, slog.String("category", e.Category.String()))
	if e.Message != "" {
		attrs = append(attrs, slog.String("message", e.Message))
	}
	if e.Errno != 0 {
		attrs = append(attrs, slog.Uint64("errno", uint64(e.Errno)))
	}
	if e.LookupCode != 0 {
		attrs = append(attrs, slog.Int("lookup_code", e.LookupCode))
	}
	if e.API != "" {
		attrs = append(attrs, slog.String("api", e.API))
	}
	if e.Status != 0 {
		attrs = append(attrs, slog.Int("status", int(e.Status)))
	}
	if e.Location != nil {
		attrs = append(attrs, slog.String("location", e.Location.String()))
	}
	if e.Response != nil {
		attrs = append(attrs, slog.Any("response", e.Response))
	}
	if !e.Source.IsZero() {
		attrs = append(attrs, slog.String("source", e.Source.String()))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorJSON struct {
	Category   string `json:"category"`
	Message    string `json:"message,omitempty"`
	Errno      uint64 `json:"errno,omitempty"`
	LookupCode int    `json:"lookup_code,omitempty"`
	API        string `json:"api,omitempty"`
	Status     Status `json:"status,omitempty"`
	Location   string `json:"location,omitempty"`
	Response   string `json:"response,omitempty"`
	Source     Source `json:"source"`
	Cause      string `json:"cause,omitempty"`
}

// MarshalJSON encodes the error as a JSON object suitable for structured error reports.
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	v := errorJSON{
		Category:   e.Category.String(),
		Message:    e.Message,
		Errno:      uint64(e.Errno),
		LookupCode: e.LookupCode,
		API:        e.API,
		Status:     e.Status,
		Source:     e.Source,
	}
	if e.Location != nil {
		v.Location = e.Location.String()
	}
	if e.Response != nil {
		v.Response = e.Response.String()
	}
	if e.cause != nil {
		v.Cause = e.cause.Error()
	}
	return errtrace.Wrap2(json.Marshal(v))
}
