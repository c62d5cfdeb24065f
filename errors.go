package httpcore

import (
	"fmt"
	"net/url"
)

// NewError creates an error of the given category with an optional formatted message.
func NewError(c Category, format string, args ...any) *Error {
	return newError(c, sprintf(format, args...), nil)
}

// WrapError creates an error of the given category caused by err.
func WrapError(c Category, err error) *Error {
	return newError(c, "", err)
}

// NewIncompleteMessageHeaderError reports a message head truncated before its end.
func NewIncompleteMessageHeaderError(cause error) *Error {
	return newError(ErrIncompleteMessageHeader, "", cause)
}

// NewBadMessageHeaderError reports a message head that cannot be parsed.
func NewBadMessageHeaderError(cause error) *Error {
	return newError(ErrBadMessageHeader, "", cause)
}

// NewInvalidMessageHeaderError reports a message head that parses
// but is logically malformed.
func NewInvalidMessageHeaderError(format string, args ...any) *Error {
	return newError(ErrInvalidMessageHeader, sprintf(format, args...), nil)
}

// NewInvalidTransferEncodingError reports an unsupported or malformed Transfer-Encoding.
func NewInvalidTransferEncodingError(format string, args ...any) *Error {
	return newError(ErrInvalidTransferEncoding, sprintf(format, args...), nil)
}

// NewPriorRequestFailedError reports a request that could not be sent because
// an earlier request pipelined on the same connection failed.
func NewPriorRequestFailedError(cause error) *Error {
	return newError(ErrPriorRequestFailed, "", cause)
}

// NewConnectionVoluntarilyClosedError reports a request that was not sent because
// the peer announced it would close the connection.
func NewConnectionVoluntarilyClosedError() *Error {
	return newError(ErrConnectionVoluntarilyClosed, "", nil)
}

// NewRedirectError reports a redirect to location with the given status.
func NewRedirectError(status Status, location *url.URL) *Error {
	e := newError(ErrRedirect, "", nil)
	e.Status = status
	e.Location = cloneURL(location)
	return e
}

// NewInvalidResponseError reports a response that violates the protocol.
// The error keeps a snapshot of res.
func NewInvalidResponseError(res *Response, format string, args ...any) *Error {
	e := newError(ErrInvalidResponse, sprintf(format, args...), nil)
	e.Response = res.Clone()
	return e
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
