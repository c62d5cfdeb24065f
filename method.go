package httpcore

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/httpcore/internal/grammar"
)

// Method is an HTTP request method. Methods are case-sensitive (RFC 2616 §5.1.1).
type Method string

// Request methods defined by RFC 2616.
const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
)

var knownMethods = map[Method]bool{
	MethodOptions: true,
	MethodGet:     true,
	MethodHead:    true,
	MethodPost:    true,
	MethodPut:     true,
	MethodDelete:  true,
	MethodTrace:   true,
	MethodConnect: true,
}

// IsKnownMethod reports whether m is one of the methods defined by RFC 2616.
func IsKnownMethod(m Method) bool { return knownMethods[m] }

// IsValid reports whether the method is a token.
func (m Method) IsValid() bool { return grammar.IsToken(m) }

// IsSafe reports whether the method is safe as defined by RFC 2616 §9.1.1.
func (m Method) IsSafe() bool { return m == MethodGet || m == MethodHead }

// IsIdempotent reports whether the method is idempotent as defined by RFC 2616 §9.1.2.
// Requests with idempotent methods may be replayed after a connection failure.
func (m Method) IsIdempotent() bool {
	switch m {
	case MethodGet, MethodHead, MethodPut, MethodDelete, MethodOptions, MethodTrace:
		return true
	default:
		return false
	}
}

func (m Method) String() string { return string(m) }
