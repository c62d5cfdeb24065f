// Package httpcore is the protocol-independent core of an HTTP/1.1 toolkit.
//
// It models request and response heads ([Request], [Response]) on top of the
// structured header groups of package [github.com/ghettovoice/httpcore/header],
// renders them to the wire format, and defines the error taxonomy shared by the
// parser and transport layers built on top of it.
//
// # Messages
//
// Messages are plain values assembled by a parser or by application code.
// Nothing is validated on construction. [Request.String] and [Response.String]
// return the exact wire form of the message head, including the empty line that
// terminates it:
//
//	req := httpcore.Request{
//		RequestLine: httpcore.RequestLine{Method: httpcore.MethodGet, URI: &url.URL{Path: "/"}, Version: header.Version11},
//		Request:     header.RequestHeaders{Host: "example.com"},
//	}
//	fmt.Print(req.String()) // "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
//
// # Errors
//
// Every failure is an [*Error] that carries exactly one [Category].
// Categories form a closed tree, and [errors.Is] matches an error against its
// category and all of the category's ancestors:
//
//	err := httpcore.FromErrno(syscall.ECONNRESET)
//	errors.Is(err, httpcore.ErrConnectionReset) // true
//	errors.Is(err, httpcore.ErrSocket)          // true
//	errors.Is(err, syscall.ECONNRESET)          // true
//	errors.Is(err, httpcore.ErrStream)          // false
//
// Platform error codes are classified with [FromErrno], [FromErrnoAPI] and
// [FromLookupCode], DNS response codes with [FromRcode] and arbitrary Go errors
// with [FromError]. [IsRetryable] tells whether a failed exchange may be retried
// on a fresh connection.
//
// Each error captures the call stack and the source location of the place where
// it was created. Use "%+v" to print the stack.
package httpcore
