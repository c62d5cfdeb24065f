package httpcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strconv"
	"syscall"

	"github.com/miekg/dns"

	"github.com/ghettovoice/httpcore/internal/errorutil"
)

// FromRcode classifies the response code of a DNS answer.
// It returns nil for [dns.RcodeSuccess].
func FromRcode(rcode int) error {
	var c Category
	switch rcode {
	case dns.RcodeSuccess:
		return nil
	case dns.RcodeServerFailure:
		c = ErrTemporaryNameServerFailure
	case dns.RcodeNameError:
		c = ErrHostNotFound
	case dns.RcodeFormatError, dns.RcodeNotImplemented, dns.RcodeRefused:
		c = ErrPermanentNameServerFailure
	default:
		c = ErrNameLookup
	}
	msg, ok := dns.RcodeToString[rcode]
	if !ok {
		msg = "rcode " + strconv.Itoa(rcode)
	}
	return newError(c, msg, nil)
}

// FromError classifies an arbitrary error.
//
// An [*Error] found in the chain is returned as is. Native error codes,
// [*net.DNSError], header grammar errors and well-known sentinel errors of the
// standard library are mapped to their categories with err kept as the cause. Anything else is wrapped into
// [ErrException]. FromError returns nil for a nil err.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		e = newErrnoError(errno, syscallName(err))
		e.cause = err
		return e
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return WrapError(ErrHostNotFound, err)
		case dnsErr.IsTimeout:
			return WrapError(ErrTimedOut, err)
		case dnsErr.IsTemporary:
			return WrapError(ErrTemporaryNameServerFailure, err)
		default:
			return WrapError(ErrNameLookup, err)
		}
	}

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return WrapError(ErrUnexpectedEOF, err)
	case errors.Is(err, bufio.ErrBufferFull), errors.Is(err, bufio.ErrTooLong):
		return WrapError(ErrBufferOverflow, err)
	case errors.Is(err, os.ErrNotExist):
		return WrapError(ErrFileNotFound, err)
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return WrapError(ErrTimedOut, err)
	case errors.Is(err, net.ErrClosed), errors.Is(err, os.ErrClosed):
		return WrapError(ErrBadHandle, err)
	case errors.Is(err, context.Canceled):
		return WrapError(ErrOperationAborted, err)
	case errors.Is(err, io.ErrClosedPipe):
		return WrapError(ErrBrokenPipe, err)
	case errorutil.IsGrammarErr(err):
		return WrapError(ErrBadMessageHeader, err)
	case errorutil.IsTimeoutErr(err):
		return WrapError(ErrTimedOut, err)
	default:
		return WrapError(ErrException, err)
	}
}

// IsRetryable reports whether a request that failed with err may be retried
// on a new connection. Timeouts, resets, aborts, temporary name server failures
// and connections closed by the peer on purpose are retryable. Malformed messages,
// redirects and permanent failures are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	for _, c := range retryable {
		if errors.Is(err, c) {
			return true
		}
	}

	var e *Error
	if errors.As(err, &e) {
		return false
	}
	return errorutil.IsTimeoutErr(err) || errorutil.IsTemporaryErr(err)
}

var retryable = []Category{
	ErrTimedOut,
	ErrConnectionReset,
	ErrConnectionAborted,
	ErrNetworkReset,
	ErrTemporaryNameServerFailure,
	ErrPriorRequestFailed,
}

// syscallName returns the name of the failed call from an [*os.SyscallError]
// or the operation of a [*net.OpError].
func syscallName(err error) string {
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		return sysErr.Syscall
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op
	}
	return ""
}
