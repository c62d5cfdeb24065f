//go:build unix

package httpcore

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var errnoCategories = map[syscall.Errno]Category{
	unix.ENOENT:       ErrFileNotFound,
	unix.EBADF:        ErrBadHandle,
	unix.ENOTSOCK:     ErrBadHandle,
	unix.ECANCELED:    ErrOperationAborted,
	unix.EPIPE:        ErrBrokenPipe,
	unix.ECONNABORTED: ErrConnectionAborted,
	unix.ECONNRESET:   ErrConnectionReset,
	unix.ECONNREFUSED: ErrConnectionRefused,
	unix.EHOSTDOWN:    ErrHostDown,
	unix.EHOSTUNREACH: ErrHostUnreachable,
	unix.ENETDOWN:     ErrNetworkDown,
	unix.ENETRESET:    ErrNetworkReset,
	unix.ENETUNREACH:  ErrNetworkUnreachable,
	unix.ETIMEDOUT:    ErrTimedOut,
}
