//go:build windows

package httpcore

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var errnoCategories = map[syscall.Errno]Category{
	windows.ERROR_FILE_NOT_FOUND:    ErrFileNotFound,
	windows.ERROR_PATH_NOT_FOUND:    ErrFileNotFound,
	windows.ERROR_INVALID_HANDLE:    ErrBadHandle,
	windows.WSAENOTSOCK:             ErrBadHandle,
	windows.ERROR_OPERATION_ABORTED: ErrOperationAborted,
	windows.ERROR_BROKEN_PIPE:       ErrBrokenPipe,
	windows.WSAECONNABORTED:         ErrConnectionAborted,
	windows.WSAECONNRESET:           ErrConnectionReset,
	windows.ERROR_NETNAME_DELETED:   ErrConnectionReset,
	windows.WSAECONNREFUSED:         ErrConnectionRefused,
	windows.WSAEHOSTDOWN:            ErrHostDown,
	windows.WSAEHOSTUNREACH:         ErrHostUnreachable,
	windows.WSAENETDOWN:             ErrNetworkDown,
	windows.WSAENETRESET:            ErrNetworkReset,
	windows.WSAENETUNREACH:          ErrNetworkUnreachable,
	windows.WSAETIMEDOUT:            ErrTimedOut,

	// Name resolution reports through the same error code space.
	windows.WSATRY_AGAIN:      ErrTemporaryNameServerFailure,
	windows.WSANO_RECOVERY:    ErrPermanentNameServerFailure,
	windows.WSANO_DATA:        ErrNoNameServerData,
	windows.WSAHOST_NOT_FOUND: ErrHostNotFound,
}

var lookupCategories = map[int]Category{
	int(windows.WSATRY_AGAIN):      ErrTemporaryNameServerFailure,
	int(windows.WSANO_RECOVERY):    ErrPermanentNameServerFailure,
	int(windows.WSANO_DATA):        ErrNoNameServerData,
	int(windows.WSAHOST_NOT_FOUND): ErrHostNotFound,
}
