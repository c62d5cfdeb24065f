//go:build unix

package httpcore_test

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghettovoice/httpcore"
)

func TestFromErrno(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code syscall.Errno
		want httpcore.Category
	}{
		{syscall.ENOENT, httpcore.ErrFileNotFound},
		{syscall.EBADF, httpcore.ErrBadHandle},
		{syscall.ECANCELED, httpcore.ErrOperationAborted},
		{syscall.EPIPE, httpcore.ErrBrokenPipe},
		{syscall.ECONNABORTED, httpcore.ErrConnectionAborted},
		{syscall.ECONNRESET, httpcore.ErrConnectionReset},
		{syscall.ECONNREFUSED, httpcore.ErrConnectionRefused},
		{syscall.EHOSTDOWN, httpcore.ErrHostDown},
		{syscall.EHOSTUNREACH, httpcore.ErrHostUnreachable},
		{syscall.ENETDOWN, httpcore.ErrNetworkDown},
		{syscall.ENETRESET, httpcore.ErrNetworkReset},
		{syscall.ENETUNREACH, httpcore.ErrNetworkUnreachable},
		{syscall.ETIMEDOUT, httpcore.ErrTimedOut},
		{syscall.EACCES, httpcore.ErrNative},
		{syscall.Errno(0xFFFF), httpcore.ErrNative},
	}

	for _, c := range cases {
		t.Run(c.code.Error(), func(t *testing.T) {
			t.Parallel()

			err := httpcore.FromErrno(c.code)
			assert.Equal(t, c.want, err.Category)
			assert.Equal(t, c.code, err.Errno)
			require.ErrorIs(t, err, c.code)
			require.ErrorIs(t, err, httpcore.ErrNative)
			assert.Equal(t, c.want, httpcore.FromErrno(c.code).Category, "classification is not deterministic")
		})
	}
}

func TestFromErrno_Total(t *testing.T) {
	t.Parallel()

	for code := range syscall.Errno(512) {
		err := httpcore.FromErrno(code)
		require.ErrorIs(t, err, httpcore.ErrNative, "code %d", code)
		require.Equal(t, code, err.Errno, "code %d", code)
	}
}

func TestFromErrnoAPI(t *testing.T) {
	t.Parallel()

	err := httpcore.FromErrnoAPI(syscall.ECONNRESET, "recv")
	require.ErrorIs(t, err, httpcore.ErrConnectionReset)
	require.ErrorIs(t, err, httpcore.ErrSocket)
	require.ErrorIs(t, err, syscall.ECONNRESET)
	require.NotErrorIs(t, err, httpcore.ErrStream)
	require.NotErrorIs(t, err, syscall.EPIPE)
	assert.Equal(t, "recv", err.API)
	assert.Equal(t,
		fmt.Sprintf("connection reset: recv: %s (errno %d)", syscall.ECONNRESET.Error(), uintptr(syscall.ECONNRESET)),
		err.Error(),
	)
}

func TestFromError_Errno(t *testing.T) {
	t.Parallel()

	opErr := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}
	err := httpcore.FromError(opErr)

	var e *httpcore.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, httpcore.ErrConnectionReset, e.Category)
	assert.Equal(t, "read", e.API)
	require.ErrorIs(t, err, syscall.ECONNRESET)
	require.True(t, errors.Is(err, opErr))
	assert.True(t, httpcore.IsRetryable(err))
}
