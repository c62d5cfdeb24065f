package httpcore_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghettovoice/httpcore"
	"github.com/ghettovoice/httpcore/header"
)

func unquoteErr(s string) error {
	_, err := header.Unquote(s)
	return err
}

func TestFromRcode(t *testing.T) {
	t.Parallel()

	require.NoError(t, httpcore.FromRcode(dns.RcodeSuccess))

	cases := []struct {
		rcode int
		want  httpcore.Category
		msg   string
	}{
		{dns.RcodeServerFailure, httpcore.ErrTemporaryNameServerFailure, "SERVFAIL"},
		{dns.RcodeNameError, httpcore.ErrHostNotFound, "NXDOMAIN"},
		{dns.RcodeRefused, httpcore.ErrPermanentNameServerFailure, "REFUSED"},
		{dns.RcodeFormatError, httpcore.ErrPermanentNameServerFailure, "FORMERR"},
		{dns.RcodeNotImplemented, httpcore.ErrPermanentNameServerFailure, "NOTIMP"},
		{dns.RcodeBadTime, httpcore.ErrNameLookup, "BADTIME"},
		{4000, httpcore.ErrNameLookup, "rcode 4000"},
	}

	for _, c := range cases {
		err := httpcore.FromRcode(c.rcode)
		var e *httpcore.Error
		require.ErrorAs(t, err, &e, "rcode %d", c.rcode)
		assert.Equal(t, c.want, e.Category, "rcode %d", c.rcode)
		assert.Equal(t, c.msg, e.Message, "rcode %d", c.rcode)
		require.ErrorIs(t, err, httpcore.ErrNameLookup)
	}
}

func TestFromLookupCode_Unknown(t *testing.T) {
	t.Parallel()

	err := httpcore.FromLookupCode(123456)
	assert.Equal(t, httpcore.ErrNameLookup, err.Category)
	assert.Equal(t, 123456, err.LookupCode)
	require.ErrorIs(t, err, httpcore.ErrSocket)
	assert.Equal(t, "name lookup failed: lookup code 123456", err.Error())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestFromError(t *testing.T) {
	t.Parallel()

	classified := httpcore.NewInvalidMessageHeaderError("bad")

	cases := []struct {
		name string
		err  error
		want httpcore.Category
	}{
		{"classified", classified, httpcore.ErrInvalidMessageHeader},
		{"dns not found", &net.DNSError{Err: "no such host", Name: "x.invalid", IsNotFound: true}, httpcore.ErrHostNotFound},
		{"dns timeout", &net.DNSError{Err: "timeout", IsTimeout: true}, httpcore.ErrTimedOut},
		{"dns temporary", &net.DNSError{Err: "try again", IsTemporary: true}, httpcore.ErrTemporaryNameServerFailure},
		{"dns other", &net.DNSError{Err: "weird"}, httpcore.ErrNameLookup},
		{"unexpected eof", fmt.Errorf("read body: %w", io.ErrUnexpectedEOF), httpcore.ErrUnexpectedEOF},
		{"buffer full", bufio.ErrBufferFull, httpcore.ErrBufferOverflow},
		{"token too long", bufio.ErrTooLong, httpcore.ErrBufferOverflow},
		{"not exist", &os.PathError{Op: "open", Path: "/x", Err: os.ErrNotExist}, httpcore.ErrFileNotFound},
		{"deadline", os.ErrDeadlineExceeded, httpcore.ErrTimedOut},
		{"context deadline", context.DeadlineExceeded, httpcore.ErrTimedOut},
		{"closed", net.ErrClosed, httpcore.ErrBadHandle},
		{"canceled", context.Canceled, httpcore.ErrOperationAborted},
		{"closed pipe", io.ErrClosedPipe, httpcore.ErrBrokenPipe},
		{"malformed header", unquoteErr(`"abc`), httpcore.ErrBadMessageHeader},
		{"timeout interface", timeoutErr{}, httpcore.ErrTimedOut},
		{"other", errors.New("something"), httpcore.ErrException},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := httpcore.FromError(c.err)
			var e *httpcore.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, c.want, e.Category)
			require.ErrorIs(t, err, c.err)
		})
	}

	require.NoError(t, httpcore.FromError(nil))
	assert.Same(t, classified, httpcore.FromError(fmt.Errorf("wrap: %w", classified)))
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timed out", httpcore.NewError(httpcore.ErrTimedOut, ""), true},
		{"reset", httpcore.NewError(httpcore.ErrConnectionReset, ""), true},
		{"aborted", httpcore.NewError(httpcore.ErrConnectionAborted, ""), true},
		{"temporary dns", httpcore.FromRcode(dns.RcodeServerFailure), true},
		{"voluntarily closed", httpcore.NewConnectionVoluntarilyClosedError(), true},
		{"prior request failed", httpcore.NewPriorRequestFailedError(nil), true},
		{"bad header", httpcore.NewBadMessageHeaderError(nil), false},
		{"refused", httpcore.NewError(httpcore.ErrConnectionRefused, ""), false},
		{"host not found", httpcore.FromRcode(dns.RcodeNameError), false},
		{"redirect", httpcore.NewRedirectError(httpcore.StatusFound, nil), false},
		{"foreign timeout", fmt.Errorf("dial: %w", timeoutErr{}), true},
		{"foreign", errors.New("x"), false},
	}

	for _, c := range cases {
		if got := httpcore.IsRetryable(c.err); got != c.want {
			t.Errorf("httpcore.IsRetryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
