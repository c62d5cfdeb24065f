// Package grammar implements the RFC 2616 §2.2 basic rules shared by every
// header value: tokens, separators, quoted strings, comments and q-values.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httpcore/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// tchar = any CHAR except CTLs or separators
//
//	separators = "(" / ")" / "<" / ">" / "@" / "," / ";" / ":" / "\" / DQUOTE
//	           / "/" / "[" / "]" / "?" / "=" / "{" / "}" / SP / HT
var tchar = abnf.Alt(
	"tchar",
	abnf.Range("%x21", []byte{0x21}, []byte{0x21}),
	abnf.Range("%x23-27", []byte{0x23}, []byte{0x27}),
	abnf.Range("%x2A-2B", []byte{0x2A}, []byte{0x2B}),
	abnf.Range("%x2D-2E", []byte{0x2D}, []byte{0x2E}),
	abnf.Range("%x30-39", []byte{0x30}, []byte{0x39}),
	abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
	abnf.Range("%x5E-7A", []byte{0x5E}, []byte{0x7A}),
	abnf.Range("%x7C", []byte{0x7C}, []byte{0x7C}),
	abnf.Range("%x7E", []byte{0x7E}, []byte{0x7E}),
)

// token = 1*tchar
var token = abnf.Repeat1Inf("token", tchar)

// IsToken reports whether s matches the token rule in full.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := token([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

var tcharTable = func() (tbl [256]bool) {
	for c := 0x21; c < 0x7F; c++ {
		tbl[c] = true
	}
	for _, c := range []byte("()<>@,;:\\\"/[]?={}") {
		tbl[c] = false
	}
	return tbl
}()

// IsTokenChar reports whether c may appear in a token.
func IsTokenChar(c byte) bool { return tcharTable[c] }

// IsCTL reports whether c is a control character (octets 0-31 and DEL).
func IsCTL(c byte) bool { return c < 0x20 || c == 0x7F }
