package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/grammar"
)

// ErrMalformedInput is returned by [Unquote] and [ParseQValue] for input
// that violates the grammar.
const ErrMalformedInput = grammar.ErrMalformedInput

// IsToken reports whether s is a bare RFC 2616 token.
func IsToken(s string) bool { return grammar.IsToken(s) }

// IsQuoted reports whether s is a well-formed quoted-string.
func IsQuoted(s string) bool { return grammar.IsQuoted(s) }

// Quote returns s unchanged if it is a token and alwaysQuote is false,
// otherwise it returns s as a quoted-string, or as a comment if comment is true,
// with DQUOTE (parentheses for comments), backslash and CTL bytes escaped.
// It works on raw bytes and never fails.
func Quote(s string, alwaysQuote, comment bool) string {
	return grammar.Quote(s, alwaysQuote, comment)
}

// Unquote reverses [Quote]. A string that is not quoted is returned unchanged.
// Malformed quoting results in [ErrMalformedInput].
func Unquote(s string) (string, error) {
	return errtrace.Wrap2(grammar.Unquote(s))
}
