package grammar

import (
	"strings"

	"braces.dev/errtrace"
)

// Quote returns s unchanged if it is a valid token and alwaysQuote is false.
// Otherwise s is wrapped into a quoted-string, or into a comment if comment is true,
// and every byte that cannot appear literally is escaped with a backslash:
// DQUOTE inside quoted-strings, parentheses inside comments, backslash and CTLs in both.
func Quote(s string, alwaysQuote, comment bool) string {
	if !alwaysQuote && IsToken(s) {
		return s
	}

	open, closing := byte('"'), byte('"')
	if comment {
		open, closing = '(', ')'
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(open)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEscape(c, comment) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(closing)
	return sb.String()
}

func needsEscape(c byte, comment bool) bool {
	switch c {
	case '\\':
		return true
	case '"':
		return !comment
	case '(', ')':
		return comment
	}
	return IsCTL(c)
}

// Unquote reverses [Quote].
// Input that does not start with DQUOTE or "(" is returned as is.
// A missing closing delimiter, a stray DQUOTE or a truncated quoted-pair
// results in [ErrMalformedInput].
func Unquote[T ~string | ~[]byte](in T) (string, error) {
	s := string(in)
	if len(s) == 0 || (s[0] != '"' && s[0] != '(') {
		return s, nil
	}

	closing := byte('"')
	if s[0] == '(' {
		closing = ')'
	}
	if len(s) < 2 || s[len(s)-1] != closing {
		return "", errtrace.Wrap(newMalformedInputErr("missing closing %q", closing))
	}

	body := s[1 : len(s)-1]
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\':
			i++
			if i == len(body) {
				return "", errtrace.Wrap(newMalformedInputErr("truncated escape sequence at offset %d", i))
			}
			sb.WriteByte(body[i])
		case c == '"' && closing == '"':
			return "", errtrace.Wrap(newMalformedInputErr("unescaped %q at offset %d", c, i+1))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

// IsQuoted reports whether s is a well-formed quoted-string.
func IsQuoted[T ~string | ~[]byte](s T) bool {
	if len(s) < 2 || s[0] != '"' {
		return false
	}
	_, err := Unquote(s)
	return err == nil
}
