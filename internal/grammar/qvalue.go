package grammar

import (
	"strconv"

	"braces.dev/errtrace"
)

// MaxQValue is the q-value "1" expressed in thousandths.
const MaxQValue = 1000

// ParseQValue parses a qvalue and returns it in thousandths.
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func ParseQValue[T ~string | ~[]byte](in T) (uint16, error) {
	s := string(in)
	if len(s) == 0 {
		return 0, errtrace.Wrap(ErrEmptyInput)
	}
	if s[0] != '0' && s[0] != '1' {
		return 0, errtrace.Wrap(newMalformedInputErr("qvalue %q", s))
	}

	q := uint16(s[0]-'0') * MaxQValue
	if len(s) == 1 {
		return q, nil
	}
	if s[1] != '.' || len(s) > 5 {
		return 0, errtrace.Wrap(newMalformedInputErr("qvalue %q", s))
	}

	mul := uint16(100)
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' || (q == MaxQValue && c != '0') {
			return 0, errtrace.Wrap(newMalformedInputErr("qvalue %q", s))
		}
		q += uint16(c-'0') * mul
		mul /= 10
	}
	return q, nil
}

// FormatQValue renders q thousandths with the shortest qvalue text:
// "0", "1", "0.5", "0.25", "0.001". Values above 1000 are clamped.
func FormatQValue(q uint16) string {
	switch {
	case q == 0:
		return "0"
	case q >= MaxQValue:
		return "1"
	}

	// q+1000 gives "1ddd": keep the three fraction digits without trailing zeros.
	digits := strconv.FormatUint(uint64(q)+MaxQValue, 10)[1:]
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return "0." + digits
}
