package util

import (
	"strings"
	"sync"

	"github.com/indigo-web/utils/strcomp"
)

// EqFold reports whether two strings are equal under ASCII case folding.
func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strcomp.EqualFold(string(s1), string(s2))
}

// CmpFold compares two strings ASCII case-insensitively.
// It returns -1, 0 or +1 like [strings.Compare].
func CmpFold[T ~string](s1, s2 T) int {
	n := min(len(s1), len(s2))
	for i := range n {
		c1, c2 := lower(s1[i]), lower(s2[i])
		switch {
		case c1 < c2:
			return -1
		case c1 > c2:
			return 1
		}
	}
	switch {
	case len(s1) < len(s2):
		return -1
	case len(s1) > len(s2):
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
