package header

import (
	"slices"
	"strings"

	"github.com/ghettovoice/httpcore/internal/util"
)

// Tokens is a set of tokens kept sorted and de-duplicated case-insensitively.
// It backs fields like Connection, Trailer and Accept-Ranges.
type Tokens []string

// NewTokens builds a set from vals.
func NewTokens(vals ...string) Tokens {
	var ts Tokens
	for _, v := range vals {
		ts = ts.Add(v)
	}
	return ts
}

func (ts Tokens) search(v string) (int, bool) {
	return slices.BinarySearchFunc(ts, v, util.CmpFold[string])
}

// Add inserts v unless an equal token is already present.
// Add and Del never modify the receiver.
func (ts Tokens) Add(v string) Tokens {
	i, ok := ts.search(v)
	if ok {
		return ts
	}
	return slices.Insert(slices.Clip(ts), i, v)
}

// Has reports whether v is in the set.
func (ts Tokens) Has(v string) bool {
	_, ok := ts.search(v)
	return ok
}

// Del removes v from the set.
func (ts Tokens) Del(v string) Tokens {
	if i, ok := ts.search(v); ok {
		return slices.Delete(slices.Clone(ts), i, i+1)
	}
	return ts
}

func (ts Tokens) Clone() Tokens { return slices.Clone(ts) }

func (ts Tokens) String() string { return strings.Join(ts, ", ") }
