package header

import (
	"cmp"
	"slices"
	"strings"
)

// ETag is an entity tag (RFC 2616 §3.11).
// Unspecified marks the "*" wildcard used by If-Match and If-None-Match.
type ETag struct {
	Value       string
	Weak        bool
	Unspecified bool
}

// AnyETag is the "*" wildcard.
var AnyETag = ETag{Unspecified: true}

// Compare orders the wildcard first, then strong tags before weak ones,
// then by value.
func (e ETag) Compare(other ETag) int {
	switch {
	case e.Unspecified || other.Unspecified:
		return -cmp.Compare(b2i(e.Unspecified), b2i(other.Unspecified))
	case e.Weak != other.Weak:
		return cmp.Compare(b2i(e.Weak), b2i(other.Weak))
	default:
		return strings.Compare(e.Value, other.Value)
	}
}

func (e ETag) Less(other ETag) bool { return e.Compare(other) < 0 }

// StrongMatch implements the strong comparison function:
// both tags must be strong with identical values.
func (e ETag) StrongMatch(other ETag) bool {
	return !e.Unspecified && !other.Unspecified && !e.Weak && !other.Weak && e.Value == other.Value
}

// WeakMatch implements the weak comparison function: values must be identical,
// weakness is ignored.
func (e ETag) WeakMatch(other ETag) bool {
	return !e.Unspecified && !other.Unspecified && e.Value == other.Value
}

func (e ETag) String() string {
	if e.Unspecified {
		return "*"
	}
	s := Quote(e.Value, true, false)
	if e.Weak {
		return "W/" + s
	}
	return s
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ETagSet is a sorted set of entity tags, used by If-Match and If-None-Match.
type ETagSet []ETag

// NewETagSet builds a set from tags.
func NewETagSet(tags ...ETag) ETagSet {
	var s ETagSet
	for _, t := range tags {
		s = s.Add(t)
	}
	return s
}

// Add inserts tag unless it is already present.
// The receiver is never modified.
func (s ETagSet) Add(tag ETag) ETagSet {
	i, ok := slices.BinarySearchFunc(s, tag, ETag.Compare)
	if ok {
		return s
	}
	return slices.Insert(slices.Clip(s), i, tag)
}

// Has reports whether tag is an element of the set.
func (s ETagSet) Has(tag ETag) bool {
	_, ok := slices.BinarySearchFunc(s, tag, ETag.Compare)
	return ok
}

// Match reports whether tag satisfies the set the way If-Match (strong)
// and If-None-Match (weak) conditions evaluate it. A set holding the wildcard
// matches any tag.
func (s ETagSet) Match(tag ETag, weak bool) bool {
	for _, t := range s {
		switch {
		case t.Unspecified:
			return true
		case weak && t.WeakMatch(tag), !weak && t.StrongMatch(tag):
			return true
		}
	}
	return false
}

func (s ETagSet) Clone() ETagSet { return slices.Clone(s) }

func (s ETagSet) String() string { return joinEntries(s, ", ") }
