package header

import (
	"slices"
	"strconv"
)

// ByteRange is a single byte-range-spec or suffix-byte-range-spec (RFC 2616 §14.35.1).
//
// A suffix range selects the last Last bytes and renders as "-Last".
// An open range selects everything from First and renders as "First-".
type ByteRange struct {
	First  uint64
	Last   uint64
	Suffix bool
	Open   bool
}

func (r ByteRange) String() string {
	switch {
	case r.Suffix:
		return "-" + strconv.FormatUint(r.Last, 10)
	case r.Open:
		return strconv.FormatUint(r.First, 10) + "-"
	default:
		return strconv.FormatUint(r.First, 10) + "-" + strconv.FormatUint(r.Last, 10)
	}
}

// RangeSet is the byte range set of a Range header.
type RangeSet []ByteRange

func (s RangeSet) Clone() RangeSet { return slices.Clone(s) }

func (s RangeSet) String() string {
	if len(s) == 0 {
		return ""
	}
	return "bytes=" + joinEntries(s, ",")
}

// ContentRange is the value of a Content-Range header.
// Unsatisfied renders the range part as "*", UnknownLength renders the instance length as "*".
type ContentRange struct {
	First         uint64
	Last          uint64
	Length        uint64
	Unsatisfied   bool
	UnknownLength bool
}

func (r ContentRange) String() string {
	s := "bytes "
	if r.Unsatisfied {
		s += "*"
	} else {
		s += strconv.FormatUint(r.First, 10) + "-" + strconv.FormatUint(r.Last, 10)
	}
	if r.UnknownLength {
		return s + "/*"
	}
	return s + "/" + strconv.FormatUint(r.Length, 10)
}
