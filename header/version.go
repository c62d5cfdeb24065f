package header

import (
	"cmp"
	"strconv"
)

// Version is an HTTP protocol version.
// The zero value means the version is unspecified; it is omitted from start lines.
type Version struct {
	Major, Minor uint8
}

var (
	Version10 = Version{1, 0}
	Version11 = Version{1, 1}
)

// IsZero reports whether the version is unspecified.
func (v Version) IsZero() bool { return v == Version{} }

// Compare orders versions by major, then minor number.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	return cmp.Compare(v.Minor, other.Minor)
}

func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

func (v Version) Equal(other Version) bool { return v == other }

func (v Version) String() string {
	return "HTTP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}
