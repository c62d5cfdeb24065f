package header_test

import (
	"testing"

	"github.com/ghettovoice/httpcore/header"
)

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b header.Version
		want int
	}{
		{header.Version{Major: 2, Minor: 0}, header.Version{Major: 1, Minor: 9}, 1},
		{header.Version{Major: 1, Minor: 9}, header.Version{Major: 2, Minor: 0}, -1},
		{header.Version11, header.Version10, 1},
		{header.Version10, header.Version11, -1},
		{header.Version11, header.Version11, 0},
		{header.Version{}, header.Version10, -1},
	}

	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestVersion_Less(t *testing.T) {
	t.Parallel()

	// A smaller minor number must not win over a larger major one.
	if (header.Version{Major: 2, Minor: 0}).Less(header.Version{Major: 1, Minor: 9}) {
		t.Error("HTTP/2.0 < HTTP/1.9 = true, want false")
	}

	for a := range uint8(4) {
		for b := range uint8(4) {
			if a == b {
				continue
			}
			for am := range uint8(4) {
				for bm := range uint8(4) {
					va, vb := header.Version{Major: a, Minor: am}, header.Version{Major: b, Minor: bm}
					if got, want := va.Less(vb), a < b; got != want {
						t.Errorf("%v < %v = %v, want %v", va, vb, got, want)
					}
				}
			}
		}
	}
}

func TestVersion_String(t *testing.T) {
	t.Parallel()

	if got, want := header.Version11.String(), "HTTP/1.1"; got != want {
		t.Errorf("Version11.String() = %q, want %q", got, want)
	}
	if got, want := (header.Version{Major: 2, Minor: 10}).String(), "HTTP/2.10"; got != want {
		t.Errorf("Version{2, 10}.String() = %q, want %q", got, want)
	}
	if !(header.Version{}).IsZero() {
		t.Error("Version{}.IsZero() = false, want true")
	}
	if !header.Version10.Equal(header.Version{Major: 1, Minor: 0}) {
		t.Error("Version10.Equal(Version{1, 0}) = false, want true")
	}
}
