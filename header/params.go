package header

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
	"github.com/ghettovoice/httpcore/internal/util"
)

// Param is a single name=value parameter.
type Param struct {
	Name  string
	Value string
}

// Params is a parameter map with case-insensitive names.
// Unlike a Go map it remembers insertion order, which keeps rendering deterministic.
// The zero value is an empty map ready to use. Methods that modify the map
// return an updated copy and leave the receiver untouched:
//
//	ps = ps.Set("charset", "utf-8")
type Params []Param

func (ps Params) index(name string) int {
	return slices.IndexFunc(ps, func(p Param) bool { return util.EqFold(p.Name, name) })
}

// Get returns the value of the named parameter.
func (ps Params) Get(name string) (string, bool) {
	if i := ps.index(name); i >= 0 {
		return ps[i].Value, true
	}
	return "", false
}

// Has reports whether the named parameter is present.
func (ps Params) Has(name string) bool { return ps.index(name) >= 0 }

// Set sets the named parameter. An existing parameter keeps its position.
func (ps Params) Set(name, value string) Params {
	if i := ps.index(name); i >= 0 {
		ps = slices.Clone(ps)
		ps[i].Value = value
		return ps
	}
	return append(slices.Clip(ps), Param{name, value})
}

// Del removes the named parameter.
func (ps Params) Del(name string) Params {
	if i := ps.index(name); i >= 0 {
		return slices.Delete(slices.Clone(ps), i, i+1)
	}
	return ps
}

// Clone returns a copy of the map.
func (ps Params) Clone() Params { return slices.Clone(ps) }

// Equal reports whether both maps hold the same names, compared case-insensitively,
// with identical values. Order is ignored.
func (ps Params) Equal(other Params) bool {
	if len(ps) != len(other) {
		return false
	}
	for _, p := range ps {
		if v, ok := other.Get(p.Name); !ok || v != p.Value {
			return false
		}
	}
	return true
}

// RenderTo writes each parameter as ";name=value", quoting the value when it is not a token.
func (ps Params) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range ps {
		cw.Fprint(";", p.Name, "=", Quote(p.Value, false, false)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func (ps Params) String() string { return renderString(ps.RenderTo) }
