package header

import (
	"io"
	"slices"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
	"github.com/ghettovoice/httpcore/internal/util"
)

// ValueWithParams is a token followed by parameters, like "chunked" or "gzip;level=1".
type ValueWithParams struct {
	Value  string
	Params Params
}

func (v ValueWithParams) String() string { return v.Value + v.Params.String() }

func (v ValueWithParams) Clone() ValueWithParams {
	v.Params = v.Params.Clone()
	return v
}

// ParamList is a list of values with parameters, used by Transfer-Encoding.
type ParamList []ValueWithParams

// Has reports whether the list holds value, compared case-insensitively.
func (l ParamList) Has(value string) bool {
	return slices.ContainsFunc(l, func(v ValueWithParams) bool { return util.EqFold(v.Value, value) })
}

func (l ParamList) Clone() ParamList { return cloneEntries(l) }

func (l ParamList) String() string { return joinEntries(l, ", ") }

// AuthParams is a credentials or challenge value (RFC 2617):
// an auth scheme followed by either a base64 blob or a list of auth parameters.
type AuthParams struct {
	Scheme string
	Base64 string
	Params Params
}

func (a AuthParams) IsZero() bool { return a.Scheme == "" && a.Base64 == "" && len(a.Params) == 0 }

// RenderTo writes "scheme [base64] [name=value, name=value]".
func (a AuthParams) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(a.Scheme) //nolint:errcheck
	if a.Base64 != "" {
		cw.Fprint(" ", a.Base64) //nolint:errcheck
	}
	for i, p := range a.Params {
		if i == 0 {
			cw.WriteString(" ") //nolint:errcheck
		} else {
			cw.WriteString(", ") //nolint:errcheck
		}
		cw.Fprint(p.Name, "=", Quote(p.Value, false, false)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func (a AuthParams) String() string { return renderString(a.RenderTo) }

func (a AuthParams) Clone() AuthParams {
	a.Params = a.Params.Clone()
	return a
}

// ChallengeList is a list of authentication challenges,
// used by WWW-Authenticate and Proxy-Authenticate.
type ChallengeList []AuthParams

// IsAcceptable reports whether one of the challenges uses the given auth scheme.
func (l ChallengeList) IsAcceptable(scheme string) bool {
	return slices.ContainsFunc(l, func(a AuthParams) bool { return util.EqFold(a.Scheme, scheme) })
}

func (l ChallengeList) Clone() ChallengeList { return cloneEntries(l) }

func (l ChallengeList) String() string { return joinEntries(l, ", ") }

// KeyValueWithParams is a "key[=value]" pair followed by parameters,
// like the expectations of an Expect header.
type KeyValueWithParams struct {
	Key    string
	Value  string
	Params Params
}

func (kv KeyValueWithParams) String() string {
	s := kv.Key
	if kv.Value != "" {
		s += "=" + Quote(kv.Value, false, false)
	}
	return s + kv.Params.String()
}

func (kv KeyValueWithParams) Clone() KeyValueWithParams {
	kv.Params = kv.Params.Clone()
	return kv
}

// ParamKeyValueList is a list of key-value pairs with parameters, used by Expect.
type ParamKeyValueList []KeyValueWithParams

func (l ParamKeyValueList) Clone() ParamKeyValueList { return cloneEntries(l) }

func (l ParamKeyValueList) String() string { return joinEntries(l, ", ") }

// MediaType is a "type/subtype" media type with parameters, used by Content-Type.
type MediaType struct {
	Type    string
	Subtype string
	Params  Params
}

func (m MediaType) IsZero() bool { return m.Type == "" && m.Subtype == "" }

// Equal reports whether both media types have the same type and subtype,
// compared case-insensitively, and equal parameters.
func (m MediaType) Equal(other MediaType) bool {
	return util.EqFold(m.Type, other.Type) &&
		util.EqFold(m.Subtype, other.Subtype) &&
		m.Params.Equal(other.Params)
}

func (m MediaType) String() string { return m.Type + "/" + m.Subtype + m.Params.String() }

func (m MediaType) Clone() MediaType {
	m.Params = m.Params.Clone()
	return m
}

// IfRange is the value of an If-Range header: either an entity tag or a date.
type IfRange struct {
	ETag *ETag
	Date time.Time
}

func (r IfRange) IsZero() bool { return r.ETag == nil && r.Date.IsZero() }

func (r IfRange) String() string {
	if r.ETag != nil {
		return r.ETag.String()
	}
	if r.Date.IsZero() {
		return ""
	}
	return FormatDate(r.Date)
}

func (r IfRange) Clone() IfRange {
	r.ETag = clonePtr(r.ETag)
	return r
}

// RetryAfter is the value of a Retry-After header: either a date or a delay in seconds.
type RetryAfter struct {
	Date    time.Time
	Seconds *uint64
}

func (r RetryAfter) IsZero() bool { return r.Date.IsZero() && r.Seconds == nil }

func (r RetryAfter) String() string {
	if r.Seconds != nil {
		return strconv.FormatUint(*r.Seconds, 10)
	}
	if r.Date.IsZero() {
		return ""
	}
	return FormatDate(r.Date)
}

func (r RetryAfter) Clone() RetryAfter {
	r.Seconds = clonePtr(r.Seconds)
	return r
}
