package header

import (
	"cmp"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/grammar"
	"github.com/ghettovoice/httpcore/internal/util"
)

// QValue is a quality value in thousandths, 0 to 1000.
// The zero value is unspecified and weighs as q=1 without being rendered.
type QValue struct {
	milli uint16
	set   bool
}

// Q returns a specified quality value of milli thousandths. Values above 1000 are clamped.
func Q(milli uint16) QValue { return QValue{min(milli, grammar.MaxQValue), true} }

// ParseQValue parses the textual form of a quality value, for example "0.5".
func ParseQValue(s string) (QValue, error) {
	q, err := grammar.ParseQValue(s)
	if err != nil {
		return QValue{}, errtrace.Wrap(err)
	}
	return Q(q), nil
}

func (q QValue) IsSpecified() bool { return q.set }

// Milli returns the weight in thousandths, 1000 for an unspecified value.
func (q QValue) Milli() uint16 {
	if !q.set {
		return grammar.MaxQValue
	}
	return q.milli
}

func (q QValue) Equal(other QValue) bool { return q == other }

func (q QValue) Compare(other QValue) int { return cmp.Compare(q.Milli(), other.Milli()) }

func (q QValue) String() string { return grammar.FormatQValue(q.Milli()) }

// AcceptValue is an element of Accept-Charset or Accept-Encoding.
type AcceptValue struct {
	Value string
	Q     QValue
}

func (v AcceptValue) String() string {
	if !v.Q.IsSpecified() {
		return v.Value
	}
	return v.Value + ";q=" + v.Q.String()
}

// Equal reports whether both values are the same, compared case-insensitively.
// Quality values are ignored.
func (v AcceptValue) Equal(other AcceptValue) bool { return util.EqFold(v.Value, other.Value) }

func (v AcceptValue) acceptValue() string            { return v.Value }
func (v AcceptValue) quality() QValue                { return v.Q }
func (v AcceptValue) matches(other AcceptValue) bool { return v.Equal(other) }

// AcceptList is a list of quality-valued values, used by Accept-Charset and Accept-Encoding.
type AcceptList []AcceptValue

// IsAcceptable reports whether v is acceptable according to the list.
// See [AcceptListWithParams.IsAcceptable].
func (l AcceptList) IsAcceptable(v AcceptValue, defaultMissing bool) bool {
	return isAcceptable(l, v, defaultMissing)
}

// IsPreferred reports whether lhs is strictly preferred over rhs.
// See [AcceptListWithParams.IsPreferred].
func (l AcceptList) IsPreferred(lhs, rhs AcceptValue) bool { return isPreferred(l, lhs, rhs) }

// Preferred picks the most preferred element of available.
// See [AcceptListWithParams.Preferred].
func (l AcceptList) Preferred(available AcceptList) *AcceptValue { return preferred(l, available) }

func (l AcceptList) Clone() AcceptList { return slices.Clone(l) }

func (l AcceptList) String() string { return joinEntries(l, ", ") }

// AcceptValueWithParams is an element of a TE header: a value with parameters,
// an optional quality value and accept extension parameters that follow it.
type AcceptValueWithParams struct {
	Value        string
	Params       Params
	Q            QValue
	AcceptParams Params
}

// Equal reports whether both values are the same, compared case-insensitively,
// with equal parameters. Quality values and accept parameters are ignored.
func (v AcceptValueWithParams) Equal(other AcceptValueWithParams) bool {
	return util.EqFold(v.Value, other.Value) && v.Params.Equal(other.Params)
}

func (v AcceptValueWithParams) String() string {
	s := v.Value + v.Params.String()
	if v.Q.IsSpecified() {
		s += ";q=" + v.Q.String()
	}
	return s + v.AcceptParams.String()
}

func (v AcceptValueWithParams) Clone() AcceptValueWithParams {
	v.Params = v.Params.Clone()
	v.AcceptParams = v.AcceptParams.Clone()
	return v
}

func (v AcceptValueWithParams) acceptValue() string { return v.Value }
func (v AcceptValueWithParams) quality() QValue     { return v.Q }
func (v AcceptValueWithParams) matches(other AcceptValueWithParams) bool {
	return v.Equal(other)
}

// AcceptListWithParams is a list of quality-valued values with parameters, used by TE.
type AcceptListWithParams []AcceptValueWithParams

// IsAcceptable reports whether v is acceptable according to the list.
//
// An entry equal to v governs it, otherwise the "*" entry does.
// v is acceptable if the governing entry has a non-zero quality value.
// If nothing governs v, the result is defaultMissing for an empty list and false otherwise.
func (l AcceptListWithParams) IsAcceptable(v AcceptValueWithParams, defaultMissing bool) bool {
	return isAcceptable(l, v, defaultMissing)
}

// IsPreferred reports whether lhs is strictly preferred over rhs.
//
// An acceptable value is preferred over an unacceptable one. Between two acceptable
// values the one governed by its own entry wins over one governed by the wildcard,
// whatever their quality values. Among equally specific values the higher quality
// wins. Ties are not preferred.
func (l AcceptListWithParams) IsPreferred(lhs, rhs AcceptValueWithParams) bool {
	return isPreferred(l, lhs, rhs)
}

// Preferred returns a pointer into available to the first acceptable element that
// no later element is preferred over, or nil if none is acceptable.
// An empty list accepts everything, so the first element wins.
func (l AcceptListWithParams) Preferred(available AcceptListWithParams) *AcceptValueWithParams {
	return preferred(l, available)
}

func (l AcceptListWithParams) Clone() AcceptListWithParams { return cloneEntries(l) }

func (l AcceptListWithParams) String() string { return joinEntries(l, ", ") }
