package header

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
	"github.com/ghettovoice/httpcore/internal/util"
)

// Ptr returns a pointer to a copy of v.
// It is used to fill optional fields such as [EntityHeaders.ContentLength].
func Ptr[T any](v T) *T { return &v }

// FormatDate renders t in the RFC 1123 format required for HTTP-date values.
func FormatDate(t time.Time) string { return t.UTC().Format(http.TimeFormat) }

func renderEntries[L ~[]E, E fmt.Stringer](w io.Writer, list L, sep string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range list {
		if i > 0 {
			cw.WriteString(sep) //nolint:errcheck
		}
		cw.WriteString(list[i].String()) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func joinEntries[L ~[]E, E fmt.Stringer](list L, sep string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderEntries(sb, list, sep) //nolint:errcheck
	return sb.String()
}

func renderString(fn func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fn(sb) //nolint:errcheck
	return sb.String()
}

func cloneEntries[L ~[]E, E interface{ Clone() E }](list L) L {
	if list == nil {
		return nil
	}
	list2 := make(L, len(list))
	for i := range list {
		list2[i] = list[i].Clone()
	}
	return list2
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return Ptr(*p)
}
