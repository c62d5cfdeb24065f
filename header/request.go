package header

import (
	"io"
	"net/url"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
)

// RequestHeaders holds the request header fields (RFC 2616 §5.3).
type RequestHeaders struct {
	AcceptCharset      AcceptList
	AcceptEncoding     AcceptList
	Authorization      AuthParams
	Expect             ParamKeyValueList
	Host               string
	IfMatch            ETagSet
	IfModifiedSince    time.Time
	IfNoneMatch        ETagSet
	IfRange            IfRange
	IfUnmodifiedSince  time.Time
	ProxyAuthorization AuthParams
	Range              RangeSet
	Referer            *url.URL
	TE                 AcceptListWithParams
	UserAgent          ProductsAndComments
}

// RenderTo writes the present fields as header lines.
func (h RequestHeaders) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if len(h.AcceptCharset) > 0 {
		cw.Line("Accept-Charset", h.AcceptCharset.String())
	}
	if len(h.AcceptEncoding) > 0 {
		cw.Line("Accept-Encoding", h.AcceptEncoding.String())
	}
	if !h.Authorization.IsZero() {
		cw.Line("Authorization", h.Authorization.String())
	}
	if len(h.Expect) > 0 {
		cw.Line("Expect", h.Expect.String())
	}
	if h.Host != "" {
		cw.Line("Host", h.Host)
	}
	if len(h.IfMatch) > 0 {
		cw.Line("If-Match", h.IfMatch.String())
	}
	if !h.IfModifiedSince.IsZero() {
		cw.Line("If-Modified-Since", FormatDate(h.IfModifiedSince))
	}
	if len(h.IfNoneMatch) > 0 {
		cw.Line("If-None-Match", h.IfNoneMatch.String())
	}
	if !h.IfRange.IsZero() {
		cw.Line("If-Range", h.IfRange.String())
	}
	if !h.IfUnmodifiedSince.IsZero() {
		cw.Line("If-Unmodified-Since", FormatDate(h.IfUnmodifiedSince))
	}
	if !h.ProxyAuthorization.IsZero() {
		cw.Line("Proxy-Authorization", h.ProxyAuthorization.String())
	}
	if len(h.Range) > 0 {
		cw.Line("Range", h.Range.String())
	}
	if h.Referer != nil {
		cw.Line("Referer", h.Referer.String())
	}
	if len(h.TE) > 0 {
		cw.Line("TE", h.TE.String())
	}
	if len(h.UserAgent) > 0 {
		cw.Line("User-Agent", h.UserAgent.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (h RequestHeaders) String() string { return renderString(h.RenderTo) }

func (h RequestHeaders) Clone() RequestHeaders {
	h.AcceptCharset = h.AcceptCharset.Clone()
	h.AcceptEncoding = h.AcceptEncoding.Clone()
	h.Authorization = h.Authorization.Clone()
	h.Expect = h.Expect.Clone()
	h.IfMatch = h.IfMatch.Clone()
	h.IfNoneMatch = h.IfNoneMatch.Clone()
	h.IfRange = h.IfRange.Clone()
	h.ProxyAuthorization = h.ProxyAuthorization.Clone()
	h.Range = h.Range.Clone()
	h.Referer = cloneURL(h.Referer)
	h.TE = h.TE.Clone()
	h.UserAgent = h.UserAgent.Clone()
	return h
}
