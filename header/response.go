package header

import (
	"io"
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
)

// ResponseHeaders holds the response header fields (RFC 2616 §6.2).
type ResponseHeaders struct {
	AcceptRanges      Tokens
	ETag              *ETag
	Location          *url.URL
	ProxyAuthenticate ChallengeList
	RetryAfter        RetryAfter
	Server            ProductsAndComments
	WWWAuthenticate   ChallengeList
}

// RenderTo writes the present fields as header lines.
func (h ResponseHeaders) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if len(h.AcceptRanges) > 0 {
		cw.Line("Accept-Ranges", h.AcceptRanges.String())
	}
	if h.ETag != nil {
		cw.Line("ETag", h.ETag.String())
	}
	if h.Location != nil {
		cw.Line("Location", h.Location.String())
	}
	if len(h.ProxyAuthenticate) > 0 {
		cw.Line("Proxy-Authenticate", h.ProxyAuthenticate.String())
	}
	if !h.RetryAfter.IsZero() {
		cw.Line("Retry-After", h.RetryAfter.String())
	}
	if len(h.Server) > 0 {
		cw.Line("Server", h.Server.String())
	}
	if len(h.WWWAuthenticate) > 0 {
		cw.Line("WWW-Authenticate", h.WWWAuthenticate.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (h ResponseHeaders) String() string { return renderString(h.RenderTo) }

func (h ResponseHeaders) Clone() ResponseHeaders {
	h.AcceptRanges = h.AcceptRanges.Clone()
	h.ETag = clonePtr(h.ETag)
	h.Location = cloneURL(h.Location)
	h.ProxyAuthenticate = h.ProxyAuthenticate.Clone()
	h.RetryAfter = h.RetryAfter.Clone()
	h.Server = h.Server.Clone()
	h.WWWAuthenticate = h.WWWAuthenticate.Clone()
	return h
}
