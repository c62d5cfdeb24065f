package httpcore

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/header"
	"github.com/ghettovoice/httpcore/internal/ioutil"
	"github.com/ghettovoice/httpcore/internal/util"
)

// RequestLine is the start line of a request.
// A nil URI renders as "/". A zero Version is omitted.
type RequestLine struct {
	Method  Method
	URI     *url.URL
	Version header.Version
}

// RenderTo writes the request line without the trailing CRLF.
func (l RequestLine) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(string(l.Method)) //nolint:errcheck
	cw.WriteString(" ")              //nolint:errcheck
	if l.URI != nil {
		cw.WriteString(l.URI.String()) //nolint:errcheck
	} else {
		cw.WriteString("/") //nolint:errcheck
	}
	if !l.Version.IsZero() {
		cw.Fprint(" ", l.Version) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func (l RequestLine) String() string { return render(l.RenderTo) }

// StatusLine is the start line of a response.
// An empty Reason is replaced with the recommended reason phrase of the status.
// A zero Version renders as HTTP/1.1.
type StatusLine struct {
	Status  Status
	Reason  string
	Version header.Version
}

// RenderTo writes the status line without the trailing CRLF.
func (l StatusLine) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	ver := l.Version
	if ver.IsZero() {
		ver = header.Version11
	}
	reason := l.Reason
	if reason == "" {
		reason = l.Status.Reason()
	}
	cw.Fprint(ver, " ", strconv.Itoa(int(l.Status)), " ", reason) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

func (l StatusLine) String() string { return render(l.RenderTo) }

// Request is an HTTP request head.
type Request struct {
	RequestLine RequestLine
	General     header.GeneralHeaders
	Request     header.RequestHeaders
	Entity      header.EntityHeaders
}

// RenderTo writes the request head in wire format: the request line, the header
// fields of the general, request and entity groups, and the terminating empty line.
func (req *Request) RenderTo(w io.Writer) (num int, err error) {
	if req == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(req.RequestLine.RenderTo)
	cw.WriteString(ioutil.CRLF) //nolint:errcheck
	cw.Call(req.General.RenderTo).
		Call(req.Request.RenderTo).
		Call(req.Entity.RenderTo)
	cw.WriteString(ioutil.CRLF) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// String returns the request head in wire format.
func (req *Request) String() string {
	if req == nil {
		return "<nil>"
	}
	return render(req.RenderTo)
}

// Format implements [fmt.Formatter].
// The "%s" and "%v" verbs print the request line, "%+s" and "%+v" print the whole head.
func (req *Request) Format(f fmt.State, verb rune) {
	if req == nil {
		io.WriteString(f, "<nil>") //nolint:errcheck
		return
	}
	formatMessage(f, verb, req.RequestLine.String(), req.String())
}

// LogValue implements [slog.LogValuer].
func (req *Request) LogValue() slog.Value {
	if req == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.String("method", string(req.RequestLine.Method)))
	if req.RequestLine.URI != nil {
		attrs = append(attrs, slog.String("uri", req.RequestLine.URI.String()))
	}
	if !req.RequestLine.Version.IsZero() {
		attrs = append(attrs, slog.String("version", req.RequestLine.Version.String()))
	}
	if req.Request.Host != "" {
		attrs = append(attrs, slog.String("host", req.Request.Host))
	}
	if req.Entity.ContentLength != nil {
		attrs = append(attrs, slog.Uint64("content_length", *req.Entity.ContentLength))
	}
	return slog.GroupValue(attrs...)
}

// Clone returns a deep copy of the request.
func (req *Request) Clone() *Request {
	if req == nil {
		return nil
	}

	req2 := *req
	req2.RequestLine.URI = cloneURL(req.RequestLine.URI)
	req2.General = req.General.Clone()
	req2.Request = req.Request.Clone()
	req2.Entity = req.Entity.Clone()
	return &req2
}

// Response is an HTTP response head.
type Response struct {
	StatusLine StatusLine
	General    header.GeneralHeaders
	Response   header.ResponseHeaders
	Entity     header.EntityHeaders
}

// RenderTo writes the response head in wire format: the status line, the header
// fields of the general, response and entity groups, and the terminating empty line.
func (res *Response) RenderTo(w io.Writer) (num int, err error) {
	if res == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(res.StatusLine.RenderTo)
	cw.WriteString(ioutil.CRLF) //nolint:errcheck
	cw.Call(res.General.RenderTo).
		Call(res.Response.RenderTo).
		Call(res.Entity.RenderTo)
	cw.WriteString(ioutil.CRLF) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// String returns the response head in wire format.
func (res *Response) String() string {
	if res == nil {
		return "<nil>"
	}
	return render(res.RenderTo)
}

// Format implements [fmt.Formatter].
// The "%s" and "%v" verbs print the status line, "%+s" and "%+v" print the whole head.
func (res *Response) Format(f fmt.State, verb rune) {
	if res == nil {
		io.WriteString(f, "<nil>") //nolint:errcheck
		return
	}
	formatMessage(f, verb, res.StatusLine.String(), res.String())
}

// LogValue implements [slog.LogValuer].
func (res *Response) LogValue() slog.Value {
	if res == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.Int("status", int(res.StatusLine.Status)))
	if res.StatusLine.Reason != "" {
		attrs = append(attrs, slog.String("reason", res.StatusLine.Reason))
	}
	if res.Response.Location != nil {
		attrs = append(attrs, slog.String("location", res.Response.Location.String()))
	}
	if len(res.General.TransferEncoding) > 0 {
		attrs = append(attrs, slog.String("transfer_encoding", res.General.TransferEncoding.String()))
	}
	if res.Entity.ContentLength != nil {
		attrs = append(attrs, slog.Uint64("content_length", *res.Entity.ContentLength))
	}
	return slog.GroupValue(attrs...)
}

// Clone returns a deep copy of the response.
func (res *Response) Clone() *Response {
	if res == nil {
		return nil
	}

	res2 := *res
	res2.General = res.General.Clone()
	res2.Response = res.Response.Clone()
	res2.Entity = res.Entity.Clone()
	return &res2
}

func formatMessage(f fmt.State, verb rune, short, full string) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			io.WriteString(f, full) //nolint:errcheck
			return
		}
		io.WriteString(f, short) //nolint:errcheck
	case 'q':
		if f.Flag('+') {
			io.WriteString(f, strconv.Quote(full)) //nolint:errcheck
			return
		}
		io.WriteString(f, strconv.Quote(short)) //nolint:errcheck
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, short)
	}
}

func render(fn func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	fn(sb) //nolint:errcheck
	return sb.String()
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}
