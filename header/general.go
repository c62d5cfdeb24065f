package header

import (
	"io"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
)

// GeneralHeaders holds the general header fields (RFC 2616 §4.5)
// that apply to both requests and responses.
type GeneralHeaders struct {
	Connection       Tokens
	Date             time.Time
	ProxyConnection  Tokens
	TransferEncoding ParamList
	Trailer          Tokens
	Upgrade          ProductList
}

// IsChunked reports whether the last applied transfer coding is chunked.
func (h GeneralHeaders) IsChunked() bool {
	return len(h.TransferEncoding) > 0 && h.TransferEncoding[len(h.TransferEncoding)-1:].Has("chunked")
}

// RenderTo writes the present fields as header lines.
func (h GeneralHeaders) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if len(h.Connection) > 0 {
		cw.Line("Connection", h.Connection.String())
	}
	if !h.Date.IsZero() {
		cw.Line("Date", FormatDate(h.Date))
	}
	if len(h.ProxyConnection) > 0 {
		cw.Line("Proxy-Connection", h.ProxyConnection.String())
	}
	if len(h.TransferEncoding) > 0 {
		cw.Line("Transfer-Encoding", h.TransferEncoding.String())
	}
	if len(h.Trailer) > 0 {
		cw.Line("Trailer", h.Trailer.String())
	}
	if len(h.Upgrade) > 0 {
		cw.Line("Upgrade", h.Upgrade.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (h GeneralHeaders) String() string { return renderString(h.RenderTo) }

func (h GeneralHeaders) Clone() GeneralHeaders {
	h.Connection = h.Connection.Clone()
	h.ProxyConnection = h.ProxyConnection.Clone()
	h.TransferEncoding = h.TransferEncoding.Clone()
	h.Trailer = h.Trailer.Clone()
	h.Upgrade = h.Upgrade.Clone()
	return h
}
