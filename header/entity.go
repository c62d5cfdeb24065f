package header

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpcore/internal/ioutil"
)

// EntityHeaders holds the entity header fields (RFC 2616 §7.1).
// Extension holds any other header fields in insertion order; they are rendered verbatim.
type EntityHeaders struct {
	ContentEncoding []string
	ContentLength   *uint64
	ContentRange    *ContentRange
	ContentType     MediaType
	Expires         time.Time
	LastModified    time.Time
	Extension       Params
}

// RenderTo writes the present fields as header lines.
func (h EntityHeaders) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if len(h.ContentEncoding) > 0 {
		cw.Line("Content-Encoding", strings.Join(h.ContentEncoding, ", "))
	}
	if h.ContentLength != nil {
		cw.Line("Content-Length", strconv.FormatUint(*h.ContentLength, 10))
	}
	if h.ContentRange != nil {
		cw.Line("Content-Range", h.ContentRange.String())
	}
	if !h.ContentType.IsZero() {
		cw.Line("Content-Type", h.ContentType.String())
	}
	if !h.Expires.IsZero() {
		cw.Line("Expires", FormatDate(h.Expires))
	}
	if !h.LastModified.IsZero() {
		cw.Line("Last-Modified", FormatDate(h.LastModified))
	}
	for _, p := range h.Extension {
		cw.Line(p.Name, p.Value)
	}
	return errtrace.Wrap2(cw.Result())
}

func (h EntityHeaders) String() string { return renderString(h.RenderTo) }

func (h EntityHeaders) Clone() EntityHeaders {
	h.ContentEncoding = slices.Clone(h.ContentEncoding)
	h.ContentLength = clonePtr(h.ContentLength)
	h.ContentRange = clonePtr(h.ContentRange)
	h.ContentType = h.ContentType.Clone()
	h.Extension = h.Extension.Clone()
	return h
}
