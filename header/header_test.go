package header_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/httpcore/header"
	"github.com/ghettovoice/httpcore/internal/testutil/iomock"
)

var testDate = time.Date(1994, time.November, 6, 8, 49, 37, 0, time.FixedZone("EET", 2*3600))

func TestGeneralHeaders_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdrs header.GeneralHeaders
		want string
	}{
		{"zero", header.GeneralHeaders{}, ""},
		{
			"full",
			header.GeneralHeaders{
				Connection:       header.NewTokens("Upgrade", "close"),
				Date:             testDate,
				ProxyConnection:  header.NewTokens("keep-alive"),
				TransferEncoding: header.ParamList{{Value: "gzip"}, {Value: "chunked"}},
				Trailer:          header.NewTokens("Expires"),
				Upgrade:          header.ProductList{{Name: "HTTP", Version: "2.0"}},
			},
			"Connection: close, Upgrade\r\n" +
				"Date: Sun, 06 Nov 1994 06:49:37 GMT\r\n" +
				"Proxy-Connection: keep-alive\r\n" +
				"Transfer-Encoding: gzip, chunked\r\n" +
				"Trailer: Expires\r\n" +
				"Upgrade: HTTP/2.0\r\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdrs.String(); got != c.want {
				t.Errorf("hdrs.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestGeneralHeaders_IsChunked(t *testing.T) {
	t.Parallel()

	cases := []struct {
		te   header.ParamList
		want bool
	}{
		{nil, false},
		{header.ParamList{{Value: "chunked"}}, true},
		{header.ParamList{{Value: "gzip"}, {Value: "Chunked"}}, true},
		{header.ParamList{{Value: "chunked"}, {Value: "gzip"}}, false},
	}

	for _, c := range cases {
		if got := (header.GeneralHeaders{TransferEncoding: c.te}).IsChunked(); got != c.want {
			t.Errorf("GeneralHeaders{TransferEncoding: %q}.IsChunked() = %v, want %v", c.te, got, c.want)
		}
	}
}

func TestRequestHeaders_String(t *testing.T) {
	t.Parallel()

	hdrs := header.RequestHeaders{
		AcceptCharset:     header.AcceptList{{Value: "utf-8"}, {Value: "*", Q: header.Q(100)}},
		AcceptEncoding:    header.AcceptList{{Value: "gzip", Q: header.Q(1000)}, {Value: "identity", Q: header.Q(0)}},
		Authorization:     header.AuthParams{Scheme: "Basic", Base64: "dXNlcjpwYXNz"},
		Expect:            header.ParamKeyValueList{{Key: "100-continue"}},
		Host:              "example.com:8080",
		IfMatch:           header.NewETagSet(header.ETag{Value: "b"}, header.ETag{Value: "a"}),
		IfModifiedSince:   testDate,
		IfNoneMatch:       header.NewETagSet(header.AnyETag),
		IfRange:           header.IfRange{ETag: &header.ETag{Value: "v", Weak: true}},
		IfUnmodifiedSince: testDate.Add(time.Hour),
		ProxyAuthorization: header.AuthParams{
			Scheme: "Digest",
			Params: header.Params{{"username", "Mufasa"}, {"realm", "testrealm@host.com"}},
		},
		Range:     header.RangeSet{{First: 0, Last: 99}},
		Referer:   &url.URL{Scheme: "http", Host: "example.com", Path: "/index.html"},
		TE:        header.AcceptListWithParams{{Value: "trailers"}, {Value: "deflate", Q: header.Q(500)}},
		UserAgent: header.ProductsAndComments{header.Product{Name: "curl", Version: "8.0"}, header.Comment("linux")},
	}
	want := "Accept-Charset: utf-8, *;q=0.1\r\n" +
		"Accept-Encoding: gzip;q=1, identity;q=0\r\n" +
		"Authorization: Basic dXNlcjpwYXNz\r\n" +
		"Expect: 100-continue\r\n" +
		"Host: example.com:8080\r\n" +
		"If-Match: \"a\", \"b\"\r\n" +
		"If-Modified-Since: Sun, 06 Nov 1994 06:49:37 GMT\r\n" +
		"If-None-Match: *\r\n" +
		"If-Range: W/\"v\"\r\n" +
		"If-Unmodified-Since: Sun, 06 Nov 1994 07:49:37 GMT\r\n" +
		"Proxy-Authorization: Digest username=Mufasa, realm=\"testrealm@host.com\"\r\n" +
		"Range: bytes=0-99\r\n" +
		"Referer: http://example.com/index.html\r\n" +
		"TE: trailers, deflate;q=0.5\r\n" +
		"User-Agent: curl/8.0 (linux)\r\n"

	if got := hdrs.String(); got != want {
		t.Errorf("hdrs.String() = %q, want %q", got, want)
	}
	if got := (header.RequestHeaders{Host: "example.com"}).String(); got != "Host: example.com\r\n" {
		t.Errorf("RequestHeaders{Host}.String() = %q, want %q", got, "Host: example.com\r\n")
	}
}

func TestResponseHeaders_String(t *testing.T) {
	t.Parallel()

	hdrs := header.ResponseHeaders{
		AcceptRanges:      header.NewTokens("bytes"),
		ETag:              &header.ETag{Value: "xyzzy"},
		Location:          &url.URL{Scheme: "https", Host: "example.com", Path: "/new"},
		ProxyAuthenticate: header.ChallengeList{{Scheme: "Basic", Params: header.Params{{"realm", "proxy"}}}},
		RetryAfter:        header.RetryAfter{Seconds: header.Ptr[uint64](120)},
		Server:            header.ProductsAndComments{header.Product{Name: "Apache"}},
		WWWAuthenticate: header.ChallengeList{
			{Scheme: "Negotiate"},
			{Scheme: "Basic", Params: header.Params{{"realm", "my realm"}}},
		},
	}
	want := "Accept-Ranges: bytes\r\n" +
		"ETag: \"xyzzy\"\r\n" +
		"Location: https://example.com/new\r\n" +
		"Proxy-Authenticate: Basic realm=proxy\r\n" +
		"Retry-After: 120\r\n" +
		"Server: Apache\r\n" +
		"WWW-Authenticate: Negotiate, Basic realm=\"my realm\"\r\n"

	if got := hdrs.String(); got != want {
		t.Errorf("hdrs.String() = %q, want %q", got, want)
	}
	if got := (header.ResponseHeaders{}).String(); got != "" {
		t.Errorf("ResponseHeaders{}.String() = %q, want \"\"", got)
	}
}

func TestEntityHeaders_String(t *testing.T) {
	t.Parallel()

	hdrs := header.EntityHeaders{
		ContentEncoding: []string{"gzip"},
		ContentLength:   header.Ptr[uint64](0),
		ContentRange:    &header.ContentRange{First: 0, Last: 99, Length: 1000},
		ContentType:     header.MediaType{Type: "text", Subtype: "plain", Params: header.Params{{"charset", "utf-8"}}},
		Expires:         testDate,
		LastModified:    testDate,
		Extension:       header.Params{{"X-Request-Id", "abc"}, {"X-Trace", "1 2"}},
	}
	want := "Content-Encoding: gzip\r\n" +
		"Content-Length: 0\r\n" +
		"Content-Range: bytes 0-99/1000\r\n" +
		"Content-Type: text/plain;charset=utf-8\r\n" +
		"Expires: Sun, 06 Nov 1994 06:49:37 GMT\r\n" +
		"Last-Modified: Sun, 06 Nov 1994 06:49:37 GMT\r\n" +
		"X-Request-Id: abc\r\n" +
		"X-Trace: 1 2\r\n"

	if got := hdrs.String(); got != want {
		t.Errorf("hdrs.String() = %q, want %q", got, want)
	}
}

func TestHeaders_Clone(t *testing.T) {
	t.Parallel()

	req := header.RequestHeaders{
		AcceptEncoding: header.AcceptList{{Value: "gzip"}},
		Referer:        &url.URL{Scheme: "http", Host: "a.example"},
		TE:             header.AcceptListWithParams{{Value: "deflate", Params: header.Params{{"level", "1"}}}},
		IfRange:        header.IfRange{ETag: &header.ETag{Value: "v"}},
	}
	reqClone := req.Clone()
	if diff := cmp.Diff(reqClone, req); diff != "" {
		t.Fatalf("req.Clone() differs from original\ndiff (-got +want):\n%v", diff)
	}
	reqClone.AcceptEncoding[0].Value = "br"
	reqClone.Referer.Host = "b.example"
	reqClone.TE[0].Params[0].Value = "9"
	reqClone.IfRange.ETag.Value = "w"
	if req.AcceptEncoding[0].Value != "gzip" || req.Referer.Host != "a.example" ||
		req.TE[0].Params[0].Value != "1" || req.IfRange.ETag.Value != "v" {
		t.Errorf("modifying the clone changed the original: %+v", req)
	}

	ent := header.EntityHeaders{ContentLength: header.Ptr[uint64](10), Extension: header.Params{{"X-A", "1"}}}
	entClone := ent.Clone()
	*entClone.ContentLength = 20
	entClone.Extension[0].Value = "2"
	if *ent.ContentLength != 10 || ent.Extension[0].Value != "1" {
		t.Errorf("modifying the clone changed the original: %+v", ent)
	}

	res := header.ResponseHeaders{ETag: &header.ETag{Value: "x"}, Location: &url.URL{Path: "/a"}}
	resClone := res.Clone()
	resClone.ETag.Weak = true
	resClone.Location.Path = "/b"
	if res.ETag.Weak || res.Location.Path != "/a" {
		t.Errorf("modifying the clone changed the original: %+v", res)
	}
}

func TestHeaders_RenderTo_Error(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("write failed")
	ctrl := gomock.NewController(t)
	w := iomock.NewMockWriter(ctrl)
	gomock.InOrder(
		w.EXPECT().Write([]byte("Host: example.com\r\n")).Return(19, nil),
		w.EXPECT().Write([]byte("Range: bytes=0-\r\n")).Return(5, errWrite),
	)

	hdrs := header.RequestHeaders{
		Host:      "example.com",
		Range:     header.RangeSet{{Open: true}},
		UserAgent: header.ProductsAndComments{header.Product{Name: "never-written"}},
	}
	num, err := hdrs.RenderTo(w)
	if !errors.Is(err, errWrite) {
		t.Errorf("hdrs.RenderTo(w) error = %v, want %v", err, errWrite)
	}
	if num != 24 {
		t.Errorf("hdrs.RenderTo(w) = %d, want 24", num)
	}
}
