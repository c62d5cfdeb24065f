package httpcore

import "strconv"

// Status is an HTTP response status code.
type Status uint16

// Status codes defined by RFC 2616 §10.
const (
	StatusContinue           Status = 100
	StatusSwitchingProtocols Status = 101

	StatusOK                          Status = 200
	StatusCreated                     Status = 201
	StatusAccepted                    Status = 202
	StatusNonAuthoritativeInformation Status = 203
	StatusNoContent                   Status = 204
	StatusResetContent                Status = 205
	StatusPartialContent              Status = 206

	StatusMultipleChoices   Status = 300
	StatusMovedPermanently  Status = 301
	StatusFound             Status = 302
	StatusSeeOther          Status = 303
	StatusNotModified       Status = 304
	StatusUseProxy          Status = 305
	StatusTemporaryRedirect Status = 307

	StatusBadRequest                   Status = 400
	StatusUnauthorized                 Status = 401
	StatusPaymentRequired              Status = 402
	StatusForbidden                    Status = 403
	StatusNotFound                     Status = 404
	StatusMethodNotAllowed             Status = 405
	StatusNotAcceptable                Status = 406
	StatusProxyAuthenticationRequired  Status = 407
	StatusRequestTimeout               Status = 408
	StatusConflict                     Status = 409
	StatusGone                         Status = 410
	StatusLengthRequired               Status = 411
	StatusPreconditionFailed           Status = 412
	StatusRequestEntityTooLarge        Status = 413
	StatusRequestURITooLong            Status = 414
	StatusUnsupportedMediaType         Status = 415
	StatusRequestedRangeNotSatisfiable Status = 416
	StatusExpectationFailed            Status = 417

	StatusInternalServerError     Status = 500
	StatusNotImplemented          Status = 501
	StatusBadGateway              Status = 502
	StatusServiceUnavailable      Status = 503
	StatusGatewayTimeout          Status = 504
	StatusHTTPVersionNotSupported Status = 505
)

var reasons = map[Status]string{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",

	StatusOK:                          "OK",
	StatusCreated:                     "Created",
	StatusAccepted:                    "Accepted",
	StatusNonAuthoritativeInformation: "Non-Authoritative Information",
	StatusNoContent:                   "No Content",
	StatusResetContent:                "Reset Content",
	StatusPartialContent:              "Partial Content",

	StatusMultipleChoices:   "Multiple Choices",
	StatusMovedPermanently:  "Moved Permanently",
	StatusFound:             "Found",
	StatusSeeOther:          "See Other",
	StatusNotModified:       "Not Modified",
	StatusUseProxy:          "Use Proxy",
	StatusTemporaryRedirect: "Temporary Redirect",

	StatusBadRequest:                   "Bad Request",
	StatusUnauthorized:                 "Unauthorized",
	StatusPaymentRequired:              "Payment Required",
	StatusForbidden:                    "Forbidden",
	StatusNotFound:                     "Not Found",
	StatusMethodNotAllowed:             "Method Not Allowed",
	StatusNotAcceptable:                "Not Acceptable",
	StatusProxyAuthenticationRequired:  "Proxy Authentication Required",
	StatusRequestTimeout:               "Request Time-out",
	StatusConflict:                     "Conflict",
	StatusGone:                         "Gone",
	StatusLengthRequired:               "Length Required",
	StatusPreconditionFailed:           "Precondition Failed",
	StatusRequestEntityTooLarge:        "Request Entity Too Large",
	StatusRequestURITooLong:            "Request-URI Too Large",
	StatusUnsupportedMediaType:         "Unsupported Media Type",
	StatusRequestedRangeNotSatisfiable: "Requested range not satisfiable",
	StatusExpectationFailed:            "Expectation Failed",

	StatusInternalServerError:     "Internal Server Error",
	StatusNotImplemented:          "Not Implemented",
	StatusBadGateway:              "Bad Gateway",
	StatusServiceUnavailable:      "Service Unavailable",
	StatusGatewayTimeout:          "Gateway Time-out",
	StatusHTTPVersionNotSupported: "HTTP Version not supported",
}

// Reason returns the reason phrase recommended by RFC 2616 for the status,
// or an empty string for an unknown status.
func (s Status) Reason() string { return reasons[s] }

func (s Status) IsInformational() bool { return s >= 100 && s < 200 }

func (s Status) IsSuccessful() bool { return s >= 200 && s < 300 }

func (s Status) IsRedirection() bool { return s >= 300 && s < 400 }

func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

func (s Status) IsServerError() bool { return s >= 500 && s < 600 }

// IsValid reports whether the status is a three-digit code.
func (s Status) IsValid() bool { return s >= 100 && s < 1000 }

func (s Status) String() string {
	if r := s.Reason(); r != "" {
		return strconv.Itoa(int(s)) + " " + r
	}
	return strconv.Itoa(int(s))
}
