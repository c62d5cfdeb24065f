package httpcore

import (
	"syscall"
)

// FromErrno classifies a native error code.
// Codes without a specific category result in [ErrNative] with the code preserved.
func FromErrno(code syscall.Errno) *Error {
	return newErrnoError(code, "")
}

// FromErrnoAPI is like [FromErrno] and also records the name of the failed call.
func FromErrnoAPI(code syscall.Errno, api string) *Error {
	return newErrnoError(code, api)
}

func newErrnoError(code syscall.Errno, api string) *Error {
	c, ok := errnoCategories[code]
	if !ok {
		c = ErrNative
	}
	e := newError(c, "", nil)
	e.Errno = code
	e.API = api
	return e
}

// FromLookupCode classifies a name resolution error code
// (getaddrinfo EAI_* on Unix, WSA name errors on Windows).
// Codes without a specific category result in [ErrNameLookup] with the code preserved.
func FromLookupCode(code int) *Error {
	c, ok := lookupCategories[code]
	if !ok {
		c = ErrNameLookup
	}
	e := newError(c, "", nil)
	e.LookupCode = code
	return e
}
