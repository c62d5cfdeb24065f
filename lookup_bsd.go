//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package httpcore

// getaddrinfo error codes of the BSD family.
const (
	eaiAgain  = 2
	eaiFail   = 4
	eaiNoData = 7
	eaiNoName = 8
)

var lookupCategories = map[int]Category{
	eaiAgain:  ErrTemporaryNameServerFailure,
	eaiFail:   ErrPermanentNameServerFailure,
	eaiNoData: ErrNoNameServerData,
	eaiNoName: ErrHostNotFound,
}
