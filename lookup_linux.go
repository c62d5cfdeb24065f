package httpcore

// getaddrinfo error codes of glibc and musl.
const (
	eaiAgain  = -3
	eaiFail   = -4
	eaiNoData = -5
	eaiNoName = -2
)

var lookupCategories = map[int]Category{
	eaiAgain:  ErrTemporaryNameServerFailure,
	eaiFail:   ErrPermanentNameServerFailure,
	eaiNoData: ErrNoNameServerData,
	eaiNoName: ErrHostNotFound,
}
