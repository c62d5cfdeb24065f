package httpcore

import "slices"

// Category is a class of failure.
//
// Categories form a closed tree rooted at [ErrException]. A few HTTP categories
// also descend from [ErrStream]. Category implements error, so categories are used
// directly as [errors.Is] targets: an [*Error] matches its own category and every
// ancestor of it.
type Category uint8

// Failure categories.
const (
	ErrException Category = iota

	ErrStream
	ErrUnexpectedEOF
	ErrWriteBeyondEOF
	ErrBufferOverflow

	ErrNative
	ErrFileNotFound
	ErrBadHandle
	ErrOperationAborted
	ErrBrokenPipe

	ErrSocket
	ErrConnectionAborted
	ErrConnectionReset
	ErrConnectionRefused
	ErrHostDown
	ErrHostUnreachable
	ErrNetworkDown
	ErrNetworkReset
	ErrNetworkUnreachable
	ErrTimedOut

	ErrNameLookup
	ErrTemporaryNameServerFailure
	ErrPermanentNameServerFailure
	ErrNoNameServerData
	ErrHostNotFound

	ErrHTTP
	ErrIncompleteMessageHeader
	ErrBadMessageHeader
	ErrInvalidMessageHeader
	ErrInvalidTransferEncoding
	ErrPriorRequestFailed
	ErrConnectionVoluntarilyClosed
	ErrRedirect
	ErrInvalidResponse

	numCategories
)

var categories = [numCategories]struct {
	name    string
	parents []Category
}{
	ErrException: {"exception", nil},

	ErrStream:         {"stream error", []Category{ErrException}},
	ErrUnexpectedEOF:  {"unexpected EOF", []Category{ErrStream}},
	ErrWriteBeyondEOF: {"write beyond EOF", []Category{ErrStream}},
	ErrBufferOverflow: {"buffer overflow", []Category{ErrStream}},

	ErrNative:           {"native error", []Category{ErrException}},
	ErrFileNotFound:     {"file not found", []Category{ErrNative}},
	ErrBadHandle:        {"bad handle", []Category{ErrNative}},
	ErrOperationAborted: {"operation aborted", []Category{ErrNative}},
	ErrBrokenPipe:       {"broken pipe", []Category{ErrNative}},

	ErrSocket:             {"socket error", []Category{ErrNative}},
	ErrConnectionAborted:  {"connection aborted", []Category{ErrSocket}},
	ErrConnectionReset:    {"connection reset", []Category{ErrSocket}},
	ErrConnectionRefused:  {"connection refused", []Category{ErrSocket}},
	ErrHostDown:           {"host down", []Category{ErrSocket}},
	ErrHostUnreachable:    {"host unreachable", []Category{ErrSocket}},
	ErrNetworkDown:        {"network down", []Category{ErrSocket}},
	ErrNetworkReset:       {"network reset", []Category{ErrSocket}},
	ErrNetworkUnreachable: {"network unreachable", []Category{ErrSocket}},
	ErrTimedOut:           {"timed out", []Category{ErrSocket}},

	ErrNameLookup:                 {"name lookup failed", []Category{ErrSocket}},
	ErrTemporaryNameServerFailure: {"temporary name server failure", []Category{ErrNameLookup}},
	ErrPermanentNameServerFailure: {"permanent name server failure", []Category{ErrNameLookup}},
	ErrNoNameServerData:           {"no name server data", []Category{ErrNameLookup}},
	ErrHostNotFound:               {"host not found", []Category{ErrNameLookup}},

	ErrHTTP:                        {"http error", []Category{ErrException}},
	ErrIncompleteMessageHeader:     {"incomplete message header", []Category{ErrHTTP, ErrStream}},
	ErrBadMessageHeader:            {"bad message header", []Category{ErrHTTP, ErrStream}},
	ErrInvalidMessageHeader:        {"invalid message header", []Category{ErrHTTP, ErrStream}},
	ErrInvalidTransferEncoding:     {"invalid transfer encoding", []Category{ErrInvalidMessageHeader}},
	ErrPriorRequestFailed:          {"prior request failed", []Category{ErrHTTP}},
	ErrConnectionVoluntarilyClosed: {"connection voluntarily closed", []Category{ErrPriorRequestFailed}},
	ErrRedirect:                    {"redirect", []Category{ErrHTTP}},
	ErrInvalidResponse:             {"invalid response", []Category{ErrHTTP}},
}

// Categories returns all failure categories in declaration order.
func Categories() []Category {
	cs := make([]Category, numCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool { return c < numCategories }

// Parents returns the direct ancestors of the category.
func (c Category) Parents() []Category {
	if !c.IsValid() {
		return nil
	}
	return slices.Clone(categories[c].parents)
}

// Within reports whether c is the ancestor category or descends from it.
func (c Category) Within(ancestor Category) bool {
	if c == ancestor {
		return true
	}
	if !c.IsValid() {
		return false
	}
	for _, p := range categories[c].parents {
		if p.Within(ancestor) {
			return true
		}
	}
	return false
}

// Is reports whether target is a category that c falls within.
func (c Category) Is(target error) bool {
	t, ok := target.(Category)
	return ok && c.Within(t)
}

func (c Category) Error() string { return c.String() }

func (c Category) String() string {
	if !c.IsValid() {
		return "unknown error"
	}
	return categories[c].name
}
