// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the number of records a list endpoint returns when the
// caller does not ask for fewer. It is also the hard ceiling: requests for
// more are clamped so no list response ever exceeds it.
const DefaultLimit = 100

// Window is a limit/offset pair ready for Find().SetLimit/SetSkip.
type Window struct {
	Limit  int64
	Offset int64
}

// Parse extracts "limit" and "offset" query parameters. Missing, invalid,
// or out-of-range values fall back to the defaults (limit=DefaultLimit,
// offset=0).
func Parse(r *http.Request) Window {
	return Window{
		Limit:  parseLimit(r.URL.Query().Get("limit")),
		Offset: parseOffset(r.URL.Query().Get("offset")),
	}
}

func parseLimit(s string) int64 {
	if s == "" {
		return DefaultLimit
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > DefaultLimit {
		return DefaultLimit
	}
	return n
}

func parseOffset(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
