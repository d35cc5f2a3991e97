package dispatch

import (
	"fmt"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// RequestError reports a transport-level failure (connection refused,
// timeout, DNS) on a marketplace request. A response with a non-2xx status
// is not a RequestError.
type RequestError struct {
	Marketplace domain.Marketplace
	Method      string
	URL         string
	Err         error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request %s %s failed: %v", e.Marketplace, e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
