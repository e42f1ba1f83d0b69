package github

import "fmt"

// UnexpectedStatusError is returned when an API call answers with a status
// code other than the one the endpoint contract promises. It carries the raw
// response body for diagnostics.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}
