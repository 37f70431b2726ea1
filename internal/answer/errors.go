package answer

import "fmt"

// FetchFailedMessage is shown to the user for any non-2xx upstream response.
const FetchFailedMessage = "Failed to fetch data"

// StatusError is returned when the upstream responded outside of the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// TransportError is returned when the request could not be completed.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a 2xx body cannot be decoded into a Record.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json.Unmarshal(%s) > %v", e.Body, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
