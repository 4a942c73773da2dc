package model

import "fmt"

// ResponseError is returned when Xray answers with a non-2xx status
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response from %s %s: %s", e.Method, e.URL, e.Status)
}
