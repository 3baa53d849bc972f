package main

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidInput marks bad or out-of-range coordinates
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnparsableTime marks a time string matching none of the accepted layouts
	ErrUnparsableTime = errors.New("unparsable time")
)

// InputError is a user-facing validation failure. Prefix is printed before Msg.
type InputError struct {
	Kind   error
	Prefix string
	Msg    string
}

func (e *InputError) Error() string { return e.Msg }

// Is lets errors.Is match the error against its kind sentinel
func (e *InputError) Is(target error) bool { return target == e.Kind }

func invalidInput(format string, args ...any) error {
	return &InputError{Kind: ErrInvalidInput, Prefix: "Error: ", Msg: fmt.Sprintf(format, args...)}
}

// promptInputError reports a coordinate line typed at the prompt that could not be read
func promptInputError(msg string) error {
	return &InputError{Kind: ErrInvalidInput, Prefix: "Input error: ", Msg: msg}
}

// HTTPError is a non-2xx response from an upstream service
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// NetworkError wraps a transport failure: DNS, connection or timeout
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// NoDataError reports that the forecast has nothing for the requested time
type NoDataError struct {
	Reason string
}

func (e *NoDataError) Error() string { return e.Reason }

// printError writes the message for a failed run
func printError(w io.Writer, err error) {
	var (
		inputErr  *InputError
		httpErr   *HTTPError
		netErr    *NetworkError
		noDataErr *NoDataError
	)

	switch {
	case errors.As(err, &inputErr):
		fmt.Fprintf(w, "%s%s\n", inputErr.Prefix, inputErr.Msg)
	case errors.As(err, &noDataErr):
		fmt.Fprintln(w, noDataErr.Reason)
	case errors.As(err, &httpErr):
		fmt.Fprintf(w, "HTTP error: %d\n", httpErr.StatusCode)
	case errors.As(err, &netErr):
		fmt.Fprintf(w, "Network error: %v\n", netErr.Err)
	default:
		fmt.Fprintf(w, "Unexpected error: %v\n", err)
	}
}
