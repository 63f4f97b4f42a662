package fac

import (
	"errors"
	"fmt"
)

// TransportError is returned when the gateway answers with a status other
// than 200 OK
type TransportError struct {
	StatusCode int
	Reason     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway returned %d %s", e.StatusCode, e.Reason)
}

// ErrEmptyResponse is returned when a 200 response carries no XML document
var ErrEmptyResponse = errors.New("empty response document")

// ErrTrailingContent is returned when a response has more than one root
// element or text outside the root
var ErrTrailingContent = errors.New("content outside the root element")
