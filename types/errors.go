package types

import "encoding/json"

// Error Instead of utilizing HTTP status codes to describe API errors (which often do not have a
// good analog), rich errors are returned using this object. Both the code and message fields can be
// individually used to correctly identify an error.
type Error struct {
	// Code is a service-specific error code. If desired, this code can be equivalent to an HTTP
	// status code.
	Code int32 `json:"code"`
	// Message is a service-specific error message. The message MUST NOT change for a given code. In
	// particular, this means that any contextual information should be included in the details
	// field.
	Message string `json:"message"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Often times it is useful to return context specific to the request that caused the error
	// (i.e. the impacted account or the offending query parameter) in addition to the standard
	// error message.
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	bytes, _ := json.MarshalIndent(e, "", "  ")
	return string(bytes)
}

var (
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	ErrUnsupportedChain = &Error{
		Code:    13, //nolint
		Message: "Unsupported chain",
	}
)

// WrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentially overrwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:      rErr.Code,
		Message:   rErr.Message,
		Retriable: rErr.Retriable,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}
