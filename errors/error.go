package errors

import (
	"fmt"
)

// compile time check for the SimpleError.
var _ ClassError = &SimpleError{}

// SimpleError is the lightweight classified error without the instance identification.
type SimpleError struct {
	Classification Class
	Message        string
}

// New creates new SimpleError with given 'class' and message 'message'.
func New(c Class, message string) *SimpleError {
	return &SimpleError{Classification: c, Message: message}
}

// Newf creates new SimpleError with provided 'class' and formatted message.
func Newf(c Class, format string, args ...interface{}) *SimpleError {
	return &SimpleError{Classification: c, Message: fmt.Sprintf(format, args...)}
}

// Class implements ClassError interface.
func (e *SimpleError) Class() Class {
	return e.Classification
}

// Error implements error interface.
func (e *SimpleError) Error() string {
	return e.Message
}
