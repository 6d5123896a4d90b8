package errors

import (
	"errors"
)

// IsClass checks if given error or any error it wraps is of given 'class'.
func IsClass(err error, class Class) bool {
	for err != nil {
		if classError, ok := err.(ClassError); ok && classError.Class() == class {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsMajor checks if given error or any error it wraps is classified within the major 'm'.
func IsMajor(err error, m Major) bool {
	for err != nil {
		if classError, ok := err.(ClassError); ok && classError.Class().Major() == m {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// ClassOf gets the class of the first classified error in the chain.
func ClassOf(err error) (Class, bool) {
	var classError ClassError
	if errors.As(err, &classError) {
		return classError.Class(), true
	}
	return 0, false
}
