// Package errors provides lightweight error handling and classification primitives.
//
// Every error created by this package carries a Class composed of the major, minor
// and index subclassifications. A class is comparable, so callers may react on the
// kind of failure without parsing messages. Packages declare their classes in
// their own 'classes.go' file, using the MustNew* registration functions.
package errors
