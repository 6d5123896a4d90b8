// Package entity defines the contract of the external entity management service:
// the resource kinds, the records it returns, the user context and session handles
// it is called with and the errors it classifies its failures with.
package entity
