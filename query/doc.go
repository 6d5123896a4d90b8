// Package query defines the descriptors that narrow the resources listing:
// the pagination and the filter with its operators.
//
// The descriptors are owned by the entity services. The access point only
// forwards them. Both can format themselves as the url query parameters.
package query
