// Package httpservice implements the entity services over the EntityCore REST API.
//
// Each resource kind is served under its own route, i.e. '{base}/ion-channel-model/{id}'.
// The session handle is used as the HTTP client when it implements Doer, otherwise
// the provider's default client is used.
package httpservice
