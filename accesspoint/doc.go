// Package accesspoint provides the uniform access to the emodel related resources
// stored in the external entity service.
//
// An AccessPoint is constructed with the session handle and a service for each
// resource kind. For each kind it exposes a get-one and a get-many operation that
// never fail: any service failure is logged and reported as a nil record or an
// empty list. Callers that need to know why a call failed use Fetch and List, which
// return the same values tagged with the Outcome of the call.
//
// The failures are logged with the '[accesspoint]' module logger. Unless the
// WithLogger option is given it writes through the process logger of the log
// package, which writes to os.Stderr until it is replaced with log.New or log.SetLogger.
//
// Example:
//
//	ap := accesspoint.New(db, accesspoint.WithProvider(sqlservice.New()))
//	emodel := ap.EModel(ctx, emodelID, entity.TokenContext{Token: token})
package accesspoint
