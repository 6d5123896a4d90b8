package accesspoint

import (
	"context"

	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/query"
)

// EModel gets the emodel with given 'id'. Returns nil if the emodel could not be fetched.
func (a *AccessPoint) EModel(ctx context.Context, id entity.ID, userCtx entity.UserContext) *entity.Record {
	return a.Fetch(ctx, entity.KindEModel, id, userCtx).Record
}

// EModels lists the emodels matching the 'filter' within the 'pagination'.
// Returns an empty list if the emodels could not be fetched.
func (a *AccessPoint) EModels(ctx context.Context, pagination *query.Pagination, filter *query.Filter, userCtx entity.UserContext) []*entity.Record {
	return a.List(ctx, entity.KindEModel, pagination, filter, userCtx).Records
}

// IonChannel gets the ion channel model with given 'id'. Returns nil if it could not be fetched.
func (a *AccessPoint) IonChannel(ctx context.Context, id entity.ID, userCtx entity.UserContext) *entity.Record {
	return a.Fetch(ctx, entity.KindIonChannel, id, userCtx).Record
}

// IonChannels lists the ion channel models matching the 'filter' within the 'pagination'.
func (a *AccessPoint) IonChannels(ctx context.Context, pagination *query.Pagination, filter *query.Filter, userCtx entity.UserContext) []*entity.Record {
	return a.List(ctx, entity.KindIonChannel, pagination, filter, userCtx).Records
}

// SubcellularModelScript gets the subcellular model script with given 'id'.
func (a *AccessPoint) SubcellularModelScript(ctx context.Context, id entity.ID, userCtx entity.UserContext) *entity.Record {
	return a.Fetch(ctx, entity.KindSubcellularModelScript, id, userCtx).Record
}

// SubcellularModelScripts lists the subcellular model scripts.
func (a *AccessPoint) SubcellularModelScripts(ctx context.Context, pagination *query.Pagination, filter *query.Filter, userCtx entity.UserContext) []*entity.Record {
	return a.List(ctx, entity.KindSubcellularModelScript, pagination, filter, userCtx).Records
}

// ExtractionConfig gets the extraction config with given 'id'.
func (a *AccessPoint) ExtractionConfig(ctx context.Context, id entity.ID, userCtx entity.UserContext) *entity.Record {
	return a.Fetch(ctx, entity.KindExtractionConfig, id, userCtx).Record
}

// ExtractionConfigs lists the extraction configs.
func (a *AccessPoint) ExtractionConfigs(ctx context.Context, pagination *query.Pagination, filter *query.Filter, userCtx entity.UserContext) []*entity.Record {
	return a.List(ctx, entity.KindExtractionConfig, pagination, filter, userCtx).Records
}

// Trace gets the electrophysiology trace with given 'id'.
func (a *AccessPoint) Trace(ctx context.Context, id entity.ID, userCtx entity.UserContext) *entity.Record {
	return a.Fetch(ctx, entity.KindTrace, id, userCtx).Record
}

// Traces lists the electrophysiology traces.
func (a *AccessPoint) Traces(ctx context.Context, pagination *query.Pagination, filter *query.Filter, userCtx entity.UserContext) []*entity.Record {
	return a.List(ctx, entity.KindTrace, pagination, filter, userCtx).Records
}
