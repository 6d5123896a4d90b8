package sqlservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/emodel/config"
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/query"
)

type fixture struct {
	db        *sql.DB
	public    *entity.Record
	private   *entity.Record
	other     *entity.Record
	channel   *entity.Record
	projectID string
}

func prepareDB(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := Open(&config.Connection{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(ctx, db))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{db: db, projectID: uuid.New().String()}

	f.public = &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindEModel, Name: "L5PC cADpyr",
		Description: "layer 5 pyramidal cell", CreationDate: base,
		Attributes: map[string]interface{}{"etype": "cADpyr", "iteration": "1", "score": 42.5, "validated": true},
	}
	f.private = &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindEModel, Name: "L23 bAC",
		CreationDate: base.Add(time.Hour),
		Attributes:   map[string]interface{}{"etype": "bAC", "score": 7, "validated": false},
	}
	f.other = &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindEModel, Name: "hidden",
		CreationDate: base.Add(2 * time.Hour),
	}
	f.channel = &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindIonChannel, Name: "KdShu2007",
		CreationDate: base,
	}

	require.NoError(t, Insert(ctx, db, f.public, Authorization{Public: true}))
	require.NoError(t, Insert(ctx, db, f.private, Authorization{ProjectID: f.projectID}))
	require.NoError(t, Insert(ctx, db, f.other, Authorization{ProjectID: uuid.New().String()}))
	require.NoError(t, Insert(ctx, db, f.channel, Authorization{Public: true}))
	return f
}

// TestReadOne tests reading the single record.
func TestReadOne(t *testing.T) {
	f := prepareDB(t)
	svc := New().Service(entity.KindEModel)
	ctx := context.Background()
	userCtx := entity.TokenContext{ProjectID: f.projectID}

	t.Run("Public", func(t *testing.T) {
		record, err := svc.ReadOne(ctx, nil, f.db, f.public.ID)
		require.NoError(t, err)
		assert.Equal(t, f.public.ID, record.ID)
		assert.Equal(t, entity.KindEModel, record.Kind)
		assert.Equal(t, "L5PC cADpyr", record.Name)
		assert.Equal(t, "layer 5 pyramidal cell", record.Description)
		assert.True(t, f.public.CreationDate.Equal(record.CreationDate))
		assert.Equal(t, "cADpyr", record.Attributes["etype"])
	})

	t.Run("Project", func(t *testing.T) {
		record, err := svc.ReadOne(ctx, userCtx, f.db, f.private.ID)
		require.NoError(t, err)
		assert.Equal(t, f.private.ID, record.ID)
	})

	t.Run("Denied", func(t *testing.T) {
		_, err := svc.ReadOne(ctx, nil, f.db, f.private.ID)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassDenied))

		_, err = svc.ReadOne(ctx, userCtx, f.db, f.other.ID)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassDenied))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.ReadOne(ctx, nil, f.db, entity.ID(uuid.New().String()))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassNotFound))

		// the record of other kind
		_, err = svc.ReadOne(ctx, nil, f.db, f.channel.ID)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassNotFound))
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := svc.ReadOne(ctx, nil, f.db, "not-a-uuid")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, errors.ClassInvalidArgument))
	})

	t.Run("InvalidSession", func(t *testing.T) {
		_, err := svc.ReadOne(ctx, nil, "session", f.public.ID)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassInvalidSession))
	})
}

// TestReadMany tests listing the records.
func TestReadMany(t *testing.T) {
	f := prepareDB(t)
	svc := New().Service(entity.KindEModel)
	ctx := context.Background()
	userCtx := entity.TokenContext{ProjectID: f.projectID}

	ids := func(records []*entity.Record) []entity.ID {
		result := make([]entity.ID, len(records))
		for i, r := range records {
			result[i] = r.ID
		}
		return result
	}

	t.Run("Visibility", func(t *testing.T) {
		records, err := svc.ReadMany(ctx, nil, f.db, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []entity.ID{f.public.ID}, ids(records))

		records, err = svc.ReadMany(ctx, userCtx, f.db, nil, nil, nil, nil)
		require.NoError(t, err)
		// newest first
		assert.Equal(t, []entity.ID{f.private.ID, f.public.ID}, ids(records))
	})

	t.Run("Pagination", func(t *testing.T) {
		records, err := svc.ReadMany(ctx, userCtx, f.db, query.Page(1, 1), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []entity.ID{f.private.ID}, ids(records))

		records, err = svc.ReadMany(ctx, userCtx, f.db, query.Page(2, 1), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []entity.ID{f.public.ID}, ids(records))

		records, err = svc.ReadMany(ctx, userCtx, f.db, query.Page(3, 1), nil, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Filter", func(t *testing.T) {
		tests := map[string]struct {
			filter   *query.Filter
			expected []entity.ID
		}{
			"Attribute": {
				query.NewFilter().Where("etype", query.OpEqual, "bAC"),
				[]entity.ID{f.private.ID},
			},
			"In": {
				query.NewFilter().Where("etype", query.OpIn, "bAC", "cADpyr"),
				[]entity.ID{f.private.ID, f.public.ID},
			},
			"Contains": {
				query.NewFilter().Where("name", query.OpContains, "l5pc"),
				[]entity.ID{f.public.ID},
			},
			"CreationDate": {
				query.NewFilter().Where("creation_date", query.OpGreaterThan, "2024-03-01T12:30:00Z"),
				[]entity.ID{f.private.ID},
			},
			"IsNull": {
				query.NewFilter().Where("iteration", query.OpIsNull),
				[]entity.ID{f.private.ID},
			},
			"NotNull": {
				query.NewFilter().Where("iteration", query.OpIsNull, false),
				[]entity.ID{f.public.ID},
			},
		}

		for name, tc := range tests {
			tc := tc
			t.Run(name, func(t *testing.T) {
				records, err := svc.ReadMany(ctx, userCtx, f.db, nil, tc.filter, nil, nil)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, ids(records))
			})
		}
	})

	t.Run("ParsedAttribute", func(t *testing.T) {
		tests := map[string][]entity.ID{
			"score__gte=40":       {f.public.ID},
			"score__lt=40":        {f.private.ID},
			"score=7":             {f.private.ID},
			"score__in=7,42.5":    {f.private.ID, f.public.ID},
			"validated=true":      {f.public.ID},
			"etype=bAC":           {f.private.ID},
			"score__isnull=false": {f.private.ID, f.public.ID},
		}

		for expr, expected := range tests {
			expr, expected := expr, expected
			t.Run(expr, func(t *testing.T) {
				simple, err := query.ParseFilter(expr)
				require.NoError(t, err)

				records, err := svc.ReadMany(ctx, userCtx, f.db, nil, query.NewFilter(simple), nil, nil)
				require.NoError(t, err)
				assert.Equal(t, expected, ids(records))
			})
		}
	})

	t.Run("Search", func(t *testing.T) {
		records, err := svc.ReadMany(ctx, userCtx, f.db, nil, nil, &entity.Search{Text: "pyramidal"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []entity.ID{f.public.ID}, ids(records))
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		_, err := svc.ReadMany(ctx, userCtx, f.db, nil, query.NewFilter().Where("e type", query.OpEqual, "x"), nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, query.ClassInvalidFilter))
	})

	t.Run("InvalidSession", func(t *testing.T) {
		_, err := svc.ReadMany(ctx, userCtx, nil, nil, nil, nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, entity.ClassInvalidSession))
	})
}

// TestInsert tests inserting invalid records.
func TestInsert(t *testing.T) {
	f := prepareDB(t)
	ctx := context.Background()

	err := Insert(ctx, f.db, &entity.Record{ID: "x", Kind: entity.KindTrace}, Authorization{})
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, errors.ClassInvalidArgument))

	err = Insert(ctx, f.db, &entity.Record{ID: entity.ID(uuid.New().String())}, Authorization{})
	require.Error(t, err)

	// duplicated id
	err = Insert(ctx, f.db, &entity.Record{ID: f.public.ID, Kind: entity.KindEModel}, Authorization{})
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, errors.ClassInternal))
}
