package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neuronlabs/emodel/config"
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/service/sqlservice"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	_, out, _, err := executeApp(t, args...)
	return out, err
}

func executeApp(t *testing.T, args ...string) (*app, string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	a := &app{}
	cmd := a.rootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := a.execute(cmd)
	return a, out.String(), errOut.String(), err
}

// prepareSQLite creates the sqlite database with the records and the config file using it.
func prepareSQLite(t *testing.T, records ...*entity.Record) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "entity.db")

	db, err := sqlservice.Open(&config.Connection{Path: dbPath})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, sqlservice.Migrate(ctx, db))
	for _, record := range records {
		require.NoError(t, sqlservice.Insert(ctx, db, record, sqlservice.Authorization{Public: true}))
	}
	require.NoError(t, db.Close())

	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("log:\n  level: error\nentitycore:\n  driver: sqlite\n  connection:\n    path: %s\n", dbPath)
	require.NoError(t, ioutil.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

// TestDendritic tests the dendritic command.
func TestDendritic(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "dendritic", "rheobase", "--log-level", "error")
		require.NoError(t, err)

		data := struct {
			Type      string    `json:"type"`
			Distances []float64 `json:"distances"`
			Values    []float64 `json:"values"`
		}{}
		require.NoError(t, json.Unmarshal([]byte(out), &data))
		assert.Equal(t, "rheobase", data.Type)
		require.NotEmpty(t, data.Values)
		assert.InDelta(t, 0.34, data.Values[0], 1e-12)
	})

	t.Run("YAML", func(t *testing.T) {
		out, err := execute(t, "dendritic", "ISI_CV", "-o", "yaml")
		require.NoError(t, err)

		data := map[string]interface{}{}
		require.NoError(t, yaml.Unmarshal([]byte(out), &data))
		assert.Equal(t, "ISI_CV", data["type"])
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := execute(t, "dendritic", "spikes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read_data expects 'ISI_CV' or 'rheobase' but got spikes")
	})

	t.Run("InvalidOutput", func(t *testing.T) {
		_, err := execute(t, "dendritic", "ISI_CV", "-o", "xml")
		require.Error(t, err)
	})
}

// TestResources tests the get and list commands with the sqlite driver.
func TestResources(t *testing.T) {
	emodel := &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindEModel, Name: "L5PC",
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Attributes:   map[string]interface{}{"etype": "cADpyr"},
	}
	trace := &entity.Record{
		ID: entity.ID(uuid.New().String()), Kind: entity.KindTrace, Name: "trace-1",
		CreationDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	configPath := prepareSQLite(t, emodel, trace)

	t.Run("Get", func(t *testing.T) {
		out, err := execute(t, "get", "emodel", string(emodel.ID), "--config", configPath)
		require.NoError(t, err)

		result := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, string(emodel.ID), result["id"])
		assert.Equal(t, "L5PC", result["name"])
		assert.Equal(t, "cADpyr", result["etype"])
	})

	t.Run("GetNotFound", func(t *testing.T) {
		a, _, errOut, err := executeApp(t, "get", "trace", string(emodel.ID), "--config", configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		// the error is printed once, by Execute.
		assert.Empty(t, errOut)
		// the sqlite session is closed on the failure too.
		assert.NotNil(t, a.ap)
		assert.Nil(t, a.closer)
	})

	t.Run("List", func(t *testing.T) {
		out, err := execute(t, "list", "electrical_cell_recording", "--config", configPath, "--page", "1", "--page-size", "10")
		require.NoError(t, err)

		var result []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result, 1)
		assert.Equal(t, string(trace.ID), result[0]["id"])
	})

	t.Run("ListFilter", func(t *testing.T) {
		out, err := execute(t, "list", "emodels", "--config", configPath, "--filter", "etype=bAC")
		require.NoError(t, err)

		var result []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Empty(t, result)
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		_, err := execute(t, "list", "emodel", "--config", configPath, "--filter", "etype__like=x")
		require.Error(t, err)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := execute(t, "get", "morphology", "x", "--config", configPath)
		require.Error(t, err)
	})
}
