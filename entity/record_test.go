package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordUnmarshalJSON tests decoding the service records.
func TestRecordUnmarshalJSON(t *testing.T) {
	data := `{
		"id": "1b0e6d3a-4c1f-4f5e-9d55-6c1a3f6f1c01",
		"name": "L5_TPC:B_cAC",
		"description": "thick tufted pyramidal cell",
		"creation_date": "2024-05-02T10:11:12Z",
		"etype": "cADpyr",
		"iteration": "1372346",
		"score": 42.5
	}`

	r := &Record{}
	require.NoError(t, json.Unmarshal([]byte(data), r))

	assert.Equal(t, ID("1b0e6d3a-4c1f-4f5e-9d55-6c1a3f6f1c01"), r.ID)
	assert.Equal(t, "L5_TPC:B_cAC", r.Name)
	assert.Equal(t, "thick tufted pyramidal cell", r.Description)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 11, 12, 0, time.UTC), r.CreationDate)
	assert.Equal(t, map[string]interface{}{"etype": "cADpyr", "iteration": "1372346", "score": 42.5}, r.Attributes)

	t.Run("Map", func(t *testing.T) {
		m := r.Map()
		assert.Equal(t, "1b0e6d3a-4c1f-4f5e-9d55-6c1a3f6f1c01", m["id"])
		assert.Equal(t, "2024-05-02T10:11:12Z", m["creation_date"])
		assert.Equal(t, "cADpyr", m["etype"])
	})

	t.Run("InvalidDate", func(t *testing.T) {
		err := json.Unmarshal([]byte(`{"id": "x", "creation_date": "yesterday"}`), &Record{})
		assert.Error(t, err)
	})
}
