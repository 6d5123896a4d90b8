package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNaming tests the naming functions.
func TestNaming(t *testing.T) {
	assert.Equal(t, "creation_date", NamingSnake("CreationDate"))
	assert.Equal(t, "ion_channel_model", NamingSnake("ionChannelModel"))
	assert.Equal(t, "electrical-cell-recording", NamingKebab("electrical_cell_recording"))

	assert.True(t, IsSnake("brain_region_id"))
	assert.True(t, IsSnake("etype2"))
	assert.False(t, IsSnake(""))
	assert.False(t, IsSnake("_hidden"))
	assert.False(t, IsSnake("2name"))
	assert.False(t, IsSnake("name; DROP TABLE entity"))
	assert.False(t, IsSnake("Name"))

	assert.True(t, IsIdentifier("creationDate"))
	assert.True(t, IsIdentifier("brain_region"))
	assert.False(t, IsIdentifier("na me"))
	assert.False(t, IsIdentifier("1st"))
}
