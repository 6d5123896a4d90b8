package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/emodel/errors"
)

// TestModuleLogger tests the module logger with its own logger.
func TestModuleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewModuleLogger("testing", NewBasicLogger(buf, "", 0))
	require.NotNil(t, m)

	t.Run("Prefix", func(t *testing.T) {
		buf.Reset()
		m.SetLevel(LDEBUG)

		m.Errorf("failed: %s", "reason")
		assert.Contains(t, buf.String(), "[testing] failed: reason")
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		buf.Reset()
		m.SetLevel(LERROR)
		assert.Equal(t, LERROR, m.Level())

		m.Debugf("debug %d", 1)
		m.Infof("info %d", 2)
		m.Warningf("warning %d", 3)
		assert.Empty(t, buf.String())

		m.Errorf("error %d", 4)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 1)
	})
}

// TestParseLevel tests the level parsing.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LDEBUG, ParseLevel("debug"))
	assert.Equal(t, LWARNING, ParseLevel("WARNING"))
	assert.Equal(t, LWARNING, ParseLevel(" warn "))
	assert.Equal(t, LERROR, ParseLevel("Error"))
	assert.Equal(t, LUNKNOWN, ParseLevel("verbose"))
}

// TestSetLevel tests setting the process logger level.
func TestSetLevel(t *testing.T) {
	defer func() { require.NoError(t, SetLevel(LINFO)) }()

	err := SetLevel(LUNKNOWN)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, ClassUnknownLevel))

	require.NoError(t, SetLevel(LWARNING))
	assert.Equal(t, LWARNING, Level())
}
