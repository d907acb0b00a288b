package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
)

func TestSetLevel(t *testing.T) {
	err := SetLevel(LUNKNOWN)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.CommonLoggerUnknownLevel))

	require.NoError(t, SetLevel(LDEBUG))
	assert.Equal(t, LDEBUG, Level())
}

func TestNoLoggerIsNoop(t *testing.T) {
	require.Nil(t, Logger())
	require.NotPanics(t, func() {
		Debug("nothing")
		Infof("still %s", "nothing")
		Error("nothing at all")
	})
}

func TestNewWritesOutput(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", 0)
	defer SetLogger(nil)

	require.NoError(t, SetLevel(LINFO))
	Infof("model constructed for table: '%s'", "users")
	assert.Contains(t, buf.String(), "model constructed for table: 'users'")
}
