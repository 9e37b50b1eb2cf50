package cli

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("info", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.WithField("dir", "/x").Info("loaded")
	log.Debug("hidden")
	assert.Contains(t, buf.String(), "dir=/x")
	assert.NotContains(t, buf.String(), "hidden")

	_, err = NewLogger("shout", &buf)
	assert.Error(t, err)
}

func TestPrintRootHelpListsCommands(t *testing.T) {
	var buf bytes.Buffer
	PrintRootHelp(&buf)
	for _, cmd := range []string{"ls", "match", "tag get", "workspace", "tabs", "state", "hash", "optimize"} {
		assert.Contains(t, buf.String(), cmd)
	}
}
