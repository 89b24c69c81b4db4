package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, true)

	logger.Debug("search finished", zap.Int("spans", 3))
	_ = logger.Sync()

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "textindices")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, `"spans": 3`)
}

func TestNewDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, false)

	logger.Debug("search finished")
	logger.Error("something failed")
	_ = logger.Sync()

	assert.Empty(t, buf.String())
}
