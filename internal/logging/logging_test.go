// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Logging tests

package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sony-level/stackprobe/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	logging.New(&quiet, false).Debug("hidden")
	logging.New(&verbose, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "msg=shown")
	assert.Contains(t, verbose.String(), "system=stackprobe")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer

	logging.Component(logging.New(&buf, false), "scanner").Info("walk done")
	assert.Contains(t, buf.String(), "component=scanner")

	assert.NotPanics(t, func() { logging.Component(nil, "analyzer").Info("dropped") })
}
