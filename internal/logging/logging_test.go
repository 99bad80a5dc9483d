package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.With("component", "library").Info(ctx, "saved", "id", "42")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=saved")
	assert.Contains(t, out, "component=library")
	assert.Contains(t, out, "id=42")
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug(context.Background(), "shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
