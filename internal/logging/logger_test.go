package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WritesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Component: ComponentStore, Output: &buf})

	logger.Info("records loaded", FieldCount, 3)

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "records loaded")
	assert.Equal(t, ComponentStore, logger.Component())
}

func TestNew_DefaultsComponent(t *testing.T) {
	logger := New(Config{Output: &bytes.Buffer{}})
	assert.Equal(t, ComponentApp, logger.Component())
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf}).WithComponent(ComponentCLI)

	logger.Warn("careful")

	assert.Contains(t, buf.String(), "component=cli")
	assert.Equal(t, ComponentCLI, logger.Component())
}

func TestLogger_Operation(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Output: &buf})

	logger.Operation(context.Background(), "add_record", nil, FieldRecordID, "abc")
	assert.Contains(t, buf.String(), "operation completed")
	assert.Contains(t, buf.String(), "record_id=abc")

	buf.Reset()
	logger.Operation(context.Background(), "add_record", errors.New("disk full"))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "operation failed")
	assert.Contains(t, buf.String(), "disk full")
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestLogger_OperationFailureHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	logger.Operation(context.Background(), "kv.set", errors.New("disk full"))

	assert.Empty(t, buf.String())
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	logger.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("OT_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("OT_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestDebugf_RoutesThroughDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	defer slog.SetDefault(previous)
	SetDefault(New(Config{Level: slog.LevelDebug, Output: &buf}))

	t.Setenv("OT_DEBUG", "")
	Debugf("skipped %d\n", 1)
	assert.Empty(t, buf.String())

	t.Setenv("OT_DEBUG", "1")
	Debugf("migrated %d rows\n", 2)
	Debugln("done")
	assert.Contains(t, buf.String(), "migrated 2 rows")
	assert.Contains(t, buf.String(), "done")
}

func TestSetVerbose_AdjustsDefaultLoggers(t *testing.T) {
	t.Setenv("OT_DEBUG", "")
	defer SetVerbose(false)

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf
	logger := New(cfg)

	SetVerbose(false)
	logger.Debug("quiet")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	logger.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}
