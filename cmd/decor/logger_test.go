package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualHandler(t *testing.T) {
	var core, errs bytes.Buffer

	log := slog.New(&dualHandler{
		coreHandler:  slog.NewTextHandler(&core, &slog.HandlerOptions{Level: slog.LevelDebug}),
		errorHandler: slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	}).With(slog.String("op", "test"))

	log.Info("line item updated")
	log.Error("update failed")

	assert.Contains(t, core.String(), "line item updated")
	assert.Contains(t, core.String(), "update failed")
	assert.NotContains(t, errs.String(), "line item updated")
	assert.Contains(t, errs.String(), "update failed")
	assert.Contains(t, errs.String(), "op=test")
}

func TestNewCoreHandler(t *testing.T) {
	var buf bytes.Buffer

	slog.New(newCoreHandler(envDev, &buf)).Debug("hello", slog.Int("n", 1))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])

	buf.Reset()
	slog.New(newCoreHandler(envProd, &buf)).Debug("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	slog.New(newCoreHandler(envLocal, &buf)).Info("shown")
	assert.True(t, strings.Contains(buf.String(), "msg=shown"))
}
