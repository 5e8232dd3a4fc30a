package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger("production", "warn"))
	assert.False(t, GetLogger().Core().Enabled(-1))
	SyncLogger()

	assert.Error(t, InitLogger("development", "loud"))
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing("order-datagen", "")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := StartSpan(context.Background(), "noop")
	span.End()
}

func TestWriteMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.prom")
	RowsGeneratedTotal.Add(3)

	require.NoError(t, WriteMetricsTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generator_rows_generated_total")
	assert.Contains(t, string(data), "generator_cycle_duration_seconds")
}
