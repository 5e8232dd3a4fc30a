package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"order-datagen/internal/dataset"
	"order-datagen/internal/generator"
	"order-datagen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = generator.Window{
	Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC),
}

// tickingClock advances one second per call so every cycle gets its own file name
func tickingClock() func() time.Time {
	at := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func newWorker(t *testing.T, dir string, interval time.Duration, publisher *fakePublisher) *GenerationWorker {
	t.Helper()
	stream := generator.NewStream(42)
	synth, err := generator.NewSynthesizer(generator.BuildVocabulary(stream), window, generator.ModeUniform)
	require.NoError(t, err)

	m := dataset.NewMaterializer(synth, stream, 1).WithClock(tickingClock())
	writer := dataset.NewWriter(dir, "acme", dataset.FormatCSV, dataset.CompressionNone)
	opts := Options{
		Rows:         3,
		Interval:     interval,
		SourceName:   "acme",
		Window:       window,
		Distribution: generator.ModeUniform,
	}
	// a typed nil pointer would make the interface non-nil
	if publisher == nil {
		return NewGenerationWorker(m, writer, nil, opts)
	}
	return NewGenerationWorker(m, writer, publisher, opts)
}

type fakePublisher struct {
	events []*models.DatasetLandedEvent
	fail   bool
}

func (f *fakePublisher) PublishDatasetLanded(ctx context.Context, event *models.DatasetLandedEvent) error {
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.events = append(f.events, event)
	return nil
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestZeroIntervalWritesOneFile(t *testing.T) {
	dir := t.TempDir()
	w := newWorker(t, dir, 0, nil)
	w.after = func(time.Duration) <-chan time.Time {
		t.Fatal("single run must not sleep")
		return nil
	}

	require.NoError(t, w.Start(context.Background()))
	assert.Equal(t, []string{"acme_transacoes_20240305_070810.csv"}, listFiles(t, dir))
}

func TestPeriodicLoopSleepsWithFloor(t *testing.T) {
	dir := t.TempDir()
	w := newWorker(t, dir, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var waits []time.Duration
	w.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		if len(waits) == 3 {
			cancel()
			return nil
		}
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}

	err := w.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []time.Duration{MinInterval, MinInterval, MinInterval}, waits)
	assert.Len(t, listFiles(t, dir), 3)
}

func TestPeriodicLoopKeepsLongerInterval(t *testing.T) {
	w := newWorker(t, t.TempDir(), time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got time.Duration
	w.after = func(d time.Duration) <-chan time.Time {
		got = d
		cancel()
		return nil
	}

	assert.ErrorIs(t, w.Start(ctx), context.Canceled)
	assert.Equal(t, time.Minute, got)
}

func TestCycleFailureIsFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	w := newWorker(t, blocker, 10*time.Second, nil)
	w.after = func(time.Duration) <-chan time.Time {
		t.Fatal("loop must stop on the first failure")
		return nil
	}

	err := w.Start(context.Background())
	var ioErr *models.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLandingEventPublished(t *testing.T) {
	dir := t.TempDir()
	pub := &fakePublisher{}
	w := newWorker(t, dir, 0, pub)

	path, err := w.RunOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	event := pub.events[0]
	assert.Equal(t, models.EventTypeDatasetLanded, event.EventType)
	assert.Equal(t, filepath.Base(path), event.FileName)
	assert.Equal(t, 3, event.Rows)
	assert.Equal(t, "csv", event.Format)
	assert.Equal(t, "uniform", event.Distribution)
	assert.NotEmpty(t, event.CycleID)
}

func TestLandingEventFailureDoesNotFailCycle(t *testing.T) {
	dir := t.TempDir()
	w := newWorker(t, dir, 0, &fakePublisher{fail: true})

	path, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestMetricsTextfileWritten(t *testing.T) {
	dir := t.TempDir()
	w := newWorker(t, dir, 0, nil)
	w.opts.MetricsTextfile = filepath.Join(t.TempDir(), "generator.prom")

	_, err := w.RunOnce(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(w.opts.MetricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generator_rows_generated_total")
}
