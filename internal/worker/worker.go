package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"order-datagen/internal/broker"
	"order-datagen/internal/dataset"
	"order-datagen/internal/generator"
	"order-datagen/internal/models"
	"order-datagen/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinInterval is the shortest pause between periodic cycles
const MinInterval = 5 * time.Second

// Options configures a GenerationWorker
type Options struct {
	Rows            int
	Interval        time.Duration
	SourceName      string
	Window          generator.Window
	Distribution    generator.Mode
	MetricsTextfile string
}

// GenerationWorker runs materialize-and-write cycles
type GenerationWorker struct {
	materializer *dataset.Materializer
	writer       *dataset.Writer
	publisher    broker.LandingPublisher
	opts         Options
	logger       *zap.Logger
	after        func(time.Duration) <-chan time.Time
}

// NewGenerationWorker creates a new generation worker. publisher may be nil.
func NewGenerationWorker(
	materializer *dataset.Materializer,
	writer *dataset.Writer,
	publisher broker.LandingPublisher,
	opts Options,
) *GenerationWorker {
	return &GenerationWorker{
		materializer: materializer,
		writer:       writer,
		publisher:    publisher,
		opts:         opts,
		logger:       util.GetLogger(),
		after:        time.After,
	}
}

// Start runs a single cycle when the interval is not positive, otherwise
// cycles until a cycle fails or ctx is cancelled.
func (w *GenerationWorker) Start(ctx context.Context) error {
	if w.opts.Interval <= 0 {
		_, err := w.RunOnce(ctx)
		return err
	}

	interval := max(w.opts.Interval, MinInterval)
	w.logger.Info("Continuous generation enabled", zap.Duration("interval", interval))

	for {
		if _, err := w.RunOnce(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			w.logger.Info("Generation loop stopped")
			return ctx.Err()
		case <-w.after(interval):
		}
	}
}

// RunOnce materializes one dataset, lands it and returns its path
func (w *GenerationWorker) RunOnce(ctx context.Context) (string, error) {
	ctx, span := util.StartSpan(ctx, "GenerationWorker.RunOnce")
	defer span.End()

	cycleID := uuid.New().String()
	start := time.Now()
	defer w.exportMetrics()

	ds, err := w.materializer.Materialize(ctx, w.opts.Rows)
	if err != nil {
		util.CycleFailuresTotal.Inc()
		return "", fmt.Errorf("failed to materialize dataset: %w", err)
	}

	path, err := w.writer.Write(ctx, ds)
	if err != nil {
		util.CycleFailuresTotal.Inc()
		return "", fmt.Errorf("failed to write dataset: %w", err)
	}

	util.CycleDuration.Observe(time.Since(start).Seconds())
	util.LastSuccessTimestamp.SetToCurrentTime()

	w.logger.Info("Dataset written",
		zap.String("file", filepath.Base(path)),
		zap.Int("rows", ds.Len()),
		zap.String("window_start", w.opts.Window.Start.Format(time.DateOnly)),
		zap.String("window_end", w.opts.Window.End.Format(time.DateOnly)),
		zap.String("distribution", string(w.opts.Distribution)),
		zap.String("cycle_id", cycleID))

	w.publishLanded(ctx, cycleID, path, ds)
	return path, nil
}

// publishLanded only logs failures: the file is already in place.
func (w *GenerationWorker) publishLanded(ctx context.Context, cycleID, path string, ds *dataset.Dataset) {
	if w.publisher == nil {
		return
	}

	event := &models.DatasetLandedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeDatasetLanded,
			Timestamp: time.Now().UTC(),
		},
		CycleID:       cycleID,
		SourceName:    w.opts.SourceName,
		FileName:      filepath.Base(path),
		Path:          path,
		Format:        string(w.writer.Format()),
		Compression:   string(w.writer.Compression()),
		Rows:          ds.Len(),
		SchemaVersion: models.SchemaVersion,
		WindowStart:   w.opts.Window.Start,
		WindowEnd:     w.opts.Window.End,
		Distribution:  string(w.opts.Distribution),
	}

	if err := w.publisher.PublishDatasetLanded(ctx, event); err != nil {
		util.LandingEventsFailedTotal.Inc()
		w.logger.Error("Failed to publish DatasetLanded event",
			zap.String("file", event.FileName),
			zap.Error(err))
	}
}

func (w *GenerationWorker) exportMetrics() {
	if w.opts.MetricsTextfile == "" {
		return
	}
	if err := util.WriteMetricsTextfile(w.opts.MetricsTextfile); err != nil {
		w.logger.Warn("Failed to write metrics textfile",
			zap.String("path", w.opts.MetricsTextfile),
			zap.Error(err))
	}
}
