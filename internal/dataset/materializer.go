package dataset

import (
	"context"
	"fmt"
	"time"

	"order-datagen/internal/generator"
	"order-datagen/internal/models"
	"order-datagen/internal/util"

	"golang.org/x/sync/errgroup"
)

// Materializer assembles a cycle's rows from a Synthesizer
type Materializer struct {
	synth   *generator.Synthesizer
	stream  generator.Source
	workers int
	now     func() time.Time
}

// NewMaterializer creates a materializer drawing from stream. With workers
// greater than one, rows are built concurrently on per-row sub-streams.
func NewMaterializer(synth *generator.Synthesizer, stream generator.Source, workers int) *Materializer {
	if workers < 1 {
		workers = 1
	}
	return &Materializer{
		synth:   synth,
		stream:  stream,
		workers: workers,
		now:     time.Now,
	}
}

// WithClock replaces the clock that stamps MaterializedAt
func (m *Materializer) WithClock(now func() time.Time) *Materializer {
	m.now = now
	return m
}

// Materialize builds exactly rows records with indices 0..rows-1. Any row
// failure fails the whole dataset.
func (m *Materializer) Materialize(ctx context.Context, rows int) (*Dataset, error) {
	ctx, span := util.StartSpan(ctx, "Materializer.Materialize")
	defer span.End()

	if rows < 0 {
		return nil, fmt.Errorf("row count must not be negative: %d", rows)
	}

	ds := &Dataset{MaterializedAt: m.now().UTC()}

	var err error
	if m.workers == 1 {
		ds.Records, err = m.sequential(rows)
	} else {
		ds.Records, err = m.parallel(ctx, rows)
	}
	if err != nil {
		return nil, err
	}

	util.RowsGeneratedTotal.Add(float64(rows))
	return ds, nil
}

func (m *Materializer) sequential(rows int) ([]models.Record, error) {
	records := make([]models.Record, 0, rows)
	for i := 0; i < rows; i++ {
		r, err := m.synth.Row(m.stream, i)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize row %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (m *Materializer) parallel(ctx context.Context, rows int) ([]models.Record, error) {
	// one draw from the shared stream keeps consecutive cycles distinct
	cycleSeed := m.stream.Uint64()
	records := make([]models.Record, rows)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i := 0; i < rows; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := m.synth.Row(generator.SubStream(cycleSeed, i), i)
			if err != nil {
				return fmt.Errorf("failed to synthesize row %d: %w", i, err)
			}
			records[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
