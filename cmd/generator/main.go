package main

import (
	"context"
	"log"
	"time"

	"order-datagen/config"
	"order-datagen/internal/broker"
	"order-datagen/internal/dataset"
	"order-datagen/internal/generator"
	"order-datagen/internal/util"
	"order-datagen/internal/worker"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Env, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting order generator",
		zap.Int("rows", cfg.Generator.Rows),
		zap.Int64("seed", cfg.Generator.Seed),
		zap.String("format", string(cfg.Output.Format)),
		zap.String("landing_dir", cfg.Output.Dir))

	shutdownTracing, err := util.InitTracing("order-datagen", cfg.Observ.JaegerEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Error shutting down tracer", zap.Error(err))
		}
	}()

	// vocabulary draws come first on the stream
	stream := generator.NewStream(cfg.Generator.Seed)
	vocab := generator.BuildVocabulary(stream)
	window := generator.Window{Start: cfg.Window.Start, End: cfg.Window.End}

	synth, err := generator.NewSynthesizer(vocab, window, cfg.Window.Distribution)
	if err != nil {
		logger.Fatal("Failed to create synthesizer", zap.Error(err))
	}

	materializer := dataset.NewMaterializer(synth, stream, cfg.Generator.Workers)
	writer := dataset.NewWriter(cfg.Output.Dir, cfg.Generator.SourceName, cfg.Output.Format, cfg.Output.Compression)

	var publisher broker.LandingPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicLanding)
		defer producer.Close()
		publisher = broker.NewEventPublisher(producer)
		logger.Info("Kafka landing events enabled", zap.String("topic", cfg.Kafka.TopicLanding))
	}

	w := worker.NewGenerationWorker(materializer, writer, publisher, worker.Options{
		Rows:            cfg.Generator.Rows,
		Interval:        cfg.Interval(),
		SourceName:      cfg.Generator.SourceName,
		Window:          window,
		Distribution:    cfg.Window.Distribution,
		MetricsTextfile: cfg.Observ.MetricsTextfile,
	})

	if err := w.Start(context.Background()); err != nil {
		logger.Fatal("Generation failed", zap.Error(err))
	}
}
