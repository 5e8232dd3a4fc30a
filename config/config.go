package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"order-datagen/internal/dataset"
	"order-datagen/internal/generator"
	"order-datagen/internal/models"

	"github.com/joho/godotenv"
)

const dateLayout = "2006-01-02"

type Config struct {
	Env       string
	LogLevel  string
	Generator GeneratorConfig
	Output    OutputConfig
	Window    WindowConfig
	Kafka     KafkaConfig
	Observ    ObservabilityConfig
}

type GeneratorConfig struct {
	Rows            int
	Seed            int64
	IntervalSeconds int
	SourceName      string
	Workers         int
}

type OutputConfig struct {
	Dir         string
	Format      dataset.Format
	Compression dataset.Compression
}

type WindowConfig struct {
	Start        time.Time
	End          time.Time
	Distribution generator.Mode
}

type KafkaConfig struct {
	Brokers      []string
	TopicLanding string
}

type ObservabilityConfig struct {
	JaegerEndpoint  string
	MetricsTextfile string
}

// Interval returns the configured pause between cycles; zero or less means run once
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Generator.IntervalSeconds) * time.Second
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	rows, err := intEnv("N_ROWS", "5000")
	if err != nil {
		return nil, err
	}
	if rows < 0 {
		return nil, &models.ConfigurationError{Key: "N_ROWS", Value: getEnv("N_ROWS", ""), Msg: "must not be negative"}
	}
	seed, err := int64Env("SEED", "42")
	if err != nil {
		return nil, err
	}
	interval, err := intEnv("GEN_INTERVAL_SECONDS", "0")
	if err != nil {
		return nil, err
	}
	workers, err := intEnv("GEN_WORKERS", "1")
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, &models.ConfigurationError{Key: "GEN_WORKERS", Value: getEnv("GEN_WORKERS", ""), Msg: "must be at least 1"}
	}

	format, err := dataset.ParseFormat(getEnv("OUTPUT_FORMAT", "csv"))
	if err != nil {
		return nil, configErr("OUTPUT_FORMAT", err)
	}
	compression, err := dataset.ParseCompression(getEnv("CSV_COMPRESSION", "none"))
	if err != nil {
		return nil, configErr("CSV_COMPRESSION", err)
	}

	start, err := dateEnv("DATE_START", "2015-01-01")
	if err != nil {
		return nil, err
	}
	end, err := dateEnv("DATE_END", "2025-12-31")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &models.InvalidRangeError{Start: start, End: end}
	}
	mode, err := generator.ParseMode(getEnv("DATE_DISTRIBUTION", "recent"))
	if err != nil {
		return nil, configErr("DATE_DISTRIBUTION", err)
	}

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		Generator: GeneratorConfig{
			Rows:            rows,
			Seed:            seed,
			IntervalSeconds: interval,
			SourceName:      getEnv("SOURCE_NAME", "empresa-simulada"),
			Workers:         workers,
		},
		Output: OutputConfig{
			Dir:         getEnv("LANDING_DIR", "/landing"),
			Format:      format,
			Compression: compression,
		},
		Window: WindowConfig{
			Start:        start,
			End:          end,
			Distribution: mode,
		},
		Kafka: KafkaConfig{
			Brokers:      splitList(getEnv("KAFKA_BROKERS", "")),
			TopicLanding: getEnv("KAFKA_TOPIC_LANDING", "dataset-landed"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint:  getEnv("JAEGER_ENDPOINT", ""),
			MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
		},
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key, defaultVal string) (int, error) {
	raw := getEnv(key, defaultVal)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ConfigurationError{Key: key, Value: raw, Msg: "not an integer"}
	}
	return v, nil
}

func int64Env(key, defaultVal string) (int64, error) {
	raw := getEnv(key, defaultVal)
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &models.ConfigurationError{Key: key, Value: raw, Msg: "not an integer"}
	}
	return v, nil
}

// dateEnv parses YYYY-MM-DD as UTC midnight
func dateEnv(key, defaultVal string) (time.Time, error) {
	raw := getEnv(key, defaultVal)
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, &models.ConfigurationError{Key: key, Value: raw, Msg: "expected YYYY-MM-DD"}
	}
	return t, nil
}

func configErr(key string, err error) error {
	return &models.ConfigurationError{Key: key, Value: os.Getenv(key), Msg: err.Error()}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
