package dataset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"order-datagen/internal/models"
)

// Dataset is one generation cycle's rows
type Dataset struct {
	Records        []models.Record
	MaterializedAt time.Time
}

func (d *Dataset) Len() int { return len(d.Records) }

// Format is the on-disk encoding of a dataset
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// Compression applies to CSV output only
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
)

var (
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrUnknownCompression = errors.New("unknown csv compression")
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatParquet:
		return FormatParquet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func ParseCompression(s string) (Compression, error) {
	switch Compression(strings.ToLower(strings.TrimSpace(s))) {
	case CompressionNone, "":
		return CompressionNone, nil
	case CompressionGzip:
		return CompressionGzip, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// Extension returns the file extension without the leading dot
func Extension(format Format, compression Compression) string {
	if format == FormatParquet {
		return "parquet"
	}
	if compression == CompressionGzip {
		return "csv.gz"
	}
	return "csv"
}

// FileName is {source}_transacoes_{YYYYMMDD_HHMMSS}.{ext}, stamped in UTC
func FileName(source string, at time.Time, format Format, compression Compression) string {
	return fmt.Sprintf("%s_transacoes_%s.%s",
		source, at.UTC().Format("20060102_150405"), Extension(format, compression))
}
