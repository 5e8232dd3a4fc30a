package dataset

import (
	"fmt"
	"io"

	"order-datagen/internal/models"

	"github.com/parquet-go/parquet-go"
)

// writeParquet writes records as a snappy compressed parquet file whose
// schema follows the models.Record field order.
func writeParquet(out io.Writer, records []models.Record) error {
	pw := parquet.NewGenericWriter[models.Record](out, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
