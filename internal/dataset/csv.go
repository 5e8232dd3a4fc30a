package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"order-datagen/internal/models"

	"github.com/klauspost/compress/gzip"
)

const (
	csvSeparator = ';'
	utf8BOM      = "\ufeff"
)

// writeCSV writes a BOM-prefixed, semicolon separated file using a decimal
// comma. With gzip the BOM sits inside the compressed stream.
func writeCSV(out io.Writer, records []models.Record, compression Compression) error {
	var gz *gzip.Writer
	if compression == CompressionGzip {
		gz = gzip.NewWriter(out)
		out = gz
	}

	bw := bufio.NewWriter(out)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(bw)
	cw.Comma = csvSeparator
	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(models.Columns))
	for i := range records {
		for j, v := range records[i].Values() {
			row[j] = formatCSVValue(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

func formatCSVValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatDecimal(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(val)
	}
}

// formatDecimal renders the shortest representation with a decimal comma,
// always keeping one fractional digit (12 -> "12,0").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return strings.Replace(s, ".", ",", 1)
}
