package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"order-datagen/internal/models"
	"order-datagen/internal/util"
)

// Writer lands datasets in a directory
type Writer struct {
	dir         string
	source      string
	format      Format
	compression Compression
}

// NewWriter creates a writer for one landing directory and source name
func NewWriter(dir, source string, format Format, compression Compression) *Writer {
	return &Writer{
		dir:         dir,
		source:      source,
		format:      format,
		compression: compression,
	}
}

func (w *Writer) Format() Format { return w.format }

func (w *Writer) Compression() Compression { return w.compression }

// Write encodes ds into a hidden temp file and renames it to its final name,
// returning the final path. The directory is created when missing.
func (w *Writer) Write(ctx context.Context, ds *Dataset) (string, error) {
	_, span := util.StartSpan(ctx, "Writer.Write")
	defer span.End()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", &models.IOError{Op: "mkdir", Path: w.dir, Err: err}
	}

	name := FileName(w.source, ds.MaterializedAt, w.format, w.compression)
	final := filepath.Join(w.dir, name)

	tmp, err := os.CreateTemp(w.dir, "."+name+".*.tmp")
	if err != nil {
		return "", &models.IOError{Op: "create", Path: final, Err: err}
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := w.encode(tmp, ds); err != nil {
		_ = tmp.Close()
		return "", &models.IOError{Op: "write", Path: final, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &models.IOError{Op: "close", Path: final, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", &models.IOError{Op: "chmod", Path: final, Err: err}
	}
	if err := os.Rename(tmpPath, final); err != nil {
		return "", &models.IOError{Op: "rename", Path: final, Err: err}
	}
	committed = true

	util.FilesWrittenTotal.WithLabelValues(string(w.format)).Inc()
	return final, nil
}

func (w *Writer) encode(f *os.File, ds *Dataset) error {
	switch w.format {
	case FormatCSV:
		return writeCSV(f, ds.Records, w.compression)
	case FormatParquet:
		return writeParquet(f, ds.Records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, w.format)
	}
}
