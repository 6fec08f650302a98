package csvwriter

import (
	"encoding/csv"
	"io"
	"os"
)

// Writer writes comma-separated rows. The BigQuery CSV loader expects plain
// (uncompressed) comma-delimited files with a header row.
type Writer struct {
	writer *csv.Writer
}

func New(w io.Writer) *Writer {
	return &Writer{writer: csv.NewWriter(w)}
}

func (w *Writer) Write(row []string) error {
	return w.writer.Write(row)
}

func (w *Writer) Flush() error {
	w.writer.Flush()
	return w.writer.Error()
}

// FileWriter writes a CSV straight to a local file.
type FileWriter struct {
	file *os.File
	*Writer
}

func NewFilePath(fp string) (*FileWriter, error) {
	file, err := os.Create(fp)
	if err != nil {
		return nil, err
	}

	return &FileWriter{
		file:   file,
		Writer: New(file),
	}, nil
}

func (f *FileWriter) Close() error {
	if err := f.Flush(); err != nil {
		// If the writer failed to flush, let's still try to close the file.
		_ = f.file.Close()
		return err
	}

	return f.file.Close()
}
