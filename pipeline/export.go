package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/ikl-data/loanpipe/lib/xmlwriter"
)

const (
	xmlRootElement = "Defaulters"
	xmlRowElement  = "Defaulter"
)

type ObjectStore interface {
	NewWriter(ctx context.Context, objectName string) io.WriteCloser
	ObjectURI(objectName string) string
}

// Export streams the target table as XML into the object store under the
// configured export prefix.
func (p Pipeline) Export(ctx context.Context, store ObjectStore) error {
	target := p.TargetID()
	cols, err := p.warehouse.TableColumns(ctx, target)
	if err != nil {
		return err
	}

	// Closing the object writer commits the upload, so every error path must
	// cancel the write first; a partial document must never land at the final
	// object name.
	writeCtx, cancelWrite := context.WithCancel(ctx)
	defer cancelWrite()

	objectName := path.Join(p.cfg.GCS.ExportPrefix, target.Table()+".xml")
	writer := store.NewWriter(writeCtx, objectName)
	abort := func() {
		cancelWrite()
		_ = writer.Close()
	}

	xmlWriter := xmlwriter.New(writer, xmlRootElement, xmlRowElement, cols)

	var rows int
	for record, readErr := range p.warehouse.ReadTable(ctx, target) {
		if readErr != nil {
			abort()
			return readErr
		}

		if err = xmlWriter.WriteRow(record); err != nil {
			abort()
			return fmt.Errorf("failed to write row: %w", err)
		}

		rows++
	}

	if err = xmlWriter.Close(); err != nil {
		abort()
		return fmt.Errorf("failed to finish the XML document: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to finish upload: %w", err)
	}

	p.metricsClient.Count("rows.exported", int64(rows), map[string]string{"table": target.Table()})
	slog.Info("Exported table to XML",
		slog.String("uri", store.ObjectURI(objectName)),
		slog.Int("rows", rows),
	)

	return nil
}
