package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ikl-data/loanpipe/lib/config"
	"github.com/ikl-data/loanpipe/lib/csvwriter"
	"github.com/ikl-data/loanpipe/lib/datagen"
)

type ObjectUploader interface {
	Upload(ctx context.Context, objectName string, payload []byte) error
	ObjectURI(objectName string) string
}

type GenerateArgs struct {
	Rows int
	Seed int64
	// OutPath is where the CSV is written locally; empty skips the local copy.
	OutPath string
	Upload  bool
}

// Generate produces a synthetic loans CSV and optionally uploads it under the
// configured source prefix, where the load job picks it up.
func Generate(ctx context.Context, cfg config.Config, args GenerateArgs, uploader ObjectUploader) error {
	if args.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got: %d", args.Rows)
	}

	if args.Upload && uploader == nil {
		return fmt.Errorf("upload requested but no object store is configured")
	}

	generator := datagen.New(args.Seed)

	var payload []byte
	if args.OutPath != "" {
		fileWriter, err := csvwriter.NewFilePath(args.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", args.OutPath, err)
		}

		if err = generator.WriteCSV(fileWriter.Writer, args.Rows); err != nil {
			_ = fileWriter.Close()
			return fmt.Errorf("failed to generate loans CSV: %w", err)
		}

		if err = fileWriter.Close(); err != nil {
			return fmt.Errorf("failed to write %q: %w", args.OutPath, err)
		}

		slog.Info("Wrote loans CSV", slog.String("path", args.OutPath), slog.Int("rows", args.Rows))

		if args.Upload {
			if payload, err = os.ReadFile(args.OutPath); err != nil {
				return fmt.Errorf("failed to read back %q: %w", args.OutPath, err)
			}
		}
	} else if args.Upload {
		var buf bytes.Buffer
		if err := generator.WriteCSV(csvwriter.New(&buf), args.Rows); err != nil {
			return fmt.Errorf("failed to generate loans CSV: %w", err)
		}

		payload = buf.Bytes()
	}

	if args.Upload {
		objectName := path.Join(cfg.GCS.SourcePrefix, csvObjectName(args.OutPath))
		if err := uploader.Upload(ctx, objectName, payload); err != nil {
			return fmt.Errorf("failed to upload loans CSV: %w", err)
		}

		slog.Info("Uploaded loans CSV", slog.String("uri", uploader.ObjectURI(objectName)), slog.Int("rows", args.Rows))
	}

	return nil
}

func csvObjectName(outPath string) string {
	if outPath == "" {
		return "loans.csv"
	}

	return filepath.Base(outPath)
}
