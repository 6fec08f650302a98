package cmd

import (
	"fmt"
	"path"

	"cloud.google.com/go/bigquery"
	"github.com/spf13/cobra"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	"github.com/ikl-data/loanpipe/pipeline"
)

var (
	loadURI         string
	loadDisposition string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the loans CSV from the bucket into the staging table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, err := bigqueryclient.LoadStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		disposition, err := parseWriteDisposition(loadDisposition)
		if err != nil {
			return err
		}

		uri := loadURI
		if uri == "" {
			uri = fmt.Sprintf("gs://%s/%s", cfg.GCS.Bucket, path.Join(cfg.GCS.SourcePrefix, "loans.csv"))
		}

		if err = store.EnsureDataset(ctx, cfg.Source.Dataset); err != nil {
			return err
		}

		return store.LoadCSV(ctx, uri, pipeline.New(cfg, store, metricsClient).SourceID(), disposition)
	},
}

func parseWriteDisposition(value string) (bigquery.TableWriteDisposition, error) {
	switch value {
	case "truncate":
		return bigquery.WriteTruncate, nil
	case "append":
		return bigquery.WriteAppend, nil
	case "empty":
		return bigquery.WriteEmpty, nil
	}

	return "", fmt.Errorf("invalid write disposition: %q (expected truncate, append or empty)", value)
}

func init() {
	loadCmd.Flags().StringVar(&loadURI, "uri", "", "gs:// URI of the CSV (defaults to the configured bucket and source prefix)")
	loadCmd.Flags().StringVar(&loadDisposition, "write-disposition", "truncate", "truncate, append or empty")
	rootCmd.AddCommand(loadCmd)
}
