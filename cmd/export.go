package cmd

import (
	"github.com/spf13/cobra"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	gcsclient "github.com/ikl-data/loanpipe/clients/gcs"
	"github.com/ikl-data/loanpipe/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the defaulters table as XML into the bucket",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, err := bigqueryclient.LoadStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		objectStore, err := gcsclient.LoadClient(ctx, cfg.GCS)
		if err != nil {
			return err
		}
		defer objectStore.Close()

		return pipeline.New(cfg, store, metricsClient).Export(ctx, objectStore)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
