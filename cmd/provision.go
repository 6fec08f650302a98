package cmd

import (
	"github.com/spf13/cobra"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	gcsclient "github.com/ikl-data/loanpipe/clients/gcs"
	"github.com/ikl-data/loanpipe/pipeline"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Ensure the bucket (with its deletion lifecycle) and both datasets exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, err := bigqueryclient.LoadStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		buckets, err := gcsclient.LoadClient(ctx, cfg.GCS)
		if err != nil {
			return err
		}
		defer buckets.Close()

		return pipeline.Provision(ctx, cfg, store, buckets)
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
