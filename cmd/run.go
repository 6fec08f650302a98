package cmd

import (
	"github.com/spf13/cobra"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	"github.com/ikl-data/loanpipe/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract defaulters from the source table and merge them into the target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, err := bigqueryclient.LoadStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		return pipeline.New(cfg, store, metricsClient).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
