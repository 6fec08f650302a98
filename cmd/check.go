package cmd

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	"github.com/ikl-data/loanpipe/pipeline"
)

var (
	checkProject string
	checkDataset string
	checkTable   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Assert that a table exists; prints one failure row per missing table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, err := bigqueryclient.LoadStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		tableID := bigqueryclient.NewTableIdentifier(
			cmp.Or(checkProject, cfg.BigQuery.ProjectID),
			cmp.Or(checkDataset, cfg.Target.Dataset),
			cmp.Or(checkTable, cfg.Target.Table),
		)

		failures, err := pipeline.New(cfg, store, metricsClient).CheckTableExists(ctx, tableID)
		if err != nil {
			return err
		}

		for _, failure := range failures {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", failure.Table, failure.Reason)
		}

		if len(failures) > 0 {
			return fmt.Errorf("%d check failure(s)", len(failures))
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkProject, "project", "", "project override (defaults to the configured project)")
	checkCmd.Flags().StringVar(&checkDataset, "dataset", "", "dataset override (defaults to the target dataset)")
	checkCmd.Flags().StringVar(&checkTable, "table", "", "table name (defaults to the target table)")
	rootCmd.AddCommand(checkCmd)
}
