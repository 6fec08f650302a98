package cmd

import (
	"github.com/spf13/cobra"

	gcsclient "github.com/ikl-data/loanpipe/clients/gcs"
	"github.com/ikl-data/loanpipe/pipeline"
)

var generateArgs pipeline.GenerateArgs

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic loans CSV, optionally uploading it to the bucket",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var uploader pipeline.ObjectUploader
		if generateArgs.Upload {
			client, err := gcsclient.LoadClient(ctx, cfg.GCS)
			if err != nil {
				return err
			}
			defer client.Close()
			uploader = client
		}

		return pipeline.Generate(ctx, cfg, generateArgs, uploader)
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateArgs.Rows, "rows", 200, "number of loan rows to generate")
	generateCmd.Flags().Int64Var(&generateArgs.Seed, "seed", 0, "random seed; the same seed yields the same rows")
	generateCmd.Flags().StringVar(&generateArgs.OutPath, "out", "loans.csv", "local output path")
	generateCmd.Flags().BoolVar(&generateArgs.Upload, "upload", false, "upload the CSV to the configured bucket")
	rootCmd.AddCommand(generateCmd)
}
