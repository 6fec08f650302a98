package bigquery

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/bigquery"

	"github.com/ikl-data/loanpipe/lib/sql"
)

// LoansSchema is the explicit schema for the generated loans CSV. The loader
// does not autodetect.
var LoansSchema = bigquery.Schema{
	{Name: "Loan_ID", Type: bigquery.StringFieldType, Required: true},
	{Name: "Cust_Name", Type: bigquery.StringFieldType},
	{Name: "Loan_Amount", Type: bigquery.NumericFieldType},
	{Name: "Int_Rate", Type: bigquery.FloatFieldType},
	{Name: "Instalments", Type: bigquery.IntegerFieldType},
	{Name: "Start_Date", Type: bigquery.DateFieldType},
	{Name: "End_Date", Type: bigquery.DateFieldType},
	{Name: "Status", Type: bigquery.StringFieldType},
}

// LoadCSV runs a load job from a gs:// URI into the given table.
func (s *Store) LoadCSV(ctx context.Context, gcsURI string, target sql.TableIdentifier, disposition bigquery.TableWriteDisposition) error {
	gcsRef := bigquery.NewGCSReference(gcsURI)
	gcsRef.SourceFormat = bigquery.CSV
	gcsRef.SkipLeadingRows = 1
	gcsRef.Schema = LoansSchema

	loader := s.table(target).LoaderFrom(gcsRef)
	loader.WriteDisposition = disposition

	slog.Info("Starting load job",
		slog.String("uri", gcsURI),
		slog.String("table", target.FullyQualifiedName()),
		slog.String("writeDisposition", string(disposition)),
	)

	job, err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to start load job: %w", err)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for load job: %w", err)
	}

	if err = status.Err(); err != nil {
		return fmt.Errorf("load job failed: %w", err)
	}

	return nil
}
