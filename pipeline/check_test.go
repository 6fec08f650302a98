package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	bigqueryclient "github.com/ikl-data/loanpipe/clients/bigquery"
	"github.com/ikl-data/loanpipe/lib/telemetry/metrics"
)

func TestPipeline_CheckTableExists(t *testing.T) {
	warehouse := &fakeWarehouse{
		existingTables: map[string]bool{
			"proj.cl_transformed.defaulters": true,
		},
	}

	p := New(testConfig(), warehouse, metrics.NullMetricsProvider{})
	{
		// Existing table, no failure rows
		failures, err := p.CheckTableExists(context.Background(), bigqueryclient.NewTableIdentifier("proj", "cl_transformed", "defaulters"))
		assert.NoError(t, err)
		assert.Empty(t, failures)
	}
	{
		// Missing table, exactly one failure row naming it
		failures, err := p.CheckTableExists(context.Background(), bigqueryclient.NewTableIdentifier("proj", "cl_transformed", "nope"))
		assert.NoError(t, err)
		assert.Len(t, failures, 1)
		assert.Equal(t, "proj.cl_transformed.nope", failures[0].Table)
		assert.Equal(t, "table not found", failures[0].Reason)
	}
}
