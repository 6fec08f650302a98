package config

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ikl-data/loanpipe/lib/config/constants"
)

const (
	defaultSourceDataset = "cl_staging"
	defaultSourceTable   = "loans"
	defaultTargetDataset = "cl_transformed"
	defaultTargetTable   = "defaulters"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

// Source is the logical source relation. Both identifiers are parameters with
// defaults and can be overridden per invocation; nothing else in the pipeline
// hard-codes the resolved identity.
type Source struct {
	Dataset string `yaml:"dataset"`
	Table   string `yaml:"table"`
}

type Target struct {
	Dataset string `yaml:"dataset"`
	Table   string `yaml:"table"`
}

type Merge struct {
	// UniqueKey is the sole match key for the merge.
	UniqueKey string `yaml:"uniqueKey"`
	// DeleteSync, when true, deletes target rows whose key is absent from the batch.
	// The default (false) is an upsert-only merge that leaves unmatched rows untouched.
	DeleteSync bool `yaml:"deleteSync"`
}

type Config struct {
	BigQuery BigQuery `yaml:"bigquery"`
	GCS      GCS      `yaml:"gcs"`

	Source Source `yaml:"source"`
	Target Target `yaml:"target"`
	Merge  Merge  `yaml:"merge"`

	Reporting struct {
		Sentry *Sentry `yaml:"sentry"`
	} `yaml:"reporting"`

	Telemetry struct {
		Metrics struct {
			Provider string         `yaml:"provider"`
			Settings map[string]any `yaml:"settings,omitempty"`
		} `yaml:"metrics"`
	} `yaml:"telemetry"`
}

func ReadFile(pathToConfig string) (Config, error) {
	file, err := os.ReadFile(pathToConfig)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	cfg.LoadDefaultValues()
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("failed to validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) LoadDefaultValues() {
	c.Source.Dataset = cmp.Or(c.Source.Dataset, defaultSourceDataset)
	c.Source.Table = cmp.Or(c.Source.Table, defaultSourceTable)
	c.Target.Dataset = cmp.Or(c.Target.Dataset, defaultTargetDataset)
	c.Target.Table = cmp.Or(c.Target.Table, defaultTargetTable)
	c.Merge.UniqueKey = cmp.Or(c.Merge.UniqueKey, constants.LoanIDColumn)
	c.BigQuery.LoadDefaultValues()
	c.GCS.LoadDefaultValues()
}

func (c Config) Validate() error {
	if c.BigQuery.ProjectID == "" {
		return fmt.Errorf("bigquery projectID is required")
	}

	if c.Merge.UniqueKey == "" {
		return fmt.Errorf("merge uniqueKey cannot be empty")
	}

	if c.Source.Dataset == c.Target.Dataset && c.Source.Table == c.Target.Table {
		return fmt.Errorf("source and target cannot be the same table: %s.%s", c.Source.Dataset, c.Source.Table)
	}

	return nil
}
