package config

type BigQuery struct {
	// PathToCredentials is _optional_ if you have GOOGLE_APPLICATION_CREDENTIALS set as an env var
	// Links to credentials: https://cloud.google.com/docs/authentication/application-default-credentials#GAC
	PathToCredentials string `yaml:"pathToCredentials"`
	ProjectID         string `yaml:"projectID"`
	Location          string `yaml:"location"`
	BatchSize         int    `yaml:"batchSize"`
}

func (b *BigQuery) LoadDefaultValues() {
	if b.Location == "" {
		b.Location = "US"
	}

	if b.BatchSize == 0 {
		b.BatchSize = 500
	}
}
