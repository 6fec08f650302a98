package config

import "cmp"

type GCS struct {
	Bucket string `yaml:"bucket"`
	// SourcePrefix is where generated source CSVs land.
	SourcePrefix string `yaml:"sourcePrefix"`
	// ExportPrefix is where XML exports of the transformed table land.
	ExportPrefix string `yaml:"exportPrefix"`
	// BucketTTLDays is the age in days after which objects are deleted by the
	// bucket's lifecycle rule.
	BucketTTLDays int64 `yaml:"bucketTTLDays"`
}

func (g *GCS) LoadDefaultValues() {
	g.SourcePrefix = cmp.Or(g.SourcePrefix, "source_data")
	g.ExportPrefix = cmp.Or(g.ExportPrefix, "transformed_xml_files")
	if g.BucketTTLDays == 0 {
		g.BucketTTLDays = 365
	}
}
