package config

// DatasetSpec describes one named dataset: a map from data-type tag
// (e.g. "transcriptomics") to the CSV file holding that modality.
type DatasetSpec struct {
	Files map[string]string `yaml:"files"`
}

// Config represents the prepflow.yaml file driving a run.
//
// Seeds is deliberately untyped: it must be a comma-separated string
// ("42,17,256"), and ParseSeeds rejects anything else so that a bare YAML
// integer surfaces as a type error rather than being silently accepted.
type Config struct {
	WorkDir         string                 `yaml:"workdir"`
	Overwrite       bool                   `yaml:"overwrite"`
	Seeds           any                    `yaml:"seeds"`
	DataTypes       []string               `yaml:"data_types"`
	RequiredColumns []string               `yaml:"required_columns"`
	Datasets        map[string]DatasetSpec `yaml:"datasets"`
}
