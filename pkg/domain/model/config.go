package model

// Config is the process-wide settings, built once at startup and passed by value
type Config struct {
	Credentials Credentials
	ProjectKey  string

	// FeaturesDir receives extracted feature files and the transient archive
	FeaturesDir string
	// ResultsDir is where execution result files are read from
	ResultsDir string
}
