package server

// Config holds configuration for the mock API server.
type Config struct {
	// Port is the port where the mock server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Fixtures selects where canned responses are read from (embedded, dir, bucket, database).
	Fixtures string `mapstructure:"fixtures" default:"embedded"`
	// FixturesDir is the directory used by the dir fixture source.
	FixturesDir string `mapstructure:"fixtures_dir" default:"json"`
}

const (
	FixturesEmbedded = "embedded"
	FixturesDir      = "dir"
	FixturesBucket   = "bucket"
	FixturesDatabase = "database"
)

// IsValidFixtureSource checks if the configured fixture source is supported.
func (c Config) IsValidFixtureSource() bool {
	switch c.Fixtures {
	case FixturesEmbedded, FixturesDir, FixturesBucket, FixturesDatabase:
		return true
	default:
		return false
	}
}
