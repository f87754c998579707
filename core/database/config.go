package database

import "time"

// Config holds configuration for the database holding mock server fixtures.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"badger_mock"`
	// TimeoutSeconds bounds connection setup and each read/write.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// DSN builds the go-sql-driver/mysql data source name for cfg.
// Credentials are passed through verbatim; the driver does not decode them.
func (c Config) DSN() string {
	timeout := c.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return fmtDSN(c, time.Duration(timeout)*time.Second)
}
