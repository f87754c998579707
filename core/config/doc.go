// Package config provides configuration management for badger-probe.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Target: base URL, timeout and user agent of the API under test
//   - Mock: port and fixture source of the bundled mock server
//   - Storage: S3/MinIO credentials, bucket and prefix for bucket fixtures
//   - Database: MySQL connection details for database fixtures
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Target.BaseURL)
package config
