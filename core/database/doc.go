// Package database handles the optional SQL connection used by the mock server.
//
// When the mock server is started with `--fixtures database`, canned responses are read from
// a `mock_fixtures` table instead of the embedded files. This package only knows how to
// connect; the fixture model lives with the mock server.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Fatal("Database connection failed", zap.Error(err))
//	}
package database
