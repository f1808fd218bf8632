// Package database handles database connections.
//
// It provides a thin wrapper around GORM that configures MySQL connections
// (with DSN-level timeouts and a verified ping) for production use, and
// sqlite connections for local development and tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
