// Package config provides configuration management for the common-games
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: persistent store connection details
//   - Steam: external data source endpoints and credential id
//   - Storage: S3/MinIO credentials for catalog exports
//   - Log: logging level and format
//   - Games: feature settings (ownership cache TTL)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
