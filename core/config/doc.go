// Package config provides configuration management for the Bolt Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, document identifier)
//   - Database: MySQL connection details for the material library
//   - Storage: S3/MinIO credentials and bucket settings for catalog publishing
//   - Log: Logging level and format
//   - Catalog: output directory, material categories and table delimiter
//   - Material: material feature toggle
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
