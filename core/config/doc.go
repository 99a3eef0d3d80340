// Package config provides configuration management for the storage gateway.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags on the partial configs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Minio: object store connection settings (MINIO_* variables)
//   - Database: MySQL connection details for the optional object index
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Minio.BucketName)
package config
