// Package config provides configuration loading, merging, and validation
// facilities for the trackflow binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables (APP_*, SERVER_*, STORAGE_*, ADAPTER_* and the
//     legacy JWT_SECRET, PORT, DATABASE_URL)
//  3. Command-line flags
//  4. JSON config file
//
// Fields no source sets keep their defaults. The main entry points are
// [GetStructuredConfig] for the server and [GetSmokeConfig] for the smoke
// checker.
package config
