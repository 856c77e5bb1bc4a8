// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file in the working directory (loaded into the environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The entry point is [GetStructuredConfig].
package config
