// Package config provides configuration loading, merging, and validation
// facilities for the feed server and the terminal client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the feed server and
// [GetClientConfig] for the terminal client.
package config
