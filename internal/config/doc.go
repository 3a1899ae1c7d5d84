// Package config loads, merges and validates summarium's configuration.
//
// Sources are read in this order and merged with mergo; a field set by an
// earlier source is never overwritten by a later one:
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the server view, [GetClientConfig] the
// terminal client view.
package config
