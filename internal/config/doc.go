// Package config loads and merges biip configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (BIIPCFG_MAX_FILE_BYTES, BIIPCFG_WORKERS, etc.)
//  3. Config file ($XDG_CONFIG_HOME/biip/config.json)
//  4. Built-in defaults
//
// The BIIPCFG_ prefix is deliberate: BIIP_* variables define custom
// redaction patterns and are never read as configuration.
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key in the config file.
package config
