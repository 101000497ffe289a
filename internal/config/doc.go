// Package config loads, normalizes, and validates lyralign configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Every alignment threshold the pipeline
// uses (match score cutoff, lookahead bound, gap reserve, break detection
// ratios) lives here so callers can override documented defaults instead of
// relying on hard-coded magic.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
