// Package config loads, normalizes, and validates gxttool configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the GXTTOOL_PLATFORM environment
// fallback. The Config type centralizes the default platform, document naming,
// output safety switches, and logging settings so the CLI resolves them in one
// pass before flags are applied.
//
// Always obtain settings through this package so commands receive a
// validated platform name, a dotted document extension, and canonical log
// formats.
package config
