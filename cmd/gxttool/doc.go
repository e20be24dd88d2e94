// Package main hosts the gxttool CLI entrypoint and command graph.
//
// The Cobra command tree exposes pack (TOML document to GXT container),
// unpack (GXT container to TOML document), inspect (key-table listing), and
// configuration scaffolding. Configuration resolution and logger setup live
// in commandContext so subcommands only map flags onto internal/convert and
// internal/gxt calls.
package main
