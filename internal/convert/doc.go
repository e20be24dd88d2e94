// Package convert runs whole-file conversions between GXT containers and
// TOML documents.
//
// Pack and Unpack read the source fully into memory, produce the complete
// output buffer, and only then touch the destination: an optional flock on
// "<dst>.lock", an overwrite check, an optional verified backup to
// "<dst>.bak", and an atomic rename of a temp file over the destination.
// Codec and document errors are returned wrapped with the source path so the
// caller can print them as-is.
package convert
