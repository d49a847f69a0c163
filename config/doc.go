// Package config holds the run configuration of a pigment search.
//
// Values are resolved in three layers, later layers winning:
//
//  1. Default(): the documented defaults.
//  2. Environment: PIGMENTFIT_* variables, read from the process
//     environment and from optional .env files (process environment wins).
//  3. Command-line flags, applied by the CLI on top of the loaded value.
//
// Validate reports the first invalid field as ErrInvalid.
package config
