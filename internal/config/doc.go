// Package config loads editor configuration.
//
// Settings come from three layers, lowest priority first: built-in
// defaults, a TOML file, and INKPOT_* environment variables. A missing
// config file is not an error; the defaults apply.
package config
