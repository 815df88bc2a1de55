// Package file provides the TOML-backed driven.ConfigStore.
// Report settings persist to ~/.podreport/config.toml unless another
// directory is given.
package file
