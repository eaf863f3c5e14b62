// Package file provides the file-based configuration adapter.
//
// Configuration is layered: built-in defaults, then the user file
// <user config dir>/doc-doctor/config.{yaml,yml,toml,json}, then the
// nearest .doc-doctor.{yaml,yml,toml,json} found walking upward from the
// working directory (or an explicit file given with --config). Each layer
// is read by its own viper instance and overlays only the fields it sets.
//
// Adapters:
//   - Loaded: a validated configuration implementing driven.ConfigProvider
//   - Init/Get: the process-wide, initialise-once accessor
//   - WriteStarter: writes a starter file with the defaults (YAML or TOML)
package file
