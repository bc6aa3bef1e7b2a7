// Package config provides application configuration and the centralized
// paths system.
//
// Configuration is layered: values from an optional paracli.yaml next to
// the executable are overridden by PARA_* environment variables, then
// validated. Paths are always resolved relative to the executable
// directory so the tools behave the same regardless of where they are
// invoked from.
package config
