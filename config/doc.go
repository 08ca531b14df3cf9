// Package config holds commercekit configuration structures and the loader
// that populates them from YAML files and environment variables.
//
// The provider configuration is validated once at client construction and is
// immutable for the lifetime of the session. All other components receive the
// validated value and never re-validate it.
package config
