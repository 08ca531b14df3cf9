// Package validation wraps go-playground/validator for struct validation of
// operation parameters. Invalid input surfaces as a commercekit configuration
// error carrying per-field details, so a bad call never reaches the backend.
package validation
