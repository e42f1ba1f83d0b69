package errors

import "fmt"

// Common error types.
var (
	// Validation errors.
	ErrValidation     = fmt.Errorf("validation failed")
	ErrSharedName     = fmt.Errorf("cannot upload multiple files with a shared asset name")
	ErrNoFilesMatched = fmt.Errorf("no files matched the asset path pattern")

	// URL errors.
	ErrUploadURLParse = fmt.Errorf("upload URL does not match the expected release URL shape")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrTokenMissing     = fmt.Errorf("no authentication token configured")
	ErrNotConfigured    = fmt.Errorf("collaborator is not configured")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
