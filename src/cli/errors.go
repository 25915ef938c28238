package cli

import "fmt"

// ConfigError marks an invalid invocation: conflicting or missing
// flags, malformed dates or labels, unknown workload types. Reported
// before any network call and mapped to ExitConfig.
type ConfigError struct{ Err error }

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}
