package registry

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound = errors.New("config not found")
	ErrConfigInvalid  = errors.New("config invalid")
)

// InvalidError identifies one offending field of a Config.
type InvalidError struct {
	Environment string
	Field       string
	Reason      string
}

func (e *InvalidError) Error() string {
	if e.Environment == "" {
		return fmt.Sprintf("%s: %s: %s", ErrConfigInvalid, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s: %s", ErrConfigInvalid, e.Environment, e.Field, e.Reason)
}

func (e *InvalidError) Unwrap() error {
	return ErrConfigInvalid
}

// Violations flattens an error returned by validation into its InvalidErrors.
func Violations(err error) []*InvalidError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*InvalidError
		for _, e := range joined.Unwrap() {
			out = append(out, Violations(e)...)
		}
		return out
	}

	var invalid *InvalidError
	if errors.As(err, &invalid) {
		return []*InvalidError{invalid}
	}
	return nil
}

func newInvalid(env, field, format string, args ...any) *InvalidError {
	return &InvalidError{
		Environment: env,
		Field:       field,
		Reason:      fmt.Sprintf(format, args...),
	}
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrConfigNotFound, name)
}
