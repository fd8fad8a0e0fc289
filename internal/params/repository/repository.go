package repository

import "context"

// Repository defines batch read access to named configuration parameters.
type Repository interface {
	// GetValues returns the values for the given names. Names with no stored value
	// are simply absent from the result; only store failures return an error.
	GetValues(ctx context.Context, names []string) (map[string]string, error)
}
