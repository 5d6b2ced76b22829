package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable means the source could not be reached or read.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrDatasetNotFound means the source has no data for the request.
	ErrDatasetNotFound = errors.New("dataset not found")
)

// DatasetError ties a fetch failure to the provider and dataset involved.
type DatasetError struct {
	Provider string
	Dataset  string
	Err      error
}

func (e *DatasetError) Error() string {
	msg := "dataset fetch failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Provider == "" {
		return fmt.Sprintf("%s: %s", e.Dataset, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Dataset, msg)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// AsDatasetError attempts to unwrap an error into a DatasetError.
func AsDatasetError(err error) (*DatasetError, bool) {
	var dsErr *DatasetError
	if errors.As(err, &dsErr) {
		return dsErr, true
	}
	return nil, false
}
