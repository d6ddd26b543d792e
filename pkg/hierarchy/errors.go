package hierarchy

import (
	"errors"
	"fmt"
)

// ErrChartTypeRequired indicates the request names no chart type.
var ErrChartTypeRequired = errors.New("chartType is required")

// ErrDatasetRequired indicates the request dataset is missing or empty.
var ErrDatasetRequired = errors.New("dataset is required and must not be empty")

// ErrNoNumericField indicates the sampled record has no numeric field.
var ErrNoNumericField = errors.New("dataset must have at least one numeric field")

// ErrMeasureNotNumeric indicates the requested measure is not a numeric field.
var ErrMeasureNotNumeric = errors.New("measure field is not numeric")

// ErrDimensionNotFound indicates a requested dimension is absent from the dataset.
var ErrDimensionNotFound = errors.New("dimension does not exist in dataset")

// ErrDimensionIsMeasure indicates a requested dimension is also the measure.
var ErrDimensionIsMeasure = errors.New("dimension cannot be the measure field")

// ErrNoDimensions indicates no dimension field remains.
var ErrNoDimensions = errors.New("must have at least one dimension field")

// ErrUnknownChartType indicates no pipelines are registered for a chart type.
var ErrUnknownChartType = errors.New("no pipelines registered for chart type")

// ConfigurationError represents an invalid request or registry setup.
type ConfigurationError struct {
	Stage string // "request", "fields", "registry", ...
	Field string // offending field or chart type, if any
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("configuration error (%s): %q: %v", e.Stage, e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(stage, field string, err error) *ConfigurationError {
	return &ConfigurationError{
		Stage: stage,
		Field: field,
		Err:   err,
	}
}
