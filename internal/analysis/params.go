package analysis

import (
	"errors"
	"fmt"
)

// Params controls bucketing and the per-quarter reliability gate
type Params struct {
	BucketWidth float64 // km/h
	Confidence  float64 // two-sided confidence level for the mean HR interval
	MaxCIWidth  float64 // buckets need a full interval width strictly below this
	MinCount    int     // buckets need strictly more samples than this
}

// DefaultParams returns the standard analysis parameters
func DefaultParams() Params {
	return Params{
		BucketWidth: DefaultBucketWidth,
		Confidence:  DefaultConfidence,
		MaxCIWidth:  DefaultMaxCIWidth,
		MinCount:    DefaultMinCount,
	}
}

// Validate checks that the parameters describe a usable analysis
func (p Params) Validate() error {
	if p.BucketWidth <= 0 {
		return fmt.Errorf("bucket width must be positive, got %v", p.BucketWidth)
	}
	if p.Confidence <= 0 || p.Confidence >= 1 {
		return fmt.Errorf("confidence must be between 0 and 1, got %v", p.Confidence)
	}
	if p.MaxCIWidth <= 0 {
		return fmt.Errorf("max confidence interval width must be positive, got %v", p.MaxCIWidth)
	}
	if p.MinCount < 0 {
		return errors.New("min sample count cannot be negative")
	}
	return nil
}
