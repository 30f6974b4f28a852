// Package parser extracts coverage time-series from libFuzzer status logs.
package parser

// Sample is a single coverage measurement.
type Sample struct {
	// Hours is the elapsed time since the start of the run, in hours.
	Hours float64

	// Coverage is the cumulative block coverage reported at that time.
	Coverage int
}

// Series is an ordered sequence of samples, monotonic in Hours.
// Consecutive samples never repeat a coverage value, except that the
// final sample of a run is always retained.
type Series []Sample

// Hours returns the elapsed-hours values, aligned with Coverages.
func (s Series) Hours() []float64 {
	hours := make([]float64, len(s))
	for i, sample := range s {
		hours[i] = sample.Hours
	}
	return hours
}

// Coverages returns the coverage values as floats for plotting, aligned
// with Hours.
func (s Series) Coverages() []float64 {
	coverages := make([]float64, len(s))
	for i, sample := range s {
		coverages[i] = float64(sample.Coverage)
	}
	return coverages
}

// Run pairs a series with the name of the fuzzing session it came from.
// The name is the directory containing the run's log file, typically a
// Month-Day date or the literal "running" for an in-progress session.
type Run struct {
	Name   string
	Series Series
}
