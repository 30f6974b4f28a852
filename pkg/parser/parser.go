package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MarkerPrefix identifies libFuzzer status lines; everything else in
	// the log is ignored.
	MarkerPrefix = "#"

	secondsPerHour = 3600
)

// Extractor parses libFuzzer status logs into coverage series.
type Extractor struct {
	marker      string
	covPattern  *regexp.Regexp
	timePattern *regexp.Regexp
}

// NewExtractor creates an extractor for the standard libFuzzer status
// line format: lines starting with "#" carrying "cov: N" and "time: N"
// fields.
func NewExtractor() *Extractor {
	return &Extractor{
		marker:      MarkerPrefix,
		covPattern:  regexp.MustCompile(`cov: (\d+)`),
		timePattern: regexp.MustCompile(`time: (\d+)`),
	}
}

// Parse reads log lines and returns the coverage series.
//
// A line is a candidate only if it starts with the marker and contains
// both the coverage and time fields; lines missing either field are
// skipped entirely and do not count as the final sample. Zero coverage
// values are discarded as startup noise. Runs of flat coverage are
// collapsed to their first occurrence, except that the last candidate
// is always kept so the chart's rightmost point reflects the true final
// measurement.
func (e *Extractor) Parse(r io.Reader) (Series, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	var candidates []Sample
	for scanner.Scan() {
		sample, ok := e.extract(scanner.Text())
		if !ok {
			continue
		}
		candidates = append(candidates, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	var series Series
	for i, sample := range candidates {
		if sample.Coverage == 0 {
			continue
		}
		last := i == len(candidates)-1
		if len(series) > 0 && sample.Coverage == series[len(series)-1].Coverage && !last {
			continue
		}
		series = append(series, sample)
	}
	return series, nil
}

// ParseFile reads and parses a log file.
func (e *Extractor) ParseFile(path string) (Series, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	series, err := e.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return series, nil
}

// extract attempts to pull a sample from a single log line.
func (e *Extractor) extract(line string) (Sample, bool) {
	if !strings.HasPrefix(line, e.marker) {
		return Sample{}, false
	}

	covMatch := e.covPattern.FindStringSubmatch(line)
	if covMatch == nil {
		return Sample{}, false
	}
	timeMatch := e.timePattern.FindStringSubmatch(line)
	if timeMatch == nil {
		return Sample{}, false
	}

	cov, err := strconv.Atoi(covMatch[1])
	if err != nil {
		return Sample{}, false
	}
	seconds, err := strconv.Atoi(timeMatch[1])
	if err != nil {
		return Sample{}, false
	}

	return Sample{
		Hours:    float64(seconds) / secondsPerHour,
		Coverage: cov,
	}, true
}
