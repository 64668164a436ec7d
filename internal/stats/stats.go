// Package stats computes aggregate figures over a survey set. Every function
// is pure: no storage access, no side effects, and preconditions are reported
// as errors rather than coerced into zero values.
package stats

import (
	"errors"
	"sort"
	"strings"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
)

var (
	// ErrEmptyInput is returned when an aggregate is requested over zero
	// records; the division by zero is surfaced, never silently coerced.
	ErrEmptyInput = errors.New("no survey records to aggregate")
	// ErrInsufficientData is returned when fewer than TrendWindow records
	// exist; the trend is undefined below that threshold.
	ErrInsufficientData = errors.New("not enough survey records for trend analysis")
)

// TrendWindow is the number of most recent records compared against the
// full-set baseline.
const TrendWindow = 3

// trendThreshold is the margin the recent mean must clear before the trend
// counts as increasing or decreasing.
const trendThreshold = 0.5

// UnknownLocation is the bucket for blank or whitespace-only locations.
const UnknownLocation = "Unknown"

// OtherLocations is the fold bucket for everything past a top-N cut.
const OtherLocations = "Other"

// Averages holds the arithmetic mean of each rating dimension.
type Averages struct {
	Quality    float64 `json:"quality"`
	Timeliness float64 `json:"timeliness"`
	Service    float64 `json:"service"`
	Overall    float64 `json:"overall"`
}

// ComputeAverages returns the mean of every rating over all records.
func ComputeAverages(records []domain.Survey) (Averages, error) {
	if len(records) == 0 {
		return Averages{}, ErrEmptyInput
	}

	var sum Averages
	for _, r := range records {
		sum.Quality += float64(r.Quality)
		sum.Timeliness += float64(r.Timeliness)
		sum.Service += float64(r.Service)
		sum.Overall += float64(r.Overall)
	}
	n := float64(len(records))
	return Averages{
		Quality:    sum.Quality / n,
		Timeliness: sum.Timeliness / n,
		Service:    sum.Service / n,
		Overall:    sum.Overall / n,
	}, nil
}

// Band is a qualitative rating label.
type Band string

const (
	BandExcellent        Band = "Excellent"
	BandGood             Band = "Good"
	BandFair             Band = "Fair"
	BandNeedsImprovement Band = "NeedsImprovement"
)

// RatingLabel maps value/max to a band. Boundaries are inclusive at the
// lower edge: exactly 80% is Excellent, exactly 60% is Good, exactly 40%
// is Fair.
func RatingLabel(value, max int) Band {
	percentage := float64(value) / float64(max) * 100
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGood
	case percentage >= 40:
		return BandFair
	default:
		return BandNeedsImprovement
	}
}

// LocationCount is one bucket of the location distribution.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// LocationDistribution groups records by trimmed location (blank becomes the
// Unknown bucket) and returns buckets ordered by count descending, ties
// broken by first appearance in the input.
func LocationDistribution(records []domain.Survey) []LocationCount {
	index := make(map[string]int)
	var buckets []LocationCount

	for _, r := range records {
		loc := strings.TrimSpace(r.Location)
		if loc == "" {
			loc = UnknownLocation
		}
		if i, seen := index[loc]; seen {
			buckets[i].Count++
			continue
		}
		index[loc] = len(buckets)
		buckets = append(buckets, LocationCount{Location: loc, Count: 1})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}

// TopLocations keeps the first n buckets of a distribution and folds the
// remainder into an Other bucket whose count is the leftover total.
func TopLocations(buckets []LocationCount, n int) []LocationCount {
	if n <= 0 || len(buckets) <= n {
		return buckets
	}
	top := make([]LocationCount, n, n+1)
	copy(top, buckets[:n])

	rest := 0
	for _, b := range buckets[n:] {
		rest += b.Count
	}
	return append(top, LocationCount{Location: OtherLocations, Count: rest})
}

// Direction classifies the recency trend.
type Direction string

const (
	TrendIncreasing Direction = "Increasing"
	TrendDecreasing Direction = "Decreasing"
	TrendStable     Direction = "Stable"
)

// TrendResult reports the recent-versus-baseline comparison of the overall
// rating.
type TrendResult struct {
	Recent    float64   `json:"recent"`
	Baseline  float64   `json:"baseline"`
	Direction Direction `json:"direction"`
}

// Trend compares the mean overall rating of the TrendWindow most recent
// records against the mean over all records. The input must be ordered most
// recent first, the ordering contract of the record store.
func Trend(records []domain.Survey) (TrendResult, error) {
	if len(records) < TrendWindow {
		return TrendResult{}, ErrInsufficientData
	}

	recent := 0.0
	for _, r := range records[:TrendWindow] {
		recent += float64(r.Overall)
	}
	recent /= TrendWindow

	baseline := 0.0
	for _, r := range records {
		baseline += float64(r.Overall)
	}
	baseline /= float64(len(records))

	result := TrendResult{Recent: recent, Baseline: baseline, Direction: TrendStable}
	switch {
	case recent > baseline+trendThreshold:
		result.Direction = TrendIncreasing
	case recent < baseline-trendThreshold:
		result.Direction = TrendDecreasing
	}
	return result, nil
}
