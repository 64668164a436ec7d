package stats

import (
	"errors"
	"testing"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
)

func surveysWithOveralls(overalls ...int) []domain.Survey {
	out := make([]domain.Survey, len(overalls))
	for i, o := range overalls {
		out[i] = domain.Survey{Quality: 3, Timeliness: 3, Service: 3, Overall: o}
	}
	return out
}

func TestComputeAverages(t *testing.T) {
	records := []domain.Survey{
		{Quality: 5, Timeliness: 2, Service: 4, Overall: 9},
		{Quality: 1, Timeliness: 4, Service: 2, Overall: 5},
	}
	avg, err := ComputeAverages(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.Quality != 3.0 {
		t.Errorf("quality average = %v, want 3.0", avg.Quality)
	}
	if avg.Timeliness != 3.0 || avg.Service != 3.0 || avg.Overall != 7.0 {
		t.Errorf("unexpected averages: %+v", avg)
	}
}

func TestComputeAveragesEmpty(t *testing.T) {
	if _, err := ComputeAverages(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestRatingLabelBands(t *testing.T) {
	cases := []struct {
		value, max int
		want       Band
	}{
		{4, 5, BandExcellent}, // exactly 80%
		{5, 5, BandExcellent},
		{3, 5, BandGood}, // exactly 60%
		{2, 5, BandFair}, // exactly 40%
		{1, 5, BandNeedsImprovement},
		{8, 10, BandExcellent},
		{6, 10, BandGood},
		{4, 10, BandFair},
		{3, 10, BandNeedsImprovement},
	}
	for _, tc := range cases {
		if got := RatingLabel(tc.value, tc.max); got != tc.want {
			t.Errorf("RatingLabel(%d, %d) = %q, want %q", tc.value, tc.max, got, tc.want)
		}
	}
}

func TestLocationDistribution(t *testing.T) {
	records := []domain.Survey{
		{Location: "Bandung"},
		{Location: " Pati "},
		{Location: "Bandung"},
		{Location: "  "},
		{Location: "Jonggol"},
		{Location: "Pati"},
	}
	dist := LocationDistribution(records)
	if len(dist) != 4 {
		t.Fatalf("expected 4 buckets, got %d: %v", len(dist), dist)
	}
	if dist[0].Location != "Bandung" || dist[0].Count != 2 {
		t.Errorf("top bucket = %+v, want Bandung x2", dist[0])
	}
	if dist[1].Location != "Pati" || dist[1].Count != 2 {
		t.Errorf("second bucket = %+v, want Pati x2 (first-seen tiebreak)", dist[1])
	}
	// Unknown was seen before Jonggol, so the tie resolves in its favor.
	if dist[2].Location != UnknownLocation || dist[3].Location != "Jonggol" {
		t.Errorf("tail buckets = %+v", dist[2:])
	}
}

func TestTopLocationsFold(t *testing.T) {
	buckets := []LocationCount{
		{"A", 5}, {"B", 4}, {"C", 3}, {"D", 2}, {"E", 1},
	}
	top := TopLocations(buckets, 3)
	if len(top) != 4 {
		t.Fatalf("expected 3 buckets plus fold, got %v", top)
	}
	if top[3].Location != OtherLocations || top[3].Count != 3 {
		t.Fatalf("fold bucket = %+v, want Other x3", top[3])
	}

	if got := TopLocations(buckets, 10); len(got) != 5 {
		t.Fatalf("no fold expected when n exceeds bucket count, got %v", got)
	}
}

func TestTrendInsufficientData(t *testing.T) {
	if _, err := Trend(surveysWithOveralls(9, 8)); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrendIncreasing(t *testing.T) {
	// Recent mean 8, baseline mean 6: clears the +0.5 margin.
	result, err := Trend(surveysWithOveralls(9, 8, 7, 1, 2, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recent != 8.0 || result.Baseline != 6.0 {
		t.Fatalf("unexpected means: %+v", result)
	}
	if result.Direction != TrendIncreasing {
		t.Fatalf("direction = %q, want Increasing", result.Direction)
	}
}

func TestTrendDecreasing(t *testing.T) {
	result, err := Trend(surveysWithOveralls(2, 3, 4, 9, 9, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Direction != TrendDecreasing {
		t.Fatalf("direction = %q, want Decreasing", result.Direction)
	}
}

func TestTrendStableWithinMargin(t *testing.T) {
	// Recent mean 8, baseline 7.5: inside the +-0.5 band.
	result, err := Trend(surveysWithOveralls(8, 8, 8, 7, 7, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Direction != TrendStable {
		t.Fatalf("direction = %q, want Stable (recent %v baseline %v)", result.Direction, result.Recent, result.Baseline)
	}
}
