package report

import (
	"strings"
	"time"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/stats"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

const (
	// maxRecords bounds report detail to keep output size predictable;
	// statistics still cover the full set.
	maxRecords     = 50
	recordsPerPage = 4

	maxNameLen    = 25
	maxDateLen    = 16
	maxCommentLen = 120

	noLocation = "Not specified"
	noComment  = "No comment"
)

var recommendations = []string{
	"Maintain the aspects with the highest ratings",
	"Focus improvement on the lowest-rated aspect",
	"Review comments for specific insight",
	"Follow up on low individual ratings",
	"Monitor the satisfaction trend regularly",
}

// Meta carries report header details supplied by the caller.
type Meta struct {
	GeneratedBy string
}

// Composer builds the block sequence and delegates drawing to a Renderer.
type Composer struct {
	renderer Renderer
	now      func() time.Time
}

// NewComposer wires the composer to a renderer.
func NewComposer(renderer Renderer) *Composer {
	return &Composer{renderer: renderer, now: time.Now}
}

// Compose lays out records (most recent first) into the ordered block
// sequence: title, record pages of four, statistics over the full set, trend
// when at least three records exist, then the fixed recommendations.
func (c *Composer) Compose(records []domain.Survey, meta Meta) []Block {
	blocks := []Block{TitleBlock{
		Text:        "Customer Satisfaction Survey Report",
		GeneratedBy: meta.GeneratedBy,
		GeneratedOn: c.now().Format("2 January 2006"),
		Total:       len(records),
	}}

	display := records
	if len(display) > maxRecords {
		display = display[:maxRecords]
	}

	for i, record := range display {
		if i > 0 && i%recordsPerPage == 0 {
			blocks = append(blocks, PageBreakBlock{})
		}
		blocks = append(blocks, recordBlock(i+1, record))
	}

	if len(records) > 0 {
		blocks = append(blocks, PageBreakBlock{})
		// Completeness over detail: averages cover every record, not
		// just the rendered ones.
		averages, _ := stats.ComputeAverages(records)
		blocks = append(blocks, StatsBlock{
			Total:      len(records),
			PeriodFrom: clip(records[len(records)-1].Timestamp, 10),
			PeriodTo:   clip(records[0].Timestamp, 10),
			Averages:   averages,
		})
	}

	if trend, err := stats.Trend(records); err == nil {
		blocks = append(blocks, TrendBlock{
			Recent:    trend.Recent,
			Baseline:  trend.Baseline,
			Direction: trend.Direction,
		})
	}

	blocks = append(blocks, RecommendationsBlock{Items: recommendations})
	return blocks
}

// WriteReport composes the document and renders it to path. A renderer
// failure comes back as a single composed error; no partial report is
// attempted.
func (c *Composer) WriteReport(path string, records []domain.Survey, meta Meta) error {
	blocks := c.Compose(records, meta)
	if err := c.renderer.Render(path, blocks); err != nil {
		return util.NewRenderError(err)
	}
	return nil
}

// PageCount reports how many record pages the composed report will hold.
func PageCount(total int) int {
	if total > maxRecords {
		total = maxRecords
	}
	return (total + recordsPerPage - 1) / recordsPerPage
}

func recordBlock(index int, r domain.Survey) RecordBlock {
	location := strings.TrimSpace(r.Location)
	if location == "" {
		location = noLocation
	}
	comments := strings.TrimSpace(r.Comments)
	if comments == "" {
		comments = noComment
	} else if runes := []rune(comments); len(runes) > maxCommentLen {
		comments = string(runes[:maxCommentLen-3]) + "..."
	}

	return RecordBlock{
		Index:      index,
		Date:       clip(r.Timestamp, maxDateLen),
		Name:       clip(strings.TrimSpace(r.Name), maxNameLen),
		Location:   location,
		Quality:    ratingCell(r.Quality, 5),
		Timeliness: ratingCell(r.Timeliness, 5),
		Service:    ratingCell(r.Service, 5),
		Overall:    ratingCell(r.Overall, 10),
		Comments:   comments,
	}
}

func ratingCell(value, max int) RatingCell {
	return RatingCell{Value: value, Max: max, Label: stats.RatingLabel(value, max)}
}

// clip bounds a field to n characters. The limits are character counts, so
// slicing happens on runes; a byte slice could split a multibyte character
// and hand the renderer invalid UTF-8.
func clip(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}
