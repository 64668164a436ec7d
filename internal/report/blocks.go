// Package report lays survey records out into a typed block sequence and
// hands it to a document renderer. The composer owns every data decision
// (ordering, truncation, fallbacks); renderers only draw.
package report

import "github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/stats"

// Block is one element of the composed document, in render order.
type Block interface {
	isBlock()
}

// TitleBlock opens the report.
type TitleBlock struct {
	Text        string
	GeneratedBy string
	GeneratedOn string
	Total       int
}

// RatingCell pairs a raw rating with its qualitative band.
type RatingCell struct {
	Value int
	Max   int
	Label stats.Band
}

// RecordBlock is one respondent entry. Index is global and 1-based, not
// reset per page.
type RecordBlock struct {
	Index      int
	Date       string
	Name       string
	Location   string
	Quality    RatingCell
	Timeliness RatingCell
	Service    RatingCell
	Overall    RatingCell
	Comments   string
}

// StatsBlock summarizes the full record set, not just the rendered portion.
type StatsBlock struct {
	Total      int
	PeriodFrom string
	PeriodTo   string
	Averages   stats.Averages
}

// TrendBlock reports the recency trend; omitted entirely below the minimum
// record count.
type TrendBlock struct {
	Recent    float64
	Baseline  float64
	Direction stats.Direction
}

// RecommendationsBlock carries the fixed closing advice.
type RecommendationsBlock struct {
	Items []string
}

// PageBreakBlock forces a new page in the output document.
type PageBreakBlock struct{}

func (TitleBlock) isBlock()           {}
func (RecordBlock) isBlock()          {}
func (StatsBlock) isBlock()           {}
func (TrendBlock) isBlock()           {}
func (RecommendationsBlock) isBlock() {}
func (PageBreakBlock) isBlock()       {}

// Renderer turns a block sequence into a document file at path. The error
// string of a failed render is the renderer's full diagnostic.
type Renderer interface {
	Render(path string, blocks []Block) error
}
