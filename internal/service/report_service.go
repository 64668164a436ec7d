package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/report"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/stats"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// topLocationCount bounds the distribution shown on the dashboard; the
// remainder folds into an Other bucket.
const topLocationCount = 10

// StatsSummary is the dashboard payload: aggregates over the full record
// set. Trend is nil below the minimum record count.
type StatsSummary struct {
	Total      int                   `json:"total"`
	PeriodFrom string                `json:"period_from"`
	PeriodTo   string                `json:"period_to"`
	Averages   stats.Averages        `json:"averages"`
	Locations  []stats.LocationCount `json:"locations"`
	Trend      *stats.TrendResult    `json:"trend,omitempty"`
}

// ExportResult describes a finished report.
type ExportResult struct {
	Path        string `json:"path"`
	Total       int    `json:"total"`
	PageCount   int    `json:"page_count"`
	GeneratedBy string `json:"generated_by"`
}

// ReportService derives statistics and composes the narrative PDF report.
type ReportService struct {
	surveys  repository.SurveyRepository
	composer *report.Composer
	cache    *StatsCache
	logger   *zap.Logger
}

// NewReportService builds the service.
func NewReportService(surveys repository.SurveyRepository, composer *report.Composer, cache *StatsCache, logger *zap.Logger) *ReportService {
	return &ReportService{surveys: surveys, composer: composer, cache: cache, logger: logger}
}

// Statistics returns the aggregate summary, admin only. Served from the
// cache when fresh; recomputed and re-cached otherwise.
func (s *ReportService) Statistics(ctx context.Context, session domain.Session) (*StatsSummary, error) {
	if !session.IsAdmin {
		return nil, util.NewForbidden("only the administrator may view statistics")
	}

	var cached StatsSummary
	if s.cache.Get(ctx, &cached) {
		return &cached, nil
	}

	records, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, util.NewEmptyInput("statistics")
	}

	averages, err := stats.ComputeAverages(records)
	if err != nil {
		return nil, util.NewEmptyInput("statistics")
	}

	summary := &StatsSummary{
		Total:      len(records),
		PeriodFrom: clipDate(records[len(records)-1].Timestamp),
		PeriodTo:   clipDate(records[0].Timestamp),
		Averages:   averages,
		Locations:  stats.TopLocations(stats.LocationDistribution(records), topLocationCount),
	}
	if trend, err := stats.Trend(records); err == nil {
		summary.Trend = &trend
	}

	s.cache.Set(ctx, summary)
	return summary, nil
}

// Export composes the full report and renders it to path. Admin only; an
// empty record set is reported rather than producing an empty document.
func (s *ReportService) Export(ctx context.Context, session domain.Session, path string) (*ExportResult, error) {
	if !session.IsAdmin {
		return nil, util.NewForbidden("only the administrator may export reports")
	}

	records, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, util.NewEmptyInput("report export")
	}

	meta := report.Meta{GeneratedBy: session.FullName}
	if err := s.composer.WriteReport(path, records, meta); err != nil {
		s.logger.Error("report rendering failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	s.logger.Info("report exported",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.String("generated_by", session.Username))
	return &ExportResult{
		Path:        path,
		Total:       len(records),
		PageCount:   report.PageCount(len(records)) + 1,
		GeneratedBy: session.FullName,
	}, nil
}

func clipDate(stamp string) string {
	if len(stamp) > 10 {
		return stamp[:10]
	}
	return stamp
}
