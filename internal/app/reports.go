package service

import (
	"context"
	"fmt"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/types"
	"github.com/okian/sportfit/pkg/metrics"
)

// ExportXLSX renders the profile summary and the recommendation list for q
// as a workbook.
func (s *Service) ExportXLSX(ctx context.Context, q types.RecommendationQuery) ([]byte, error) {
	p, err := s.running()
	if err != nil {
		return nil, err
	}
	res, err := s.Recommend(ctx, q)
	if err != nil {
		return nil, err
	}
	summary, err := s.Summarize(ctx, q.Profile, res.Locale)
	if err != nil {
		return nil, err
	}
	data, err := p.renderer.XLSX(summary, res.Recommendations, res.Locale)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	s.reports.Add(1)
	metrics.RecordReport("xlsx")
	return data, nil
}

// RenderChart draws the category scores of u as a PNG bar chart.
func (s *Service) RenderChart(ctx context.Context, u model.UserProfile, locale string) ([]byte, error) {
	p, err := s.running()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := p.renderer.CategoryChart(p.scorer.Profile(u), p.translator.Match(locale))
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	s.reports.Add(1)
	metrics.RecordReport("png")
	return data, nil
}
